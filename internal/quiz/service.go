package quiz

import (
	"context"

	"github.com/wichananm65/trivia-api/internal/question"
)

// Picker draws a random question outside the excluded ids.
type Picker interface {
	Random(ctx context.Context, categoryID int, exclude []int) (question.Question, bool, error)
}

type Service struct {
	picker Picker
}

func NewService(p Picker) *Service {
	return &Service{picker: p}
}

// Next returns the next question to play, or nil once every eligible question
// has been seen.
func (s *Service) Next(ctx context.Context, req Request) (*question.Question, error) {
	q, ok, err := s.picker.Random(ctx, req.CategoryID(), req.Previous())
	if err != nil || !ok {
		return nil, err
	}
	return &q, nil
}
