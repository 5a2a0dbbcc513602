package question

import (
	"context"
	"errors"
	"fmt"
)

// Listing is one page of questions plus the total number of stored questions.
type Listing struct {
	Questions []Question
	Total     int
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) withTotal(ctx context.Context, questions []Question) (Listing, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Questions: questions, Total: total}, nil
}

// List returns one page of all questions.
func (s *Service) List(ctx context.Context, page Page) (Listing, error) {
	questions, err := s.repo.List(ctx, page)
	if err != nil {
		return Listing{}, err
	}
	return s.withTotal(ctx, questions)
}

// ListByCategory returns one page of the category's questions. Total counts
// every question, not only the category's.
func (s *Service) ListByCategory(ctx context.Context, categoryID int, page Page) (Listing, error) {
	questions, err := s.repo.ListByCategory(ctx, categoryID, page)
	if err != nil {
		return Listing{}, err
	}
	return s.withTotal(ctx, questions)
}

// Search returns one page of matches. Total counts every question, not only matches.
func (s *Service) Search(ctx context.Context, term string, page Page) (Listing, error) {
	questions, err := s.repo.Search(ctx, term, page)
	if err != nil {
		return Listing{}, err
	}
	return s.withTotal(ctx, questions)
}

func (s *Service) GetByID(ctx context.Context, id int) (Question, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores q and returns it with the listing page that follows the insert.
func (s *Service) Create(ctx context.Context, q Question, page Page) (Question, Listing, error) {
	created, err := s.repo.Create(ctx, q)
	if err != nil {
		return Question{}, Listing{}, err
	}
	listing, err := s.List(ctx, page)
	if err != nil {
		return Question{}, Listing{}, err
	}
	return created, listing, nil
}

// Delete removes the question and returns the listing page that follows.
// ErrNotFound is only returned by the initial lookup; a failed delete never
// unwraps to it, even when the row disappeared in between.
func (s *Service) Delete(ctx context.Context, id int, page Page) (Listing, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Listing{}, ErrNotFound
		}
		return Listing{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Listing{}, fmt.Errorf("delete question %d: %v", id, err)
	}
	return s.List(ctx, page)
}

// Random picks a question for quiz play; ok is false when the pool is exhausted.
func (s *Service) Random(ctx context.Context, categoryID int, exclude []int) (q Question, ok bool, err error) {
	q, err = s.repo.Random(ctx, categoryID, exclude)
	if errors.Is(err, ErrNotFound) {
		return Question{}, false, nil
	}
	if err != nil {
		return Question{}, false, err
	}
	return q, true, nil
}
