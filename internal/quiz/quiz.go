package quiz

import "github.com/wichananm65/trivia-api/internal/question"

// Category selects the quiz pool; ID 0 means every category.
type Category struct {
	ID   question.Int `json:"id"`
	Type string       `json:"type"`
}

// Request is the body of POST /quizzes.
type Request struct {
	PreviousQuestions []question.Int `json:"previous_questions"`
	QuizCategory      *Category      `json:"quiz_category"`
}

// CategoryID returns the requested category, 0 for all.
func (r Request) CategoryID() int {
	if r.QuizCategory == nil || !r.QuizCategory.ID.Set {
		return 0
	}
	return r.QuizCategory.ID.Value
}

// Previous returns the ids already shown to the player.
func (r Request) Previous() []int {
	out := make([]int, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		if id.Set {
			out = append(out, id.Value)
		}
	}
	return out
}
