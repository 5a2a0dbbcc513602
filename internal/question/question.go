package question

import "errors"

var (
	ErrNotFound = errors.New("question not found")
)

// Question maps to the `questions` table. Text and numeric columns are nullable
// because creation performs no server-side validation.
type Question struct {
	ID         int     `json:"id"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}
