package category

// Category is a grouping label applied to questions.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// DefaultTypes are seeded, in this order, into an empty category table.
var DefaultTypes = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}
