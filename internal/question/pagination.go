package question

import (
	"math"
	"strconv"
	"strings"
)

// PageSize is the fixed number of questions per page.
const PageSize = 10

const maxPage = math.MaxInt32 / PageSize

// Page is a 1-based window over an id-ordered result set.
type Page struct {
	Number int
	Limit  int
	Offset int
}

// NewPage returns the window for page n. Pages below 1 (or too large to
// address) select nothing.
func NewPage(n int) Page {
	p := Page{Number: n, Limit: PageSize}
	if !p.Empty() {
		p.Offset = (n - 1) * PageSize
	}
	return p
}

// PageFromQuery parses the `page` query parameter, defaulting to 1 when it is
// missing or not an integer.
func PageFromQuery(raw string) Page {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = 1
	}
	return NewPage(n)
}

func (p Page) Empty() bool {
	return p.Number < 1 || p.Number > maxPage
}

// Window slices an already ordered list to the page.
func Window[T any](items []T, p Page) []T {
	if p.Empty() || p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-p.Offset)
	copy(out, items[p.Offset:end])
	return out
}
