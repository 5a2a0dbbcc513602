package question

import (
	"context"
	"math/rand"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Repository is the question store capability set. Every listing is ordered by
// id ascending and windowed by the given page.
type Repository interface {
	List(ctx context.Context, page Page) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int, page Page) ([]Question, error)
	// Search matches term case-insensitively as a substring of the question text.
	Search(ctx context.Context, term string, page Page) ([]Question, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (Question, error)
	Create(ctx context.Context, q Question) (Question, error)
	Delete(ctx context.Context, id int) error
	// Random returns a uniformly chosen question whose id is not in exclude,
	// restricted to categoryID unless it is 0. ErrNotFound means the pool is empty.
	Random(ctx context.Context, categoryID int, exclude []int) (Question, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Question
	nextID  int
	// Intn picks an index in [0, n) for Random; defaults to math/rand.
	Intn func(n int) int
}

func NewInMemoryRepository(seed []Question) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Question, 0, len(seed)),
		nextID:  1,
		Intn:    rand.Intn,
	}

	for _, q := range seed {
		r.storage = append(r.storage, q)
		if q.ID >= r.nextID {
			r.nextID = q.ID + 1
		}
	}
	sort.Slice(r.storage, func(i, j int) bool { return r.storage[i].ID < r.storage[j].ID })
	return r
}

func (r *InMemoryRepository) filter(keep func(Question) bool) []Question {
	out := make([]Question, 0)
	for _, q := range r.storage {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

func (r *InMemoryRepository) List(ctx context.Context, page Page) ([]Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Window(r.storage, page), nil
}

func (r *InMemoryRepository) ListByCategory(ctx context.Context, categoryID int, page Page) ([]Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := r.filter(func(q Question) bool {
		return q.Category != nil && *q.Category == categoryID
	})
	return Window(matches, page), nil
}

func (r *InMemoryRepository) Search(ctx context.Context, term string, page Page) ([]Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(term)
	matches := r.filter(func(q Question) bool {
		return q.Question != nil && strings.Contains(strings.ToLower(*q.Question), needle)
	})
	return Window(matches, page), nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storage), nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.storage {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, q Question) (Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, q)
	return q, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Random(ctx context.Context, categoryID int, exclude []int) (Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pool := r.filter(func(q Question) bool {
		if slices.Contains(exclude, q.ID) {
			return false
		}
		return categoryID == 0 || (q.Category != nil && *q.Category == categoryID)
	})
	if len(pool) == 0 {
		return Question{}, ErrNotFound
	}
	return pool[r.Intn(len(pool))], nil
}
