package category

import (
	"context"
	"sort"
	"sync"
)

// Repository provides access to category rows.
type Repository interface {
	// List returns every category ordered by id.
	List(ctx context.Context) ([]Category, error)
	// Seed inserts the given types when no category exists yet and reports how many were added.
	Seed(ctx context.Context, types []string) (int, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Category
	nextID  int
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Category, 0, len(seed)),
		nextID:  1,
	}
	for _, c := range seed {
		r.storage = append(r.storage, c)
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	sort.Slice(r.storage, func(i, j int) bool { return r.storage[i].ID < r.storage[j].ID })
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) Seed(ctx context.Context, types []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.storage) > 0 {
		return 0, nil
	}
	for _, t := range types {
		r.storage = append(r.storage, Category{ID: r.nextID, Type: t})
		r.nextID++
	}
	return len(types), nil
}
