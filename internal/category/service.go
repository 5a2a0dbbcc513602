package category

import "context"

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns all categories ordered by id.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

// Map returns the id -> type mapping the API exposes as `categories`.
func (s *Service) Map(ctx context.Context) (map[int]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(items))
	for _, c := range items {
		out[c.ID] = c.Type
	}
	return out, nil
}
