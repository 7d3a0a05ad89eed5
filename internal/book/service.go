package book

import (
	"context"
)

// Service provides catalog business logic on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of books matching the query, the total match
// count before pagination, and the page count. A page beyond the last
// one yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int64, int, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, 0, err
	}
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, 0, err
	}
	return items, total, q.TotalPages(total), nil
}

func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a new record, applying the catalog defaults for fields
// the caller left empty.
func (s *Service) Create(ctx context.Context, b *Book) error {
	if b.Language == "" {
		b.Language = DefaultLanguage
	}
	if b.Availability == "" {
		b.Availability = AvailabilityAvailable
	}
	return s.repo.Insert(ctx, b)
}

func (s *Service) Update(ctx context.Context, id string, upd Update) (Book, error) {
	if upd.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
