package book

import (
	"context"
)

// Repository defines the contract for book storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, int64, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Insert(ctx context.Context, b *Book) error
	Update(ctx context.Context, id string, upd Update) (Book, error)
	Delete(ctx context.Context, id string) error
}
