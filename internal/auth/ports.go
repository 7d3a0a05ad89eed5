package auth

import (
	"context"
)

// AdminRepository defines the contract for the credential store.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (Admin, error)
}
