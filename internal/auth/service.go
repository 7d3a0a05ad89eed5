package auth

import (
	"context"
	"errors"
	"time"

	"libraryapi/internal/platform/crypto"
)

// Service authenticates admin credentials and issues session tokens.
// Tokens are stateless: once issued they stay valid until expiry, there
// is no revocation list, and logout is a client-side discard.
type Service struct {
	repo     AdminRepository
	secret   string
	tokenTTL time.Duration
}

func NewService(repo AdminRepository, secret string, tokenTTL time.Duration) *Service {
	return &Service{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

// Authenticate verifies a credential pair and returns a fresh token plus
// the admin's public identity. An unknown username burns a dummy bcrypt
// compare so it is indistinguishable from a password mismatch.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, Admin, error) {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			crypto.VerifyDummy(password)
			return "", Admin{}, ErrInvalidCredentials
		}
		return "", Admin{}, err
	}

	if !crypto.VerifyPassword(admin.PasswordHash, password) {
		return "", Admin{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(s.secret, admin.ID.Hex(), admin.Username, s.tokenTTL)
	if err != nil {
		return "", Admin{}, err
	}
	return token, admin, nil
}
