package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"libraryapi/internal/platform/crypto"
)

const testSecret = "test-secret-key"

type fakeAdminRepo struct {
	admins map[string]Admin
	err    error
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (Admin, error) {
	if f.err != nil {
		return Admin{}, f.err
	}
	admin, ok := f.admins[username]
	if !ok {
		return Admin{}, ErrAdminNotFound
	}
	return admin, nil
}

func newFakeAdminRepo(t *testing.T, username, password string) *fakeAdminRepo {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return &fakeAdminRepo{admins: map[string]Admin{
		username: {
			ID:           bson.NewObjectID(),
			Username:     username,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		},
	}}
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("correct credentials issue a verifiable token", func(t *testing.T) {
		repo := newFakeAdminRepo(t, "admin", "s3cret-pass")
		service := NewService(repo, testSecret, 24*time.Hour)

		token, admin, err := service.Authenticate(ctx, "admin", "s3cret-pass")

		require.NoError(t, err)
		assert.Equal(t, "admin", admin.Username)
		assert.NotEmpty(t, token)

		claims, err := crypto.ParseToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID.Hex(), claims.Sub)
		assert.Equal(t, "admin", claims.Username)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("wrong password and unknown username are indistinguishable", func(t *testing.T) {
		repo := newFakeAdminRepo(t, "admin", "s3cret-pass")
		service := NewService(repo, testSecret, 24*time.Hour)

		_, _, errWrongPassword := service.Authenticate(ctx, "admin", "wrong")
		_, _, errUnknownUser := service.Authenticate(ctx, "nobody", "wrong")

		assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
	})

	t.Run("password hash never appears in the result", func(t *testing.T) {
		repo := newFakeAdminRepo(t, "admin", "s3cret-pass")
		service := NewService(repo, testSecret, 24*time.Hour)

		token, _, err := service.Authenticate(ctx, "admin", "s3cret-pass")

		require.NoError(t, err)
		assert.NotContains(t, token, repo.admins["admin"].PasswordHash)
	})

	t.Run("store failure is not collapsed into bad credentials", func(t *testing.T) {
		repo := &fakeAdminRepo{err: errors.New("connection reset")}
		service := NewService(repo, testSecret, 24*time.Hour)

		_, _, err := service.Authenticate(ctx, "admin", "s3cret-pass")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
