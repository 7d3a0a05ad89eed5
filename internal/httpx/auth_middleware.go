package httpx

import (
	"errors"
	"net/http"
	"strings"

	"libraryapi/internal/platform/crypto"
)

// AuthMiddleware guards a route group with bearer-token verification.
// Verification is purely local (signature plus expiry), no store lookup,
// so a token stays valid for its full lifetime once issued.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				Error(w, http.StatusUnauthorized, "MISSING_TOKEN", "No token provided")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				if errors.Is(err, crypto.ErrTokenExpired) {
					Error(w, http.StatusUnauthorized, "EXPIRED_TOKEN", "Token expired")
					return
				}
				Error(w, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
				return
			}

			ctx := ContextWithAdmin(r.Context(), claims.Sub, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
