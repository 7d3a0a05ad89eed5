package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	adminIDKey   contextKey = "adminID"
	usernameKey  contextKey = "username"
	requestIDKey contextKey = "requestID"
)

// ContextWithAdmin returns a new context carrying the authenticated admin's
// identity.
func ContextWithAdmin(ctx context.Context, adminID, username string) context.Context {
	ctx = context.WithValue(ctx, adminIDKey, adminID)
	return context.WithValue(ctx, usernameKey, username)
}

// AdminIDFrom retrieves the authenticated admin id from the request context.
func AdminIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(adminIDKey).(string); ok {
		return v
	}
	return ""
}

// UsernameFrom retrieves the authenticated admin username from the request
// context.
func UsernameFrom(r *http.Request) string {
	if v, ok := r.Context().Value(usernameKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
