package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  publicUser `json:"user"`
}

type publicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Login handles POST /auth/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := httpx.ValidateStruct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		return
	}

	token, admin, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		h.logger.Error("login failed",
			slog.String("request_id", httpx.RequestIDFrom(r)),
			slog.Any("error", err),
		)
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	httpx.JSON(w, http.StatusOK, loginResponse{
		Token: token,
		User: publicUser{
			ID:       admin.ID.Hex(),
			Username: admin.Username,
		},
	})
}

// Verify handles GET /auth/verify. It sits behind the auth middleware, so
// reaching it means the token checked out; it just echoes the identity.
func (h *HTTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]publicUser{
		"user": {
			ID:       httpx.AdminIDFrom(r),
			Username: httpx.UsernameFrom(r),
		},
	})
}
