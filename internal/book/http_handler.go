package book

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// Routes mounts the catalog endpoints on a router group.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

type createBookRequest struct {
	Title        string  `json:"title" validate:"required"`
	Author       string  `json:"author" validate:"required"`
	Publisher    string  `json:"publisher" validate:"required"`
	Genre        string  `json:"genre" validate:"required,oneof=Fiction Non-Fiction Mystery Romance Sci-Fi Fantasy Biography History Science Technology Self-Help Business"`
	ISBN         string  `json:"isbn" validate:"required"`
	IssueDate    string  `json:"issueDate" validate:"required"`
	Rating       float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Format       string  `json:"format" validate:"required,oneof=Paperback Hardcover Ebook"`
	Pages        int     `json:"pages" validate:"required,gte=1"`
	Language     string  `json:"language"`
	Availability string  `json:"availability" validate:"omitempty,oneof=Available 'Checked Out' Reserved"`
	Description  string  `json:"description"`
}

type updateBookRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=1"`
	Author       *string  `json:"author" validate:"omitempty,min=1"`
	Publisher    *string  `json:"publisher" validate:"omitempty,min=1"`
	Genre        *string  `json:"genre" validate:"omitempty,oneof=Fiction Non-Fiction Mystery Romance Sci-Fi Fantasy Biography History Science Technology Self-Help Business"`
	ISBN         *string  `json:"isbn" validate:"omitempty,min=1"`
	IssueDate    *string  `json:"issueDate" validate:"omitempty"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Format       *string  `json:"format" validate:"omitempty,oneof=Paperback Hardcover Ebook"`
	Pages        *int     `json:"pages" validate:"omitempty,gte=1"`
	Language     *string  `json:"language" validate:"omitempty,min=1"`
	Availability *string  `json:"availability" validate:"omitempty,oneof=Available 'Checked Out' Reserved"`
	Description  *string  `json:"description"`
}

type listResponse struct {
	Books       []Book `json:"books"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	Total       int64  `json:"total"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	q := Query{
		Page:         DefaultPage,
		Limit:        DefaultLimit,
		Search:       values.Get("search"),
		Genre:        values.Get("genre"),
		Availability: values.Get("availability"),
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", "page must be a positive integer")
			return
		}
		q.Page = page
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be a positive integer")
			return
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		q.Limit = limit
	}

	books, total, totalPages, err := h.service.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, listResponse{
		Books:       books,
		TotalPages:  totalPages,
		CurrentPage: q.Page,
		Total:       total,
	})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid request body")
		return
	}
	if err := httpx.ValidateStruct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	issueDate, err := ParseDate(req.IssueDate)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "issueDate must be a date (YYYY-MM-DD)")
		return
	}

	b := Book{
		Title:        req.Title,
		Author:       req.Author,
		Publisher:    req.Publisher,
		Genre:        req.Genre,
		ISBN:         req.ISBN,
		IssueDate:    issueDate,
		Rating:       req.Rating,
		Format:       req.Format,
		Pages:        req.Pages,
		Language:     req.Language,
		Availability: req.Availability,
		Description:  req.Description,
	}

	if err := h.service.Create(r.Context(), &b); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid request body")
		return
	}
	if err := httpx.ValidateStruct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var issueDate *time.Time
	if req.IssueDate != nil {
		parsed, err := ParseDate(*req.IssueDate)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "issueDate must be a date (YYYY-MM-DD)")
			return
		}
		issueDate = &parsed
	}

	upd := Update{
		Title:        req.Title,
		Author:       req.Author,
		Publisher:    req.Publisher,
		Genre:        req.Genre,
		ISBN:         req.ISBN,
		IssueDate:    issueDate,
		Rating:       req.Rating,
		Format:       req.Format,
		Pages:        req.Pages,
		Language:     req.Language,
		Availability: req.Availability,
		Description:  req.Description,
	}

	b, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "NOT_FOUND", "Book not found")
	case errors.Is(err, ErrDuplicateISBN):
		httpx.Error(w, http.StatusBadRequest, "DUPLICATE_ISBN", "ISBN already exists")
	case errors.Is(err, ErrInvalidArgument):
		httpx.Error(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	default:
		h.logger.Error("book store error",
			slog.String("request_id", httpx.RequestIDFrom(r)),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
