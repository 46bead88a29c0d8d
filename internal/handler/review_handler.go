package handler

import (
	"net/http"

	"storefront-api/internal/model"
	"storefront-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// ListByProduct handles GET /api/products/{id}/reviews with page, limit,
// sort and rating query parameters.
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	q := model.ReviewQuery{
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 5),
		Sort:   r.URL.Query().Get("sort"),
		Rating: queryInt(r, "rating", 0),
	}

	page, err := h.service.ListByProduct(r.Context(), chi.URLParam(r, "id"), q)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Create handles POST /api/products/{id}/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ReviewInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	review, err := h.service.Create(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// Update handles PUT /api/reviews/{id}. The body's email establishes
// ownership.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID", h.logger)
		return
	}

	var update model.ReviewUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	review, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, review)
}

// Delete handles DELETE /api/reviews/{id}. The caller's email comes from
// the body or the email query parameter.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID", h.logger)
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	_ = decodeJSON(r, &body)
	email := body.Email
	if email == "" {
		email = r.URL.Query().Get("email")
	}

	if err := h.service.Delete(r.Context(), id, email); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}

// Reply handles POST /api/reviews/{id}/reply for admins.
func (h *ReviewHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID", h.logger)
		return
	}

	var body struct {
		Comment string `json:"comment"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	review, err := h.service.Reply(r.Context(), id, body.Comment)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, review)
}
