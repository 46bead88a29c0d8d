package handler

import (
	"net/http"

	"storefront-api/internal/middleware"
	"storefront-api/internal/model"
	"storefront-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TicketHandler handles support ticket HTTP requests.
type TicketHandler struct {
	service service.TicketService
	logger  zerolog.Logger
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(service service.TicketService, logger zerolog.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		logger:  logger.With().Str("handler", "ticket").Logger(),
	}
}

// Create handles POST /api/tickets. An authenticated caller's ID is
// attached to the ticket; anonymous submissions are accepted too.
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.TicketInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		input.UserID = &claims.UserID
	}

	ticket, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, ticket)
}

// List handles GET /api/admin/tickets.
func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tickets)
}

// ListMine handles GET /api/tickets/my for the authenticated caller.
func (h *TicketHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required", h.logger)
		return
	}

	tickets, err := h.service.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tickets)
}

// GetByID handles GET /api/admin/tickets/{id}.
func (h *TicketHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket ID", h.logger)
		return
	}

	ticket, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}

// Reply handles POST /api/admin/tickets/{id}/reply.
func (h *TicketHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket ID", h.logger)
		return
	}

	var reply model.TicketReply
	if err := decodeJSON(r, &reply); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	ticket, err := h.service.Reply(r.Context(), id, reply)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}

// UpdateStatus handles PATCH /api/admin/tickets/{id}/status.
func (h *TicketHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket ID", h.logger)
		return
	}

	var body struct {
		Status   string `json:"status"`
		Priority string `json:"priority"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	ticket, err := h.service.UpdateStatus(r.Context(), id, body.Status, body.Priority)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}
