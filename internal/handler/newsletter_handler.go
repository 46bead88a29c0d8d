package handler

import (
	"net/http"

	"storefront-api/internal/service"

	"github.com/rs/zerolog"
)

// NewsletterHandler handles newsletter subscription HTTP requests.
type NewsletterHandler struct {
	service service.NewsletterService
	logger  zerolog.Logger
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(service service.NewsletterService, logger zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		logger:  logger.With().Str("handler", "newsletter").Logger(),
	}
}

// SendOTP handles POST /api/newsletter/send-otp.
func (h *NewsletterHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if err := h.service.SendOTP(r.Context(), body.Email); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "OTP sent to email", "email": body.Email})
}

// Verify handles POST /api/newsletter/verify.
func (h *NewsletterHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if err := h.service.Verify(r.Context(), body.Email, body.OTP); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully subscribed to newsletter", "email": body.Email})
}

// Subscribers handles GET /api/admin/newsletter/subscribers.
func (h *NewsletterHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.service.Subscribers(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, subscribers)
}

// Broadcast handles POST /api/admin/newsletter/broadcast.
func (h *NewsletterHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	sent, err := h.service.Broadcast(r.Context(), body.Subject, body.Message)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"sent": sent})
}

// CreatePromo handles POST /api/admin/newsletter/promos.
func (h *NewsletterHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		DiscountCode    string `json:"discountCode"`
		DiscountPercent int    `json:"discountPercent"`
		ValidTill       string `json:"validTill"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	promo, err := h.service.CreatePromo(r.Context(), body.Title, body.Description, body.DiscountCode, body.DiscountPercent, body.ValidTill)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, promo)
}

// Promos handles GET /api/admin/newsletter/promos.
func (h *NewsletterHandler) Promos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.service.Promos(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, promos)
}
