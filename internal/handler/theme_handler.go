package handler

import (
	"net/http"

	"storefront-api/internal/middleware"
	"storefront-api/internal/model"
	"storefront-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ThemeHandler handles theme and seasonal-mode HTTP requests.
type ThemeHandler struct {
	service service.ThemeService
	logger  zerolog.Logger
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(service service.ThemeService, logger zerolog.Logger) *ThemeHandler {
	return &ThemeHandler{
		service: service,
		logger:  logger.With().Str("handler", "theme").Logger(),
	}
}

// List handles GET /api/themes.
func (h *ThemeHandler) List(w http.ResponseWriter, r *http.Request) {
	themes, err := h.service.Themes(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, themes)
}

// GetByID handles GET /api/themes/{id}.
func (h *ThemeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	theme, err := h.service.Theme(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, theme)
}

// Save handles PUT /api/admin/themes/{id}.
func (h *ThemeHandler) Save(w http.ResponseWriter, r *http.Request) {
	var theme model.Theme
	if err := decodeJSON(r, &theme); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	theme.ID = chi.URLParam(r, "id")

	saved, err := h.service.SaveTheme(r.Context(), theme)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// Delete handles DELETE /api/admin/themes/{id}.
func (h *ThemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTheme(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Theme deleted"})
}

// Activate handles POST /api/admin/themes/{id}/activate.
func (h *ThemeHandler) Activate(w http.ResponseWriter, r *http.Request) {
	theme, err := h.service.ActivateTheme(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, theme)
}

// ChristmasStatus handles GET /api/christmas/status.
func (h *ThemeHandler) ChristmasStatus(w http.ResponseWriter, r *http.Request) {
	mode, err := h.service.ChristmasStatus(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, mode)
}

// ToggleChristmas handles POST /api/admin/christmas/toggle.
func (h *ThemeHandler) ToggleChristmas(w http.ResponseWriter, r *http.Request) {
	var update model.ChristmasUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	mode, err := h.service.UpdateChristmas(r.Context(), update, actorEmail(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, mode)
}

// SetDiscount handles POST /api/admin/christmas/discount.
func (h *ThemeHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Discount int `json:"discount"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	mode, err := h.service.SetChristmasDiscount(r.Context(), body.Discount, actorEmail(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, mode)
}

// actorEmail identifies the admin making a change, for the audit field.
func actorEmail(r *http.Request) string {
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return claims.UserID.String()
	}
	return ""
}
