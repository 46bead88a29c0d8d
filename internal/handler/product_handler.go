package handler

import (
	"io"
	"net/http"

	"storefront-api/internal/model"
	"storefront-api/internal/service"
	"storefront-api/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// maxUploadBytes caps product image uploads at 5 MB.
const maxUploadBytes = 5 << 20

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service  service.ProductService
	uploader storage.Uploader
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, uploader storage.Uploader, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		uploader: uploader,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products with optional category, featured and
// search query parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Category:     q.Get("category"),
		FeaturedOnly: q.Get("featured") == "true",
		Search:       q.Get("search"),
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// NextCode handles GET /api/products/next-code for the admin form.
func (h *ProductHandler) NextCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.service.NextCode(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"code": code})
}

// Categories handles GET /api/categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Categories())
}

// UploadImage handles POST /api/products/upload-image multipart uploads.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required", h.logger)
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image file", h.logger)
		return
	}

	contentType := header.Header.Get("Content-Type")
	url, err := h.uploader.Upload(r.Context(), header.Filename, body, contentType)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("image upload failed")
		writeError(w, http.StatusInternalServerError, "failed to upload image", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
