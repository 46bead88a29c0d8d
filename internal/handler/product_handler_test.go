package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) NextCode(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockProductService) Categories() []model.Category {
	args := m.Called()
	return args.Get(0).([]model.Category)
}

// stubUploader records the upload it receives.
type stubUploader struct {
	filename    string
	body        []byte
	contentType string
	url         string
	err         error
}

func (u *stubUploader) Upload(ctx context.Context, filename string, body []byte, contentType string) (string, error) {
	u.filename = filename
	u.body = body
	u.contentType = contentType
	return u.url, u.err
}

func newProductRouter(svc *MockProductService, uploader *stubUploader) http.Handler {
	h := NewProductHandler(svc, uploader, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/api/products", h.List)
	r.Get("/api/products/{id}", h.GetByID)
	r.Post("/api/admin/products", h.Create)
	r.Post("/api/admin/products/upload-image", h.UploadImage)
	return r
}

func multipartImage(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestProductHandler_UploadImage(t *testing.T) {
	uploader := &stubUploader{url: "https://cdn.example.com/products/hat.png"}
	router := newProductRouter(new(MockProductService), uploader)

	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	buf, contentType := multipartImage(t, "image", "hat.png", content)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products/upload-image", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// The uploader receives the file bytes, not a stream handle
	assert.Equal(t, content, uploader.body)
	assert.Equal(t, "hat.png", uploader.filename)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "https://cdn.example.com/products/hat.png", resp["url"])
}

func TestProductHandler_UploadImage_MissingFile(t *testing.T) {
	uploader := &stubUploader{}
	router := newProductRouter(new(MockProductService), uploader)

	buf, contentType := multipartImage(t, "attachment", "hat.png", []byte("data"))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products/upload-image", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uploader.body)
}

func TestProductHandler_Create(t *testing.T) {
	svc := new(MockProductService)
	router := newProductRouter(svc, &stubUploader{})

	created := &model.Product{ID: "PROD-00042", Name: "Beanie", Price: 19.99}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in model.ProductInput) bool {
		return in.Name == "Beanie" && in.ID == ""
	})).Return(created, nil)

	body, err := json.Marshal(map[string]any{"name": "Beanie", "price": 19.99})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var product model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
	assert.Equal(t, "PROD-00042", product.ID)
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	svc := new(MockProductService)
	router := newProductRouter(svc, &stubUploader{})

	svc.On("GetByID", mock.Anything, "PROD-99999").Return(nil, model.ErrProductNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/products/PROD-99999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
