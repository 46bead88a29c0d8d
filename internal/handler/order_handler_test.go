package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, payload map[string]any) (*model.Order, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Page(ctx context.Context, page, limit int) (*model.OrderPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderPage), args.Error(1)
}

func (m *MockOrderService) Update(ctx context.Context, id uuid.UUID, update model.OrderUpdate) (*model.Order, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newOrderRouter(svc *MockOrderService) http.Handler {
	h := NewOrderHandler(svc, zerolog.Nop())
	r := chi.NewRouter()
	r.Post("/api/orders", h.Create)
	r.Get("/api/orders", h.Page)
	r.Get("/api/orders/{id}", h.GetByID)
	r.Put("/api/orders/{id}", h.Update)
	r.Delete("/api/orders/{id}", h.Delete)
	return r
}

func TestOrderHandler_Create(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	order := &model.Order{ID: uuid.New(), Status: model.StatusPending, TotalPrice: 85}
	svc.On("Create", mock.Anything, mock.Anything).Return(order, nil)

	body := []byte(`{"items":[{"name":"Shirt","qty":2,"price":30}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, 85.0, got.TotalPrice)
}

func TestOrderHandler_Create_EmptyOrder(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	svc.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrEmptyOrder)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrCodeEmptyOrder, resp.Error)
	assert.Equal(t, "No order items", resp.Message)
}

func TestOrderHandler_Create_InvalidJSON(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(`{not json`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestOrderHandler_GetByID(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(&model.Order{ID: id}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_GetByID_NotFound(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, model.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_GetByID_BadID(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByID")
}

func TestOrderHandler_Page(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	svc.On("Page", mock.Anything, 2, 5).Return(&model.OrderPage{
		Orders: []model.Order{},
		Pagination: model.Pagination{
			Current: 2, Total: 4, Count: 0, TotalRecords: 17,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var page model.OrderPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 17, page.Pagination.TotalRecords)
}

func TestOrderHandler_Update_InvalidTransition(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	id := uuid.New()
	svc.On("Update", mock.Anything, id, mock.Anything).Return(nil, model.ErrInvalidTransition)

	body := []byte(`{"status":"shipped"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+id.String(), bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrCodeInvalidTransition, resp.Error)
}

func TestOrderHandler_Delete(t *testing.T) {
	svc := new(MockOrderService)
	router := newOrderRouter(svc)

	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
