package service

import (
	"context"
	"testing"

	"storefront-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(repo *MockProductRepository) ProductService {
	return NewProductService(repo, zerolog.Nop())
}

func TestProductService_Create_AssignsCode(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("Count", mock.Anything).Return(41, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.ID == "PROD-00042"
	})).Return(nil)

	price := 19.99
	product, err := svc.Create(context.Background(), model.ProductInput{Name: "Beanie", Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "PROD-00042", product.ID)
	assert.Equal(t, 19.99, product.Price)
}

func TestProductService_Create_KeepsExplicitID(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	product, err := svc.Create(context.Background(), model.ProductInput{ID: "SKU-7", Name: "Beanie"})
	require.NoError(t, err)
	assert.Equal(t, "SKU-7", product.ID)
	repo.AssertNotCalled(t, "Count")
}

func TestProductService_Create_RequiresName(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	_, err := svc.Create(context.Background(), model.ProductInput{})

	var derr *model.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, model.ErrCodeMissingField, derr.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestProductService_Update_PartialFields(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	existing := &model.Product{
		ID: "PROD-00001", Name: "Shirt", Price: 30, Stock: 5,
		Categories: []string{"men"},
	}
	repo.On("GetByID", mock.Anything, "PROD-00001").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	stock := 12
	product, err := svc.Update(context.Background(), "PROD-00001", model.ProductInput{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, 12, product.Stock)
	// Untouched fields survive
	assert.Equal(t, "Shirt", product.Name)
	assert.Equal(t, 30.0, product.Price)
	assert.Equal(t, []string{"men"}, product.Categories)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.Update(context.Background(), "missing", model.ProductInput{})
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestProductService_NextCode(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("Count", mock.Anything).Return(0, nil)

	code, err := svc.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PROD-00001", code)
}

func TestProductService_Categories(t *testing.T) {
	svc := newProductService(new(MockProductRepository))

	categories := svc.Categories()
	require.Len(t, categories, 4)

	slugs := make([]string, 0, len(categories))
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"men", "women", "kids", "accessories"}, slugs)
}
