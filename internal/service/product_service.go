package service

import (
	"context"
	"fmt"
	"time"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"

	"github.com/rs/zerolog"
)

// storeCategories is the fixed category set exposed to the storefront.
var storeCategories = []model.Category{
	{ID: "men", Name: "Men", Slug: "men"},
	{ID: "women", Name: "Women", Slug: "women"},
	{ID: "kids", Name: "Kids", Slug: "kids"},
	{ID: "accessories", Name: "Accessories", Slug: "accessories"},
}

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products matching the filter, newest first.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// GetByID retrieves a single product.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// Create persists a new product. A missing ID is assigned from the
// sequential product code scheme.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if input.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Product name is required")
	}

	id := input.ID
	if id == "" {
		code, err := s.NextCode(ctx)
		if err != nil {
			return nil, err
		}
		id = code
	}

	now := time.Now()
	product := &model.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Categories:  input.Categories,
		Sizes:       input.Sizes,
		Colors:      input.Colors,
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

// Update applies a partial product update.
func (s *productService) Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Categories != nil {
		product.Categories = input.Categories
	}
	if input.Sizes != nil {
		product.Sizes = input.Sizes
	}
	if input.Colors != nil {
		product.Colors = input.Colors
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !found {
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// NextCode returns the next sequential product code.
func (s *productService) NextCode(ctx context.Context) (string, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count products: %w", err)
	}
	return fmt.Sprintf("PROD-%05d", count+1), nil
}

// Categories returns the storefront category set.
func (s *productService) Categories() []model.Category {
	return storeCategories
}
