package service

import (
	"context"
	"fmt"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"

	"github.com/rs/zerolog"
)

// statsService implements StatsService.
type statsService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
	logger   zerolog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository, logger zerolog.Logger) StatsService {
	return &statsService{
		orders:   orders,
		products: products,
		users:    users,
		logger:   logger.With().Str("service", "stats").Logger(),
	}
}

// Stats returns entity counts and total revenue for the admin dashboard.
// Revenue excludes cancelled orders.
func (s *statsService) Stats(ctx context.Context) (*model.StoreStats, error) {
	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	revenue, err := s.orders.Revenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &model.StoreStats{
		TotalProducts: products,
		TotalOrders:   orders,
		TotalUsers:    users,
		TotalRevenue:  revenue,
	}, nil
}
