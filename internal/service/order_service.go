package service

import (
	"context"
	"fmt"
	"time"

	"storefront-api/internal/checkout"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultPaymentMethod is used when a checkout payload names none.
const defaultPaymentMethod = "card"

// orderService implements OrderService.
type orderService struct {
	repo    repository.OrderRepository
	pricing checkout.Pricing
	logger  zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, pricing checkout.Pricing, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:    repo,
		pricing: pricing,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// Create normalizes a raw checkout payload, computes totals, and persists a
// new pending order. A payload yielding no well-formed items is rejected.
func (s *orderService) Create(ctx context.Context, payload map[string]any) (*model.Order, error) {
	items := checkout.NormalizeItems(payload)
	if len(items) == 0 {
		s.logger.Warn().Msg("checkout payload contained no usable items")
		return nil, model.ErrEmptyOrder
	}

	totals := checkout.ComputeTotals(items, s.pricing)

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		UserID:          userReference(payload),
		OrderItems:      items,
		ShippingAddress: checkout.ResolveAddress(payload),
		PaymentMethod:   paymentMethod(payload),
		ItemsPrice:      totals.ItemsPrice,
		TaxPrice:        totals.TaxPrice,
		ShippingPrice:   totals.ShippingPrice,
		TotalPrice:      totals.TotalPrice,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.OrderItems)).
		Float64("total_price", order.TotalPrice).
		Msg("order created")

	return order, nil
}

// GetByID retrieves an order.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// Page retrieves a page of orders, newest first.
func (s *orderService) Page(ctx context.Context, page, limit int) (*model.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}

	totalPages := (total + limit - 1) / limit

	return &model.OrderPage{
		Orders: orders,
		Pagination: model.Pagination{
			Current:      page,
			Total:        totalPages,
			Count:        len(orders),
			TotalRecords: total,
		},
	}, nil
}

// Update applies a partial lifecycle update. Totals and line items are never
// recomputed here; they are fixed at creation.
func (s *orderService) Update(ctx context.Context, id uuid.UUID, update model.OrderUpdate) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if update.Status != nil {
		if !model.IsValidStatus(*update.Status) {
			return nil, model.ErrInvalidStatus
		}
		if !model.CanTransition(order.Status, *update.Status) {
			s.logger.Warn().
				Str("order_id", id.String()).
				Str("from", order.Status).
				Str("to", *update.Status).
				Msg("rejected status transition")
			return nil, model.ErrInvalidTransition
		}
		order.Status = *update.Status

		if order.Status == model.StatusCancelled && update.CancelReason != nil {
			order.CancelReason = *update.CancelReason
		}
	}

	if update.Notes != nil {
		order.Notes = *update.Notes
	}

	if update.IsPaid != nil {
		if *update.IsPaid && !order.IsPaid {
			now := time.Now()
			order.PaidAt = &now
		}
		if !*update.IsPaid {
			order.PaidAt = nil
		}
		order.IsPaid = *update.IsPaid
	}

	order.UpdatedAt = time.Now()

	found, err := s.repo.Update(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	if !found {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", order.Status).
		Bool("is_paid", order.IsPaid).
		Msg("order updated")

	return order, nil
}

// Delete hard-deletes an order.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !found {
		return model.ErrOrderNotFound
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")
	return nil
}

// userReference extracts an optional user ID from the payload. Guest
// checkout and malformed IDs both produce an anonymous order.
func userReference(payload map[string]any) *uuid.UUID {
	s, ok := payload["user"].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// paymentMethod extracts the payment method, defaulting to card.
func paymentMethod(payload map[string]any) string {
	if s, ok := payload["paymentMethod"].(string); ok && s != "" {
		return s
	}
	return defaultPaymentMethod
}
