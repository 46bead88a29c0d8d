package repository

import (
	"context"
	"fmt"

	"storefront-api/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// promoRepository implements the PromoRepository interface using PostgreSQL.
type promoRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPromoRepository creates a new PostgreSQL-backed promo repository.
func NewPromoRepository(pool *pgxpool.Pool, logger zerolog.Logger) PromoRepository {
	return &promoRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "promo").Logger(),
	}
}

// Create inserts a new promo.
func (r *promoRepository) Create(ctx context.Context, promo *model.Promo) error {
	query := `
		INSERT INTO promos (id, title, description, discount_code, discount_percent, valid_till, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		promo.ID, promo.Title, promo.Description, promo.DiscountCode,
		promo.DiscountPercent, promo.ValidTill, promo.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("promo_id", promo.ID).Msg("failed to create promo")
		return fmt.Errorf("failed to create promo: %w", err)
	}

	return nil
}

// List retrieves all promos, newest first.
func (r *promoRepository) List(ctx context.Context) ([]model.Promo, error) {
	query := `
		SELECT id, title, description, discount_code, discount_percent, valid_till, created_at
		FROM promos
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query promos")
		return nil, fmt.Errorf("failed to query promos: %w", err)
	}
	defer rows.Close()

	var promos []model.Promo
	for rows.Next() {
		var p model.Promo
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.DiscountCode, &p.DiscountPercent, &p.ValidTill, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan promo row")
			return nil, fmt.Errorf("failed to scan promo: %w", err)
		}
		promos = append(promos, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating promo rows")
		return nil, fmt.Errorf("error iterating promos: %w", err)
	}

	return promos, nil
}
