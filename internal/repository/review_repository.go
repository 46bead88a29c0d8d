package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements the ReviewRepository interface using
// PostgreSQL. Replies are stored as a JSONB array on the review row.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

const reviewColumns = `
	id, product_id, name, email, rating, comment, verified_purchase, replies, created_at, updated_at
`

// ListByProduct retrieves a page of a product's reviews with the matching
// record count. Sort is newest-first by default; "highest" sorts by rating
// descending with creation time as tiebreak.
func (r *reviewRepository) ListByProduct(ctx context.Context, productID string, q model.ReviewQuery) ([]model.Review, int, error) {
	where := `WHERE product_id = $1`
	args := []any{productID}

	if q.Rating > 0 {
		args = append(args, q.Rating)
		where += fmt.Sprintf(` AND rating = $%d`, len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews `+where, args...).Scan(&total); err != nil {
		r.logger.Error().Err(err).Str("product_id", productID).Msg("failed to count reviews")
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	orderBy := `ORDER BY created_at DESC`
	if q.Sort == model.ReviewSortHighest {
		orderBy = `ORDER BY rating DESC, created_at DESC`
	}

	offset := (q.Page - 1) * q.Limit
	args = append(args, q.Limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM reviews %s %s LIMIT $%d OFFSET $%d`,
		reviewColumns, where, orderBy, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID).Msg("failed to query reviews")
		return nil, 0, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		review, err := r.scanReview(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, *review)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating review rows")
		return nil, 0, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, total, nil
}

// RatingCounts returns the review count per rating value over the entire
// unfiltered set for a product.
func (r *reviewRepository) RatingCounts(ctx context.Context, productID string) (map[int]int, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE product_id = $1
		GROUP BY rating
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID).Msg("failed to aggregate ratings")
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan rating count row")
			return nil, fmt.Errorf("failed to scan rating count: %w", err)
		}
		counts[rating] = count
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating rating counts")
		return nil, fmt.Errorf("error iterating rating counts: %w", err)
	}

	return counts, nil
}

// GetByID retrieves a single review.
func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := r.scanReview(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("review_id", id.String()).Msg("review not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("review_id", id.String()).Msg("failed to query review")
		return nil, fmt.Errorf("failed to query review: %w", err)
	}

	return review, nil
}

// Create inserts a new review with an empty reply list.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	replies, err := json.Marshal(review.Replies)
	if err != nil {
		return fmt.Errorf("failed to marshal replies: %w", err)
	}

	query := `
		INSERT INTO reviews (` + reviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.pool.Exec(ctx, query,
		review.ID, review.ProductID, review.Name, review.Email, review.Rating,
		review.Comment, review.VerifiedPurchase, replies, review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("review_id", review.ID.String()).Msg("failed to create review")
		return fmt.Errorf("failed to create review: %w", err)
	}

	r.logger.Debug().
		Str("review_id", review.ID.String()).
		Str("product_id", review.ProductID).
		Msg("review created")

	return nil
}

// Update persists the editable fields of a review.
func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE reviews
		SET name = $2, rating = $3, comment = $4, updated_at = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID, review.Name, review.Rating, review.Comment, review.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("review_id", review.ID.String()).Msg("failed to update review")
		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

// Delete removes a review.
func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("review_id", id.String()).Msg("failed to delete review")
		return false, fmt.Errorf("failed to delete review: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// AppendReply appends a reply to the review's JSONB reply list.
func (r *reviewRepository) AppendReply(ctx context.Context, id uuid.UUID, reply model.ReviewReply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("failed to marshal reply: %w", err)
	}

	query := `
		UPDATE reviews
		SET replies = replies || $2::jsonb, updated_at = $3
		WHERE id = $1
	`

	_, err = r.pool.Exec(ctx, query, id, payload, reply.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("review_id", id.String()).Msg("failed to append reply")
		return fmt.Errorf("failed to append reply: %w", err)
	}

	return nil
}

// scanReview reads one review row in reviewColumns order, decoding the
// JSONB reply list.
func (r *reviewRepository) scanReview(row pgx.Row) (*model.Review, error) {
	var review model.Review
	var replies []byte
	err := row.Scan(
		&review.ID, &review.ProductID, &review.Name, &review.Email, &review.Rating,
		&review.Comment, &review.VerifiedPurchase, &replies, &review.CreatedAt, &review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(replies, &review.Replies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replies: %w", err)
	}
	if review.Replies == nil {
		review.Replies = []model.ReviewReply{}
	}

	return &review, nil
}
