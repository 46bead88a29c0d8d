package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	logger   zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviews:  reviews,
		products: products,
		logger:   logger.With().Str("service", "review").Logger(),
	}
}

// ListByProduct retrieves a page of a product's reviews. The breakdown and
// average rating always cover every review of the product, regardless of any
// rating filter or pagination applied to the listed page.
func (s *reviewService) ListByProduct(ctx context.Context, productID string, q model.ReviewQuery) (*model.ReviewPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 5
	}
	if q.Sort != model.ReviewSortHighest {
		q.Sort = model.ReviewSortNewest
	}

	reviews, total, err := s.reviews.ListByProduct(ctx, productID, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []model.Review{}
	}

	counts, err := s.reviews.RatingCounts(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	breakdown := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	sum, n := 0, 0
	for rating, count := range counts {
		if rating < 1 || rating > 5 {
			continue
		}
		breakdown[rating] = count
		sum += rating * count
		n += count
	}

	avg := 0.0
	if n > 0 {
		avg = math.Round(float64(sum)/float64(n)*10) / 10
	}

	return &model.ReviewPage{
		Reviews:       reviews,
		Total:         total,
		Page:          q.Page,
		Pages:         (total + q.Limit - 1) / q.Limit,
		Breakdown:     breakdown,
		AverageRating: avg,
	}, nil
}

// Create adds a review to a product.
func (s *reviewService) Create(ctx context.Context, productID string, input model.ReviewInput) (*model.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, model.ErrInvalidRating
	}
	if input.Name == "" || input.Email == "" || input.Comment == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Name, email and comment are required")
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	now := time.Now()
	review := &model.Review{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      input.Name,
		Email:     input.Email,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Replies:   []model.ReviewReply{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info().
		Str("review_id", review.ID.String()).
		Str("product_id", productID).
		Int("rating", review.Rating).
		Msg("review created")

	return review, nil
}

// Update edits a review. The caller's email must match the review's email,
// case-insensitively.
func (s *reviewService) Update(ctx context.Context, reviewID uuid.UUID, update model.ReviewUpdate) (*model.Review, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return nil, model.ErrReviewNotFound
	}
	if !strings.EqualFold(review.Email, update.Email) {
		return nil, model.ErrReviewForbidden
	}

	if update.Rating != nil {
		if *update.Rating < 1 || *update.Rating > 5 {
			return nil, model.ErrInvalidRating
		}
		review.Rating = *update.Rating
	}
	if update.Name != nil {
		review.Name = *update.Name
	}
	if update.Comment != nil {
		review.Comment = *update.Comment
	}
	review.UpdatedAt = time.Now()

	if err := s.reviews.Update(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("review_id", reviewID.String()).Msg("failed to update review")
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return review, nil
}

// Delete removes a review. The caller's email must match the review's email,
// case-insensitively.
func (s *reviewService) Delete(ctx context.Context, reviewID uuid.UUID, email string) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return model.ErrReviewNotFound
	}
	if !strings.EqualFold(review.Email, email) {
		return model.ErrReviewForbidden
	}

	found, err := s.reviews.Delete(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if !found {
		return model.ErrReviewNotFound
	}

	s.logger.Info().Str("review_id", reviewID.String()).Msg("review deleted")
	return nil
}

// Reply appends an admin reply to a review. Admin replies bypass the
// ownership check.
func (s *reviewService) Reply(ctx context.Context, reviewID uuid.UUID, comment string) (*model.Review, error) {
	if comment == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Reply comment is required")
	}

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return nil, model.ErrReviewNotFound
	}

	reply := model.ReviewReply{
		Name:      "Admin",
		Comment:   comment,
		IsAdmin:   true,
		CreatedAt: time.Now(),
	}

	if err := s.reviews.AppendReply(ctx, reviewID, reply); err != nil {
		s.logger.Error().Err(err).Str("review_id", reviewID.String()).Msg("failed to append reply")
		return nil, fmt.Errorf("failed to append reply: %w", err)
	}

	review.Replies = append(review.Replies, reply)
	s.logger.Info().Str("review_id", reviewID.String()).Msg("admin reply added")
	return review, nil
}
