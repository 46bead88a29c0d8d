package repository

import (
	"context"

	"storefront-api/internal/model"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order data access operations.
// Lookup methods return nil (not an error) when a record is absent; boolean
// results report whether a mutation found its target.
type OrderRepository interface {
	// Create inserts an order and its line items atomically.
	Create(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order with its line items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List retrieves a page of orders, newest first, along with the total
	// record count.
	List(ctx context.Context, limit, offset int) ([]model.Order, int, error)

	// Update persists the mutable lifecycle fields of an order.
	Update(ctx context.Context, order *model.Order) (bool, error)

	// Delete hard-deletes an order and its line items.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Count returns the total number of orders.
	Count(ctx context.Context) (int, error)

	// Revenue returns the summed total price of all non-cancelled orders.
	Revenue(ctx context.Context) (float64, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products matching the filter.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update persists all fields of a product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id string) (bool, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int, error)
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// ListByProduct retrieves a sorted, optionally rating-filtered page of a
	// product's reviews along with the matching record count.
	ListByProduct(ctx context.Context, productID string, q model.ReviewQuery) ([]model.Review, int, error)

	// RatingCounts returns the number of reviews per rating value over the
	// entire unfiltered set for a product.
	RatingCounts(ctx context.Context, productID string) (map[int]int, error)

	// GetByID retrieves a single review.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)

	// Create inserts a new review.
	Create(ctx context.Context, review *model.Review) error

	// Update persists the editable fields of a review.
	Update(ctx context.Context, review *model.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// AppendReply appends a reply to a review's reply list.
	AppendReply(ctx context.Context, id uuid.UUID, reply model.ReviewReply) error
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Update persists the mutable fields of a user.
	Update(ctx context.Context, user *model.User) error

	// List retrieves all users.
	List(ctx context.Context) ([]model.User, error)

	// ListSubscribers retrieves all newsletter subscribers.
	ListSubscribers(ctx context.Context) ([]model.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)
}

// TicketRepository defines the interface for support ticket data access.
type TicketRepository interface {
	// Create inserts a new ticket.
	Create(ctx context.Context, ticket *model.Ticket) error

	// GetByID retrieves a ticket.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)

	// List retrieves all tickets, newest first.
	List(ctx context.Context) ([]model.Ticket, error)

	// ListByUser retrieves a user's tickets, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Ticket, error)

	// Update persists the mutable fields of a ticket.
	Update(ctx context.Context, ticket *model.Ticket) error
}

// ThemeRepository defines the interface for theme and seasonal-mode storage.
type ThemeRepository interface {
	// ListThemes retrieves all themes.
	ListThemes(ctx context.Context) ([]model.Theme, error)

	// GetTheme retrieves a theme by ID.
	GetTheme(ctx context.Context, id string) (*model.Theme, error)

	// UpsertTheme creates or replaces a theme.
	UpsertTheme(ctx context.Context, theme *model.Theme) error

	// DeleteTheme removes a theme.
	DeleteTheme(ctx context.Context, id string) (bool, error)

	// ActivateTheme marks one theme active and all others inactive.
	ActivateTheme(ctx context.Context, id string) (bool, error)

	// GetChristmasMode retrieves the seasonal-mode singleton, or nil if it
	// has never been saved.
	GetChristmasMode(ctx context.Context) (*model.ChristmasMode, error)

	// SaveChristmasMode creates or replaces the seasonal-mode singleton.
	SaveChristmasMode(ctx context.Context, mode *model.ChristmasMode) error
}

// PromoRepository defines the interface for newsletter promo storage.
type PromoRepository interface {
	// Create inserts a new promo.
	Create(ctx context.Context, promo *model.Promo) error

	// List retrieves all promos, newest first.
	List(ctx context.Context) ([]model.Promo, error)
}
