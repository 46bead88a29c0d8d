package service

import (
	"context"

	"storefront-api/internal/model"

	"github.com/google/uuid"
)

// OrderService defines operations for the order lifecycle.
type OrderService interface {
	// Create normalizes a raw checkout payload, computes totals, and
	// persists a new pending order.
	Create(ctx context.Context, payload map[string]any) (*model.Order, error)

	// GetByID retrieves an order.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// Page retrieves a page of orders, newest first.
	Page(ctx context.Context, page, limit int) (*model.OrderPage, error)

	// Update applies a partial lifecycle update to an order.
	Update(ctx context.Context, id uuid.UUID, update model.OrderUpdate) (*model.Order, error)

	// Delete hard-deletes an order.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	// List retrieves products matching the filter.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create adds a product to the catalogue.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update applies a partial update to a product.
	Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id string) error

	// NextCode returns the next product code for the admin form.
	NextCode(ctx context.Context) (string, error)

	// Categories returns the fixed storefront categories.
	Categories() []model.Category
}

// ReviewService defines operations for product reviews.
type ReviewService interface {
	// ListByProduct retrieves a paginated, sorted view of a product's
	// reviews plus the aggregate rating breakdown.
	ListByProduct(ctx context.Context, productID string, q model.ReviewQuery) (*model.ReviewPage, error)

	// Create adds a review to a product.
	Create(ctx context.Context, productID string, input model.ReviewInput) (*model.Review, error)

	// Update edits a review after verifying ownership by email.
	Update(ctx context.Context, reviewID uuid.UUID, update model.ReviewUpdate) (*model.Review, error)

	// Delete removes a review after verifying ownership by email.
	Delete(ctx context.Context, reviewID uuid.UUID, email string) error

	// Reply appends an admin reply to a review. No ownership check.
	Reply(ctx context.Context, reviewID uuid.UUID, comment string) (*model.Review, error)
}

// UserService defines operations for accounts and authentication.
type UserService interface {
	// Register creates an account and returns a signed token.
	Register(ctx context.Context, input model.RegisterInput) (*model.AuthResponse, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error)

	// Profile retrieves a user's profile.
	Profile(ctx context.Context, id uuid.UUID) (*model.User, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]model.User, error)

	// ToggleBlock flips a user's active flag.
	ToggleBlock(ctx context.Context, id uuid.UUID) (*model.User, error)

	// ToggleRole flips a user between admin and regular roles.
	ToggleRole(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// TicketService defines operations for support tickets.
type TicketService interface {
	// Create files a ticket and sends a best-effort confirmation email.
	Create(ctx context.Context, input model.TicketInput) (*model.Ticket, error)

	// List retrieves all tickets, newest first.
	List(ctx context.Context) ([]model.Ticket, error)

	// ListByUser retrieves a user's tickets, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Ticket, error)

	// GetByID retrieves a ticket.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)

	// Reply records an admin reply and sends a best-effort notification.
	Reply(ctx context.Context, id uuid.UUID, reply model.TicketReply) (*model.Ticket, error)

	// UpdateStatus sets a ticket's status and optionally its priority.
	UpdateStatus(ctx context.Context, id uuid.UUID, status, priority string) (*model.Ticket, error)
}

// NewsletterService defines operations for subscriptions and promos.
type NewsletterService interface {
	// SendOTP issues a one-time code and emails it, best-effort.
	SendOTP(ctx context.Context, email string) error

	// Verify consumes a one-time code and records the subscription.
	Verify(ctx context.Context, email, code string) error

	// Subscribers retrieves all newsletter subscribers.
	Subscribers(ctx context.Context) ([]model.User, error)

	// Broadcast emails all subscribers, best-effort, returning the
	// recipient count.
	Broadcast(ctx context.Context, subject, message string) (int, error)

	// CreatePromo records a promotion.
	CreatePromo(ctx context.Context, title, description, discountCode string, discountPercent int, validTill string) (*model.Promo, error)

	// Promos retrieves all promotions, newest first.
	Promos(ctx context.Context) ([]model.Promo, error)
}

// ThemeService defines operations for themes and the seasonal mode.
type ThemeService interface {
	// Themes retrieves all themes.
	Themes(ctx context.Context) ([]model.Theme, error)

	// Theme retrieves a theme by ID.
	Theme(ctx context.Context, id string) (*model.Theme, error)

	// SaveTheme creates or replaces a theme, applying defaults.
	SaveTheme(ctx context.Context, theme model.Theme) (*model.Theme, error)

	// DeleteTheme removes a theme. The default theme is protected.
	DeleteTheme(ctx context.Context, id string) error

	// ActivateTheme marks a theme as the active one.
	ActivateTheme(ctx context.Context, id string) (*model.Theme, error)

	// ChristmasStatus retrieves the seasonal mode, creating the default on
	// first read.
	ChristmasStatus(ctx context.Context) (*model.ChristmasMode, error)

	// UpdateChristmas applies a partial update to the seasonal mode.
	UpdateChristmas(ctx context.Context, update model.ChristmasUpdate, actor string) (*model.ChristmasMode, error)

	// SetChristmasDiscount sets the seasonal discount percentage.
	SetChristmasDiscount(ctx context.Context, discount int, actor string) (*model.ChristmasMode, error)
}

// StatsService summarises the store for the admin dashboard.
type StatsService interface {
	// Stats returns entity counts and total revenue.
	Stats(ctx context.Context) (*model.StoreStats, error)
}
