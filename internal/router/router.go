package router

import (
	"net/http"

	"storefront-api/internal/auth"
	"storefront-api/internal/handler"
	"storefront-api/internal/middleware"
	"storefront-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Product    *handler.ProductHandler
	Order      *handler.OrderHandler
	Review     *handler.ReviewHandler
	User       *handler.UserHandler
	Ticket     *handler.TicketHandler
	Newsletter *handler.NewsletterHandler
	Theme      *handler.ThemeHandler
	Stats      *handler.StatsHandler
}

// New creates the HTTP router with all routes and middleware configured.
func New(h Handlers, tokens *auth.TokenManager, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	authenticate := middleware.Authenticate(tokens, logger)
	adminOnly := middleware.RequireRole(logger, model.RoleAdmin)

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public storefront routes
		r.Get("/products", h.Product.List)
		r.Get("/products/{id}", h.Product.GetByID)
		r.Get("/products/{id}/reviews", h.Review.ListByProduct)
		r.Post("/products/{id}/reviews", h.Review.Create)
		r.Get("/categories", h.Product.Categories)

		r.Put("/reviews/{id}", h.Review.Update)
		r.Delete("/reviews/{id}", h.Review.Delete)

		r.Post("/orders", h.Order.Create)
		r.With(authenticate, adminOnly).Get("/orders/page/{pageNum}", h.Order.Page)
		r.Get("/orders/{id}", h.Order.GetByID)

		r.Post("/tickets", h.Ticket.Create)

		r.Post("/newsletter/send-otp", h.Newsletter.SendOTP)
		r.Post("/newsletter/verify", h.Newsletter.Verify)

		r.Get("/themes", h.Theme.List)
		r.Get("/themes/{id}", h.Theme.GetByID)
		r.Get("/christmas/status", h.Theme.ChristmasStatus)

		// Account routes
		r.Post("/users/register", h.User.Register)
		r.Post("/users/login", h.User.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/users/profile", h.User.Profile)
			r.Put("/users/profile", h.User.UpdateProfile)
			r.Get("/tickets/my", h.Ticket.ListMine)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Get("/stats", h.Stats.Stats)

			r.Post("/products", h.Product.Create)
			r.Put("/products/{id}", h.Product.Update)
			r.Delete("/products/{id}", h.Product.Delete)
			r.Get("/products/next-code", h.Product.NextCode)
			r.Post("/products/upload-image", h.Product.UploadImage)

			r.Get("/orders", h.Order.Page)
			r.Put("/orders/{id}", h.Order.Update)
			r.Delete("/orders/{id}", h.Order.Delete)

			r.Post("/reviews/{id}/reply", h.Review.Reply)

			r.Get("/users", h.User.List)
			r.Patch("/users/{id}/block", h.User.ToggleBlock)
			r.Patch("/users/{id}/role", h.User.ToggleRole)

			r.Get("/tickets", h.Ticket.List)
			r.Get("/tickets/{id}", h.Ticket.GetByID)
			r.Post("/tickets/{id}/reply", h.Ticket.Reply)
			r.Patch("/tickets/{id}/status", h.Ticket.UpdateStatus)

			r.Get("/newsletter/subscribers", h.Newsletter.Subscribers)
			r.Post("/newsletter/broadcast", h.Newsletter.Broadcast)
			r.Get("/newsletter/promos", h.Newsletter.Promos)
			r.Post("/newsletter/promos", h.Newsletter.CreatePromo)

			r.Put("/themes/{id}", h.Theme.Save)
			r.Delete("/themes/{id}", h.Theme.Delete)
			r.Post("/themes/{id}/activate", h.Theme.Activate)

			r.Post("/christmas/toggle", h.Theme.ToggleChristmas)
			r.Post("/christmas/discount", h.Theme.SetDiscount)
		})
	})

	return r
}
