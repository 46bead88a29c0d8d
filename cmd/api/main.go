package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-api/internal/auth"
	"storefront-api/internal/checkout"
	"storefront-api/internal/config"
	"storefront-api/internal/database"
	"storefront-api/internal/handler"
	"storefront-api/internal/mail"
	"storefront-api/internal/otp"
	"storefront-api/internal/repository"
	"storefront-api/internal/router"
	"storefront-api/internal/service"
	"storefront-api/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	ticketRepo := repository.NewTicketRepository(pool, logger)
	themeRepo := repository.NewThemeRepository(pool, logger)
	promoRepo := repository.NewPromoRepository(pool, logger)

	// Initialize OTP store with Redis and in-memory fallback
	var otpStore otp.Store
	if cfg.Redis.Enabled {
		otpStore, err = otp.NewRedisStore(ctx, cfg.Redis.Addr, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise Redis OTP store, falling back to in-memory store")
			otpStore = otp.NewMemoryStore()
		}
	} else {
		otpStore = otp.NewMemoryStore()
		logger.Info().Msg("using in-memory OTP store (Redis disabled)")
	}

	// Initialize mail sender
	var sender mail.Sender
	if cfg.SMTP.Enabled {
		sender = mail.NewSMTPSender(cfg.SMTP, logger)
	} else {
		sender = mail.NewLogSender(logger)
		logger.Info().Msg("email delivery disabled, logging messages instead")
	}

	// Initialize image uploader
	var uploader storage.Uploader
	if cfg.S3.Enabled {
		uploader, err = storage.NewS3Uploader(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 uploader, image uploads disabled")
			uploader = storage.NewDisabledUploader()
		}
	} else {
		uploader = storage.NewDisabledUploader()
		logger.Info().Msg("image uploads disabled (S3 disabled)")
	}

	// Initialize token manager
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLDays)*24*time.Hour)

	// Initialize services
	pricing := checkout.Pricing{
		TaxRate:               cfg.Pricing.TaxRate,
		FlatShippingFee:       cfg.Pricing.FlatShippingFee,
		FreeShippingThreshold: cfg.Pricing.FreeShippingThreshold,
	}
	otpTTL := time.Duration(cfg.OTP.TTLMinutes) * time.Minute

	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, pricing, logger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, logger)
	userService := service.NewUserService(userRepo, tokens, logger)
	ticketService := service.NewTicketService(ticketRepo, sender, logger)
	newsletterService := service.NewNewsletterService(userRepo, promoRepo, otpStore, sender, otpTTL, logger)
	themeService := service.NewThemeService(themeRepo, logger)
	statsService := service.NewStatsService(orderRepo, productRepo, userRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:    handler.NewProductHandler(productService, uploader, logger),
		Order:      handler.NewOrderHandler(orderService, logger),
		Review:     handler.NewReviewHandler(reviewService, logger),
		User:       handler.NewUserHandler(userService, logger),
		Ticket:     handler.NewTicketHandler(ticketService, logger),
		Newsletter: handler.NewNewsletterHandler(newsletterService, logger),
		Theme:      handler.NewThemeHandler(themeService, logger),
		Stats:      handler.NewStatsHandler(statsService, logger),
	}

	// Initialize router
	mux := router.New(handlers, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
