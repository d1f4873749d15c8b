package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boulangerie/internal/config"
	"boulangerie/internal/handler"
	"boulangerie/internal/mailer"
	"boulangerie/internal/router"
	"boulangerie/internal/seed"
	"boulangerie/internal/store"
	"boulangerie/internal/store/local"
	"boulangerie/internal/store/shopify"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newBackend builds the store backend the configuration selects. The choice
// is made once here; nothing downstream branches on it again.
func newBackend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (store.Backend, error) {
	switch cfg.Store.Backend {
	case config.BackendShopify:
		return shopify.New(shopify.Config{
			Domain:      cfg.Store.ShopifyDomain,
			AccessToken: cfg.Store.ShopifyToken,
			APIVersion:  cfg.Store.ShopifyAPIVersion,
		}, logger), nil

	default:
		fileLoader := seed.NewFileLoader(logger)

		var s3Loader seed.Loader
		if cfg.Seed.S3Enabled {
			loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 seed loader, falling back to local sources")
			} else {
				s3Loader = loader
			}
		}

		loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Seed.S3Prefix, cfg.Seed.S3Enabled, logger)
		catalog, err := loader.Load(ctx, cfg.Seed.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed catalog: %w", err)
		}

		return local.New(catalog, logger)
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
	logger.Info().Str("backend", cfg.Store.Backend).Msg("starting boulangerie storefront API")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the store backend and the facade over it
	backend, err := newBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	storefront := store.New(backend, logger)

	// Contact mailer
	sender := mailer.NewSendGridSender(mailer.Config{
		APIKey:     cfg.Mail.SendGridKey,
		Sender:     cfg.Mail.Sender,
		OwnerEmail: cfg.Mail.OwnerEmail,
		ShopName:   cfg.Mail.ShopName,
	}, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(storefront, logger)
	cartHandler := handler.NewCartHandler(storefront, logger)
	authHandler := handler.NewAuthHandler(storefront, logger)
	contactHandler := handler.NewContactHandler(sender, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, authHandler, contactHandler, cfg.Server.AllowedOrigin, logger)

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
