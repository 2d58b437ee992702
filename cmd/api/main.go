package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopfront/internal/cart"
	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/handler"
	"shopfront/internal/render"
	"shopfront/internal/router"
	"shopfront/internal/storage"

	"github.com/rs/zerolog"
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
	logger.Info().Msg("starting shopfront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize slot storage for the cart and order snapshots. A
	// backend that cannot be reached degrades to in-memory storage so
	// the shop stays usable, matching how the site behaves when
	// browser storage is unavailable.
	store := newStorage(ctx, cfg.Storage, logger)

	// Initialize the catalogue and resolve its one-shot load up front.
	// A broken data source resolves into the built-in fallback dataset.
	catalogStore := catalog.NewStore(newCatalogLoader(cfg.Catalog, logger), logger)
	state := catalogStore.EnsureLoaded(ctx)
	if state == catalog.StateFellBack {
		logger.Warn().Msg("catalogue source unavailable, serving fallback dataset")
	}

	// Initialize the cart store. The notifier stands in for the
	// on-page cart indicator the original site refreshes after every
	// mutation.
	cartStore := cart.NewStore(store, cfg.Shop, func(itemCount int) {
		logger.Debug().Int("item_count", itemCount).Msg("cart indicator updated")
	}, logger)

	// Initialize render helpers
	renderer := render.New(cfg.Shop)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogStore, logger)
	cartHandler := handler.NewCartHandler(cartStore, catalogStore, logger)
	orderHandler := handler.NewOrderHandler(cartStore, logger)
	fragmentHandler := handler.NewFragmentHandler(renderer, catalogStore, cfg.Shop.BasePath, logger)

	// Initialize router
	mux := router.New(catalogHandler, cartHandler, orderHandler, fragmentHandler, logger)

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

// newStorage selects the slot storage backend. Backend failures fall
// back to in-memory storage rather than aborting startup.
func newStorage(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) storage.Storage {
	switch cfg.Backend {
	case "redis":
		store, err := storage.NewRedisStore(ctx, cfg.RedisAddr, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("addr", cfg.RedisAddr).
				Msg("failed to connect to redis, falling back to in-memory storage")
			return storage.NewMemoryStore()
		}
		logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis slot storage")
		return store

	case "file":
		store, err := storage.NewFileStore(cfg.Dir, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("dir", cfg.Dir).
				Msg("failed to initialise file storage, falling back to in-memory storage")
			return storage.NewMemoryStore()
		}
		logger.Info().Str("dir", cfg.Dir).Msg("using file slot storage")
		return store

	default:
		logger.Info().Msg("using in-memory slot storage (cart will not survive restarts)")
		return storage.NewMemoryStore()
	}
}

// newCatalogLoader selects the catalogue data source.
func newCatalogLoader(cfg config.CatalogConfig, logger zerolog.Logger) catalog.Loader {
	if cfg.Source == "http" {
		return catalog.NewHTTPLoader(cfg.URL, logger)
	}
	return catalog.NewFileLoader(cfg.Path, logger)
}
