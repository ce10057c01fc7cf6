// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package main is the entry point for the Cinescribe server application.
//
// Cinescribe is a self-hosted conversational movie recommendation service.
// Users chat in free text about what they feel like watching; the server
// extracts preference signals (liked and disliked genres, release-year
// bounds) from each message, accumulates them per session, and resolves
// them into ranked recommendations from the local catalog.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Database: Initialize DuckDB for catalog, sessions, and ratings
//  3. Chat service: Signal extraction and per-session accumulation
//  4. Recommendation engine: Signal resolution against the catalog
//  5. HTTP Server: REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (see internal/config)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Identity
//
// Cinescribe is designed to run behind a reverse proxy that authenticates
// users and forwards identity via the X-User-ID and X-User-Role headers.
// It performs no authentication of its own; never expose it directly.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (configurable timeout)
//   - Closes the database connection
//
// # Example Usage
//
// Development with a seeded catalog:
//
//	export DUCKDB_PATH=:memory:
//	export SEED_CATALOG=true
//	./cinescribe
//
// Production behind a proxy:
//
//	export DUCKDB_PATH=/data/cinescribe.duckdb
//	export CORS_ORIGINS=https://app.example.com
//	./cinescribe
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinescribe/internal/api"
	"github.com/tomtom215/cinescribe/internal/chat"
	"github.com/tomtom215/cinescribe/internal/config"
	"github.com/tomtom215/cinescribe/internal/database"
	"github.com/tomtom215/cinescribe/internal/logging"
	"github.com/tomtom215/cinescribe/internal/recommend"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Cinescribe")
	logging.Info().
		Str("db_path", cfg.Database.Path).
		Int("default_limit", cfg.Recommend.DefaultLimit).
		Int("max_limit", cfg.Recommend.MaxLimit).
		Bool("rate_limit_disabled", cfg.Security.RateLimitDisabled).
		Msg("Configuration loaded")

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	// Seed the demo catalog if enabled (for development and screenshots)
	if cfg.Database.SeedCatalog {
		inserted, err := db.SeedCatalog(context.Background())
		if err != nil {
			// Close database before fatal exit to ensure defer runs
			if closeErr := db.Close(); closeErr != nil {
				logging.Error().Err(closeErr).Msg("Error closing database")
			}
			logging.Fatal().Err(err).Msg("Failed to seed catalog")
		}
		logging.Info().Int("movies", inserted).Msg("Catalog seeding enabled (SEED_CATALOG=true)")
	}

	// Chat service: extraction and per-session signal accumulation
	chatService := chat.NewService(database.NewChatStore(db), logging.Logger())

	// Recommendation engine backed by the same database
	engine, err := recommend.NewEngine(&recommend.Config{
		DefaultLimit: cfg.Recommend.DefaultLimit,
		MaxLimit:     cfg.Recommend.MaxLimit,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}
	engine.SetDataProvider(database.NewRecommendationDataProvider(db))

	// HTTP layer
	handler := api.NewHandler(db, chatService, engine, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	}))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	serverErrCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serverErrCh <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
		if closeErr := server.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("HTTP server forced close error")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
