// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

// Package main is the entry point for the SentinelLite server.
//
// SentinelLite is a demonstration backend for a security-event dashboard. It
// serves a REST API over an in-memory dataset of synthetic security logs and
// alerts, with mock session-token authentication.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered load from defaults, config.yaml, and environment
//     variables (Koanf v2)
//  2. Fixtures: synthetic log entries and seed alerts
//  3. Stores: in-memory log and alert stores
//  4. Authentication: bcrypt credential store and session registry
//  5. HTTP server: chi router under a suture supervision tree
//
// # Configuration
//
// All settings have working defaults; the common overrides are environment
// variables:
//   - HTTP_HOST, HTTP_PORT: bind address (default 0.0.0.0:5000)
//   - CORS_ORIGINS: comma-separated allowed origins (default *)
//   - FIXTURE_LOG_COUNT, FIXTURE_SEED: fixture dataset shape
//   - LOG_LEVEL, LOG_FORMAT: logging (default info/json)
//   - DISABLE_RATE_LIMIT: turn off per-IP rate limiting
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the server stops accepting
// connections and waits up to 10 seconds for in-flight requests to drain.
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

	"github.com/sentinel-lite/sentinel-lite/internal/api"
	"github.com/sentinel-lite/sentinel-lite/internal/auth"
	"github.com/sentinel-lite/sentinel-lite/internal/config"
	"github.com/sentinel-lite/sentinel-lite/internal/logging"
	"github.com/sentinel-lite/sentinel-lite/internal/store"
	"github.com/sentinel-lite/sentinel-lite/internal/supervisor"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Int("fixture_logs", cfg.Fixtures.LogCount).
		Msg("Starting SentinelLite")

	// Build the in-memory dataset. A non-zero seed makes the log fixtures
	// reproducible across restarts.
	now := time.Now()
	rng := store.NewFixtureRand(cfg.Fixtures.Seed)
	logs := store.NewLogStore(store.GenerateLogs(cfg.Fixtures.LogCount, now, rng))
	alerts := store.NewAlertStore(store.SeedAlerts(now))
	logging.Info().
		Int("logs", logs.Len()).
		Int("alerts", alerts.Len()).
		Msg("Fixture stores initialized")

	creds, err := auth.NewCredentialStore(auth.SeedUsers(), cfg.Security.BcryptCost)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize credential store")
	}
	sessions := auth.NewSessionRegistry()

	handler := api.NewHandler(cfg, logs, alerts, creds, sessions)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Routes(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The slog adapter bridges zerolog to sutureslog.
	tree := supervisor.New(logging.NewSlogLogger(), supervisor.DefaultConfig())
	tree.Add(supervisor.NewHTTPService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped gracefully")
}
