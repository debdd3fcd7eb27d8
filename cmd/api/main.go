// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Artistly HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Build the artist registry (optionally seeded).
//  4. Connect to Redis when a change feed is configured.
//  5. Wire services, observers and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/artistly/internal/api"
	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/catalog"
	"github.com/taibuivan/artistly/internal/core/onboarding"
	"github.com/taibuivan/artistly/internal/platform/config"
	"github.com/taibuivan/artistly/internal/platform/constants"
	redisstore "github.com/taibuivan/artistly/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("change_feed", cfg.RedisURL != ""),
	)

	// Lives until shutdown; cancels the rate limiter sweeper and change feed.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. Registry ───────────────────────────────────────────────────────
	var seed []artist.Artist
	if cfg.SeedData {
		seed, err = artist.LoadSeed()
		must(log, err, "load artist seed")
	}
	registry := artist.NewRegistry(seed...)
	log.Info("registry_ready", slog.Int("artists", registry.Len()))

	searchCache := artist.NewSearchCache(cfg.SearchCacheTTL, log)
	registry.Subscribe(searchCache.Observe)

	// ── 4. Redis change feed (optional) ───────────────────────────────────
	var checks []api.HealthCheck
	if cfg.RedisURL != "" {
		startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		startupCancel()
		must(log, err, "connect to redis")

		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		notifier := artist.NewRedisNotifier(rdb, constants.RedisChannelArtistChanges, log)
		registry.Subscribe(notifier.Observe)
		go notifier.Run(appCtx)

		checks = append(checks, api.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	artistService := artist.NewService(registry, searchCache, cfg.FeaturedCount, log)
	onboardingService := onboarding.NewService(artistService, cfg.OnboardingDelay, log)

	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Artist:     artist.NewHandler(artistService),
		Catalog:    catalog.NewHandler(),
		Onboarding: onboarding.NewHandler(onboardingService),
	}

	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		appCancel()
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON root logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))

	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
