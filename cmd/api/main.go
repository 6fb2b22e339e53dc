// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

// Command api is the entry point for the movie catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Install the tracer provider.
//  4. Connect to PostgreSQL (pgxpool).
//  5. Connect to Redis.
//  6. Run database migrations (idempotent).
//  7. Load the access token verifier.
//  8. Wire stores, services and HTTP handlers.
//  9. Start HTTP server with graceful shutdown.
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

	"github.com/hidesh/movieapp/internal/api"
	"github.com/hidesh/movieapp/internal/core/person"
	"github.com/hidesh/movieapp/internal/core/title"
	"github.com/hidesh/movieapp/internal/library"
	"github.com/hidesh/movieapp/internal/platform/config"
	"github.com/hidesh/movieapp/internal/platform/constants"
	"github.com/hidesh/movieapp/internal/platform/migration"
	pgstore "github.com/hidesh/movieapp/internal/platform/postgres"
	redisstore "github.com/hidesh/movieapp/internal/platform/redis"
	"github.com/hidesh/movieapp/internal/platform/sec"
	"github.com/hidesh/movieapp/internal/platform/tracing"
	"github.com/hidesh/movieapp/internal/search"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. A deadline surfaces misconfiguration quickly
	// instead of hanging on an unreachable dependency.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Tracing ────────────────────────────────────────────────────────
	shutdownTracing, err := tracing.Init(startupCtx, tracing.Settings{
		Enabled:     cfg.TracingEnabled,
		ServiceName: constants.AppName,
		Version:     constants.AppVersion,
		Environment: cfg.Environment,
		SampleRatio: cfg.TracingRatio,
	}, log)
	must(log, err, "initialize tracing")
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("tracing_shutdown_failed", slog.Any("error", err))
		}
	}()

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 5. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 6. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 7. Token Verification ─────────────────────────────────────────────
	// Tokens are issued by the identity service; this API only verifies them.
	verifier, err := sec.LoadTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "load token verifier")

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	libraryRepository := library.NewRepository(pool)
	overlays := library.NewMerger(libraryRepository, library.DefaultBreakerSettings, log)
	libraryService := library.NewService(libraryRepository, libraryRepository, libraryRepository)

	historyRepository := search.NewHistoryRepository(rdb, cfg.HistoryLimit, cfg.HistoryTTL)
	searchService := search.NewService(search.NewRepository(pool), historyRepository)

	titleService := title.NewService(title.NewRepository(pool), overlays, searchService)
	personService := person.NewService(person.NewRepository(pool), overlays)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Title:     title.NewHandler(titleService),
		Person:    person.NewHandler(personService),
		Library:   library.NewHandler(libraryService),
		Search:    search.NewHandler(searchService),
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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

	// Give in-flight requests enough time to complete.
	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
