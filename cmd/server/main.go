// Command server runs the translation backend HTTP API.
//
// Startup order: environment + logging, configuration, tracing, SQLite,
// Redis, background worker pool, HTTP router, then a graceful-shutdown loop.
// Shutdown drains in-flight HTTP requests first, then the worker pool (so
// scheduled compliance validations get a chance to finish), then closes the
// external connections.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eakarpinar/go-translation-backend/internal/cache"
	"github.com/eakarpinar/go-translation-backend/internal/config"
	httpapi "github.com/eakarpinar/go-translation-backend/internal/http"
	"github.com/eakarpinar/go-translation-backend/internal/limiter"
	"github.com/eakarpinar/go-translation-backend/internal/observability"
	"github.com/eakarpinar/go-translation-backend/internal/provider"
	"github.com/eakarpinar/go-translation-backend/internal/repo"
	"github.com/eakarpinar/go-translation-backend/internal/store"
	"github.com/eakarpinar/go-translation-backend/internal/sysutil"
	"github.com/eakarpinar/go-translation-backend/internal/worker"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	logger := log.With().Str("service", cfg.OTEL.ServiceName).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing (no-op when disabled).
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		logger.Fatal().Err(err).Msg("otel setup failed")
	}

	// SQLite + schema.
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate database failed")
	}

	// Shared counter/cache store.
	st, err := store.Open(ctx, store.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("open redis failed")
	}

	quota := &limiter.QuotaLimiter{Store: st, Window: cfg.QuotaWindow}
	translationCache := &cache.TranslationCache{Blobs: st, TTL: cfg.CacheTTL}
	translator := provider.NewOpenAIClient(
		cfg.Provider.APIKey,
		cfg.Provider.BaseURL,
		cfg.Provider.Model,
		cfg.Provider.Timeout,
	)

	pool := worker.New(cfg.Worker.Workers, cfg.Worker.QueueSize, cfg.Worker.TaskTimeout,
		logger.With().Str("component", "worker").Logger())

	// HTTP engine.
	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, httpapi.Deps{
		DB:       db,
		Quota:    quota,
		Cache:    translationCache,
		Provider: translator,
		Pool:     pool,
		Log:      logger,
	}, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server failed")
		}
	}

	// Drain HTTP first, then background tasks, then connections.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("http shutdown incomplete")
	}
	if !pool.Close(30 * time.Second) {
		logger.Warn().Msg("worker pool shut down with tasks still pending")
	}
	if err := st.Close(); err != nil {
		logger.Warn().Err(err).Msg("redis close failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("otel shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
