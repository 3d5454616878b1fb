// Package main is the entry point for the converter server binary.
// It serves the conversion API under /api/v1, the web playground and
// mapping reference under /ui, and a health endpoint at /healthz.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"nrql2dql/internal/api"
	"nrql2dql/internal/config"
	"nrql2dql/internal/convert"
	"nrql2dql/internal/mappings"
	"nrql2dql/internal/middleware"
	"nrql2dql/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file (if present)
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	tables := mappings.Default()
	if cfg.MappingsPath != "" {
		tables, err = mappings.Load(cfg.MappingsPath)
		if err != nil {
			return fmt.Errorf("load mappings: %w", err)
		}
		logger.Info("mapping overlay loaded", "path", cfg.MappingsPath)
	}
	converter := convert.New(tables, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	handler := api.NewHandler(converter, logger)
	r.Get("/healthz", handler.Health)

	// Authenticated API routes when a JWT secret is configured
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.AuthEnabled() {
			r.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)))
		}
		handler.Register(r)
	})

	// Web playground and mapping reference
	r.Route("/ui", func(r chi.Router) {
		ui.MountRoutes(r, ui.NewHandler(converter))
	})

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening", "addr", cfg.ListenAddr, "env", cfg.Env, "auth", cfg.AuthEnabled())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
