package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"libraryapi/internal/auth"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/httpx"
	"libraryapi/internal/platform/mongodb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("cannot load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("cannot connect to mongodb", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	logger.Info("database connection OK")

	db := client.Database(cfg.Mongo.Database)

	bookRepo := book.NewMongoRepo(db)
	adminRepo := auth.NewMongoRepo(db)

	bootstrapCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := bookRepo.EnsureIndexes(bootstrapCtx); err != nil {
		logger.Error("cannot create book indexes", slog.Any("error", err))
		os.Exit(1)
	}
	if err := adminRepo.EnsureIndexes(bootstrapCtx); err != nil {
		logger.Error("cannot create admin indexes", slog.Any("error", err))
		os.Exit(1)
	}
	if err := adminRepo.EnsureAdmin(bootstrapCtx, logger, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("cannot bootstrap admin", slog.Any("error", err))
		os.Exit(1)
	}

	bookHandler := book.NewHTTPHandler(book.NewService(bookRepo), logger)
	authHandler := auth.NewHTTPHandler(auth.NewService(adminRepo, cfg.JWTSecret, cfg.TokenTTL), logger)

	healthcheck := mongodb.Healthcheck(client)
	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(logger))
	r.Use(httpx.RecoveryMiddleware(logger))
	r.Use(httpx.SecurityHeadersMiddleware)
	r.Use(httpx.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(rateLimit.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{
			"status":    "Server is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := healthcheck(pingCtx); err != nil {
			httpx.Error(w, http.StatusServiceUnavailable, "NOT_READY", "Database not ready")
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	r.Post("/auth/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(httpx.AuthMiddleware(cfg.JWTSecret))
		r.Get("/auth/verify", authHandler.Verify)
		r.Route("/books", bookHandler.Routes)
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", cfg.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", slog.Any("error", err))
		}
	}
}

func newLogger(format string) *slog.Logger {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	return slog.New(handler)
}
