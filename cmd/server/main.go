// Chatbot relay service: embeds a hosted chatbot on third-party pages and
// relays messages to the model provider.
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

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/api"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/config"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/middleware"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/provider"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/store"
	"github.com/umeshSinghVerma/Chatbot-service-web/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "backend", cfg.StorageBackend, "model", cfg.GeminiModel)

	// Initialize the tenant config store.
	var repo store.Repository
	if cfg.StorageBackend == "memory" {
		repo = store.NewMemory()
	} else {
		repo, err = store.NewSQLite(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Store health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Store connected")

	// Initialize the model provider.
	var llm provider.Client
	if cfg.UseMockProvider {
		llm = provider.NewMock()
		slog.Info("Using mock provider (no upstream calls)")
	} else {
		llm, err = provider.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ProviderTimeout)
		if err != nil {
			slog.Error("Failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
	}

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	// Relay and info endpoints, each with its own CORS method list.
	api.NewHandler(repo, llm).RegisterRoutes(r)

	// Embed bootstrap script and the hosted widget page the iframe loads.
	r.Get("/script.js", web.ScriptHandler(cfg.HostedOrigin).ServeHTTP)
	r.Get("/{id}", web.WidgetHandler().ServeHTTP)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.ProviderTimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
