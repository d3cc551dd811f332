// Command api is the Scoracle Splits API server.
//
// Usage:
//
//	scoracle-splits-api
//	API_PORT=8080 scoracle-splits-api

// @title Scoracle Splits API
// @version 1.0.0
// @description Normalized ESPN player splits and games-played-weighted stat projections.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Scoracle
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/scoracle-splits/internal/api"
	"github.com/albapepper/scoracle-splits/internal/config"
	"github.com/albapepper/scoracle-splits/internal/provider/espn"
	"github.com/albapepper/scoracle-splits/internal/splits"

	_ "github.com/albapepper/scoracle-splits/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	espnClient := espn.New(espn.Options{
		BaseURL:           cfg.ESPNBaseURL,
		UserAgent:         cfg.ESPNUserAgent,
		Timeout:           cfg.ESPNHTTPTimeout,
		RequestsPerMinute: cfg.ESPNRequestsPerMinute,
	}, nil, logger)
	service := splits.NewService(espnClient, nil, logger)

	router := api.NewRouter(service, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Scoracle Splits API",
			"addr", addr,
			"environment", cfg.Environment,
			"espn_base_url", cfg.ESPNBaseURL,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
