package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pharmacy-inventory-console/config"
	_ "pharmacy-inventory-console/docs" // Swagger docs
	"pharmacy-inventory-console/internal/httpserver"
	"pharmacy-inventory-console/internal/session"
	"pharmacy-inventory-console/pkg/log"
	"pharmacy-inventory-console/pkg/pharmd"
)

// @title       Pharmacy Inventory Console API
// @description Browser-facing console owning inventory view state against the pharmacy backend.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pharmacy Inventory Console...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Session (persisted so a restart keeps the login)
	sess := session.New(cfg.Session.TokenPath)
	if sess.IsAuthenticated() {
		logger.Infof(ctx, "Restored session for %s", sess.Email())
	}

	// 4. Backend client
	var httpClient *http.Client
	if cfg.Backend.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Backend.Timeout}
	}
	backend, err := pharmd.New(pharmd.Config{
		BaseURL:           cfg.Backend.BaseURL,
		Tokens:            sess,
		HTTP:              httpClient,
		SkipTunnelWarning: cfg.Backend.SkipTunnelWarning,
		RequestsPerSec:    cfg.Backend.RequestsPerSec,
		Burst:             cfg.Backend.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize backend client: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Backend:         backend,
		Session:         sess,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		PageSize:        cfg.Inventory.PageSize,
		NotificationTTL: cfg.Inventory.NotificationTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
