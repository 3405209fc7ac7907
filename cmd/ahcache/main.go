package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rickgao/skyblock-ah/internal/api"
	"github.com/rickgao/skyblock-ah/internal/cache"
	"github.com/rickgao/skyblock-ah/internal/collector"
	"github.com/rickgao/skyblock-ah/internal/config"
	"github.com/rickgao/skyblock-ah/internal/notify"
	"github.com/rickgao/skyblock-ah/internal/server"
	"github.com/rickgao/skyblock-ah/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults only when empty)")
	envPath := flag.String("env", ".env", "path to .env file, skipped when missing")
	flag.Parse()

	if err := config.LoadEnvFiles(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load env file: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging
	logger := newLogger(os.Stdout, cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting ahcache",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)
	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"api_key_set", cfg.API.APIKey != "",
		"refresh_interval", cfg.Cache.RefreshInterval,
		"concurrency", cfg.Collector.Concurrency,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create API client
	apiClient := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.APIKey,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, cfg.API.RetryBackoff),
	)

	col := collector.New(collector.Config{
		Concurrency: cfg.Collector.Concurrency,
		PageTimeout: cfg.Collector.PageTimeout,
	}, apiClient, logger)

	hub := notify.NewHub(0, logger)

	// Initial load blocks until every page is indexed
	logger.Info("loading auction index...")
	auctions, err := cache.New(ctx, col,
		cache.WithRefreshInterval(cfg.Cache.RefreshInterval),
		cache.WithLogger(logger),
		cache.WithListener(hub.Publish),
	)
	if err != nil {
		logger.Error("failed to load auction index", "error", err)
		os.Exit(1)
	}

	if err := auctions.Start(ctx); err != nil {
		logger.Error("failed to start auction cache", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.Server.Mode)
	router := server.SetupRouter(server.Config{
		StaticDir:     cfg.Server.StaticDir,
		DegradedAfter: cfg.Cache.DegradedAfter,
		Stream: server.StreamConfig{
			PingInterval: cfg.Server.PingInterval,
		},
	}, auctions, hub, logger)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("starting http server", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("ahcache running",
		"items_url", fmt.Sprintf("http://localhost:%d/items", cfg.Server.Port),
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port),
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := auctions.Stop(shutdownCtx); err != nil {
		logger.Warn("auction cache did not stop in time", "error", err)
	}

	// Stream clients are hijacked connections that Shutdown does not track.
	hub.Close()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown", "error", err)
	}

	logger.Info("ahcache stopped")
}

// loadConfig loads the config file, or uses defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return cfg, cfg.Validate()
	}
	return config.LoadAndValidate(path)
}

// newLogger builds the process logger from the log config.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
