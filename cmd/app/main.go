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

	"github.com/medikit/ClinicStock_Go/internal/config"
	"github.com/medikit/ClinicStock_Go/internal/event"
	"github.com/medikit/ClinicStock_Go/internal/handler"
	"github.com/medikit/ClinicStock_Go/internal/insights"
	"github.com/medikit/ClinicStock_Go/internal/inventory"
	"github.com/medikit/ClinicStock_Go/internal/metrics"
	"github.com/medikit/ClinicStock_Go/internal/order"
	"github.com/medikit/ClinicStock_Go/internal/restock"
	"github.com/medikit/ClinicStock_Go/internal/server"
	"github.com/medikit/ClinicStock_Go/internal/store"
	"github.com/medikit/ClinicStock_Go/internal/usage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	fileStore, err := store.New(cfg.DataDir)
	if err != nil {
		slog.Error("Failed to open data store", "error", err, "dir", cfg.DataDir)
		os.Exit(1)
	}

	eventBus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(eventBus)

	handler.InitValidator()

	summarizer := insights.NewHTTPSummarizer(insights.ClientConfig{
		URL:     cfg.InsightsURL,
		APIKey:  cfg.InsightsAPIKey,
		Model:   cfg.InsightsModel,
		Timeout: cfg.InsightsTimeout,
		Retries: cfg.InsightsRetries,
	})

	inventoryService := inventory.NewService(fileStore, eventBus)
	usageService := usage.NewService(fileStore, eventBus)
	restockService := restock.NewService(fileStore, eventBus)
	orderService := order.NewService(fileStore, eventBus)
	insightsService := insights.NewService(fileStore, restockService, summarizer)

	srv := server.NewServer(cfg.Port, fileStore, inventoryService, usageService, restockService, orderService, insightsService)

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}

	slog.Info("Server stopped")
}
