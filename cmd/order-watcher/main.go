package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/teruzahostel/minimarket-backend/internal/orders"
	"github.com/teruzahostel/minimarket-backend/internal/orders/watcher"
	"github.com/teruzahostel/minimarket-backend/pkg/config"
	"github.com/teruzahostel/minimarket-backend/pkg/db"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
	"github.com/teruzahostel/minimarket-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "order-watcher"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "order-watcher",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	registry := prometheus.NewRegistry()
	watcherMetrics := metrics.NewWatcherMetrics(registry)

	w, err := watcher.New(watcher.Params{
		Logger:   logg,
		Repo:     orders.NewRepository(dbClient.DB()),
		Metrics:  watcherMetrics,
		Interval: cfg.Watcher.PollInterval,
		Timeout:  cfg.Watcher.PollTimeout,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create watcher", err)
		os.Exit(1)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsAddr := ":" + cfg.Watcher.MetricsPort
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{Addr: metricsAddr, Handler: mux}

	go func() {
		<-runCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logg.Error(context.Background(), "metrics server shutdown", err)
		}
	}()
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Error(context.Background(), "metrics server stopped unexpectedly", err)
		}
	}()

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":          cfg.App.Env,
		"interval":     cfg.Watcher.PollInterval.String(),
		"metrics_addr": metricsAddr,
	})
	logg.Info(ctx, "starting order watcher")

	w.Run(runCtx)

	logg.Info(ctx, "order watcher stopped")
}
