package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"adperf/internal/adapter/apiclient"
	"adperf/internal/adapter/http"
	"adperf/internal/adapter/usecase"
	"adperf/internal/config"
	"adperf/internal/metrics"
)

// main is the entry point of the dashboard service. It loads configuration,
// connects to the performance and settings API, loads the settings once and
// keeps both employee loaders in step with them, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout, "dashboard").With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	client, err := apiclient.New(cfg.Dashboard.APIURL, &http.Client{Timeout: cfg.Dashboard.APITimeout}, logger, m)
	if err != nil {
		logger.Error("api client error", slog.Any("error", err))
		return
	}

	store := usecase.NewSettingsStore(client, logger, m)
	dashboard := usecase.NewDashboard(ctx, store, client, usecase.DashboardConfig{
		AggregateLocally: cfg.Dashboard.AggregateLocally,
	}, logger, m)

	go func() {
		// a failed load leaves the defaults in place and shows a banner
		if err := store.Load(ctx); err != nil {
			logger.Warn("settings not loaded", slog.Any("error", err))
		}
	}()

	handler := httpadapter.NewDashboardHandler(dashboard, store, logger, m, cfg.CORS)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Dashboard.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.Dashboard.Port)), slog.String("api", cfg.Dashboard.APIURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
