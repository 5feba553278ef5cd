package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"adperf/internal/adapter/http"
	"adperf/internal/adapter/postgres"
	"adperf/internal/adapter/sqlite"
	"adperf/internal/adapter/usecase"
	"adperf/internal/adapter/warehouse"
	"adperf/internal/config"
	"adperf/internal/core/port"
	"adperf/internal/db"
	"adperf/internal/metrics"
)

// main is the entry point of the performance and settings API. It loads
// configuration, opens the settings store (Postgres when an address is
// configured, SQLite otherwise), builds the BigQuery warehouse, then starts
// the HTTP server. On receiving a termination signal it gracefully shuts
// down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout, "api").With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openSettingsRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer closeRepo()

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	var wh port.Warehouse
	bq, err := warehouse.New(ctx, cfg.BigQuery, logger)
	if err != nil {
		// the server still serves settings; warehouse routes report err
		logger.Warn("warehouse unavailable", slog.Any("error", err))
		wh = warehouse.Unavailable{Err: err}
	} else {
		defer bq.Close()
		wh = bq
	}
	wh = warehouse.NewGuard(wh, cfg.Warehouse, logger, m)

	handler := httpadapter.NewHandler(
		usecase.NewPerformanceService(wh, logger),
		usecase.NewSettingsService(repo, logger),
		logger, m, cfg.CORS,
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
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

// openSettingsRepository opens the configured settings store and applies its
// migrations when enabled. The returned func releases the store.
func openSettingsRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.SettingsRepository, func(), error) {
	if cfg.Psql.Enabled() {
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully", slog.String("store", "postgres"))
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewSettingsRepository(pool), pool.Close, nil
	}

	conn, err := db.OpenSQLite(cfg.SQLite)
	if err != nil {
		return nil, nil, err
	}
	if err = db.MigrateSQLite(conn); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	logger.Info("using sqlite settings store", slog.String("path", cfg.SQLite.Path))
	return sqlite.NewSettingsRepository(conn), closer(conn), nil
}

func closer(conn *sql.DB) func() {
	return func() { _ = conn.Close() }
}
