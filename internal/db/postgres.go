package db

import (
	"context"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adperf/internal/config/configs"
)

// NewPostgresPool creates a new pgxpool.Pool for cfg.Addr and verifies that a
// connection can be established. The ping is retried cfg.ConnectAttempts
// times with exponential backoff, each attempt bounded by 5 seconds, so the
// server can start alongside its database. If every attempt fails the pool is
// closed and the last error is returned. The caller must close the returned
// pool when it is no longer needed.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	// zero attempts means retry forever in retry-go
	attempts := max(cfg.ConnectAttempts, 1)
	r := retry.New(
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.DelayType(retry.BackOffDelay),
	)
	err = r.Do(func() error {
		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return pool.Ping(ctxPing)
	})
	if err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
