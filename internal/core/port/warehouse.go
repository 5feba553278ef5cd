package port

import (
	"context"
	"errors"

	"adperf/internal/core/domain"
)

var (
	// ErrWarehouseNotConfigured is returned while the project, dataset or
	// table of the warehouse is unset.
	ErrWarehouseNotConfigured = errors.New("BigQuery table not configured: set GCP_PROJECT, BIGQUERY_DATASET, BIGQUERY_TABLE")
	// ErrWarehouseUnavailable wraps failures to build a warehouse client.
	ErrWarehouseUnavailable = errors.New("BigQuery client failed")
	// ErrWarehouseThrottled is returned when the circuit breaker is open or
	// the rate limiter refused to wait.
	ErrWarehouseThrottled = errors.New("BigQuery temporarily unavailable")
	// ErrInvalidQuery marks a performance query rejected before reaching
	// the warehouse.
	ErrInvalidQuery = errors.New("invalid query")
)

// Warehouse is the outbound port to the ad performance table. Errors other
// than the sentinels above are query failures.
type Warehouse interface {
	// QueryPerformance returns the deduplicated rows matching q, highest
	// spend first.
	QueryPerformance(ctx context.Context, q domain.PerformanceQuery) ([]domain.PerformanceRow, error)
	// Sample returns up to limit raw rows with JSON-safe values.
	Sample(ctx context.Context, limit int) ([]map[string]any, error)
}
