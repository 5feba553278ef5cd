package port

import (
	"context"
	"encoding/json"

	"adperf/internal/core/domain"
)

// PerformanceUseCase serves performance data from the warehouse. It is the
// primary port behind the performance routes of the API server.
type PerformanceUseCase interface {
	Performance(ctx context.Context, q domain.PerformanceQuery) ([]domain.PerformanceRow, error)
	Summary(ctx context.Context, q domain.PerformanceQuery) (domain.PerformanceSummary, error)
	Sample(ctx context.Context) ([]map[string]any, error)
}

// SettingsUseCase reads and replaces the shared settings document.
type SettingsUseCase interface {
	// Get returns the stored document, or the defaults when none is stored.
	Get(ctx context.Context) (json.RawMessage, error)
	// Put stores doc verbatim and returns it. doc must be a JSON object.
	Put(ctx context.Context, doc json.RawMessage) (json.RawMessage, error)
}
