package port

import (
	"context"
	"encoding/json"

	"adperf/internal/core/domain"
)

// PerformanceAPI is the dashboard's view of the performance endpoints. A nil
// range asks for P1 ads over all time; a range lifts the P1 filter.
type PerformanceAPI interface {
	FetchPerformance(ctx context.Context, acronym string, rng *domain.DateRange) ([]domain.PerformanceRow, error)
	FetchPerformanceSummary(ctx context.Context, acronym string, rng *domain.DateRange) (domain.Aggregates, error)
}

// SettingsAPI is the dashboard's view of the settings endpoints. Fetched
// documents are returned raw and must be normalized before use.
type SettingsAPI interface {
	FetchSettings(ctx context.Context) (json.RawMessage, error)
	SaveSettings(ctx context.Context, settings domain.Settings) (json.RawMessage, error)
}
