package warehouse

import (
	"context"

	"adperf/internal/core/domain"
)

// Unavailable stands in for a warehouse that could not be set up at startup.
// Every call returns Err, so the API server keeps serving settings and
// reports the warehouse problem per request.
type Unavailable struct {
	Err error
}

func (u Unavailable) QueryPerformance(context.Context, domain.PerformanceQuery) ([]domain.PerformanceRow, error) {
	return nil, u.Err
}

func (u Unavailable) Sample(context.Context, int) ([]map[string]any, error) {
	return nil, u.Err
}
