package warehouse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adperf/internal/config/configs"
	"adperf/internal/core/domain"
	"adperf/internal/core/port"
	"adperf/internal/core/port/mocks"
	"adperf/internal/metrics"
)

func testGuardConfig() configs.Warehouse {
	return configs.Warehouse{
		RateLimit:          1000,
		RateBurst:          10,
		BreakerFailures:    2,
		BreakerMaxRequests: 1,
		BreakerInterval:    time.Minute,
		BreakerTimeout:     time.Minute,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGuardPassesThrough(t *testing.T) {
	next := mocks.NewMockWarehouse(t)
	q := domain.PerformanceQuery{Acronym: "HM", P1Only: true}
	next.EXPECT().
		QueryPerformance(mock.Anything, q).
		Return([]domain.PerformanceRow{{AdName: "MP1", Spend: 10}}, nil).
		Once()
	next.EXPECT().
		Sample(mock.Anything, 5).
		Return([]map[string]any{{"ad_name": "MP1"}}, nil).
		Once()

	m := metrics.NewMetrics(nil)
	g := NewGuard(next, testGuardConfig(), discardLogger(), m)

	rows, err := g.QueryPerformance(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	sample, err := g.Sample(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, sample, 1)

	assert.Equal(t, 2, testutil.CollectAndCount(m.WarehouseQueries))
}

func TestGuardOpensAfterFailures(t *testing.T) {
	next := mocks.NewMockWarehouse(t)
	next.EXPECT().
		QueryPerformance(mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded")).
		Times(2)

	m := metrics.NewMetrics(nil)
	g := NewGuard(next, testGuardConfig(), discardLogger(), m)
	q := domain.PerformanceQuery{Acronym: "HM"}

	for i := 0; i < 2; i++ {
		_, err := g.QueryPerformance(context.Background(), q)
		require.EqualError(t, err, "quota exceeded")
	}

	_, err := g.QueryPerformance(context.Background(), q)
	require.ErrorIs(t, err, port.ErrWarehouseThrottled)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CircuitBreakerState.WithLabelValues(breakerName)))
}

func TestGuardIgnoresConfigurationErrors(t *testing.T) {
	g := NewGuard(Unavailable{Err: port.ErrWarehouseNotConfigured}, testGuardConfig(), discardLogger(), nil)

	for i := 0; i < 5; i++ {
		_, err := g.Sample(context.Background(), 5)
		require.ErrorIs(t, err, port.ErrWarehouseNotConfigured)
	}
}

func TestGuardCancelledContext(t *testing.T) {
	cfg := testGuardConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	g := NewGuard(mocks.NewMockWarehouse(t), cfg, discardLogger(), nil)

	// drain the single token
	g.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.QueryPerformance(ctx, domain.PerformanceQuery{Acronym: "HM"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGuardThrottlesWhenWaitExceedsDeadline(t *testing.T) {
	cfg := testGuardConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	g := NewGuard(mocks.NewMockWarehouse(t), cfg, discardLogger(), nil)
	g.limiter.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	_, err := g.QueryPerformance(ctx, domain.PerformanceQuery{Acronym: "HM"})
	assert.ErrorIs(t, err, port.ErrWarehouseThrottled)
}

func TestNewRequiresProject(t *testing.T) {
	_, err := New(context.Background(), configs.BigQuery{Dataset: "ds", Table: "t"}, discardLogger())
	require.ErrorIs(t, err, port.ErrWarehouseNotConfigured)
	assert.EqualError(t, err, "GCP_PROJECT is not set; BigQuery is not configured")
}
