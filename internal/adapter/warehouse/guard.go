package warehouse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"adperf/internal/config/configs"
	"adperf/internal/core/domain"
	"adperf/internal/core/port"
	"adperf/internal/metrics"
)

const breakerName = "bigquery"

// Guard puts a rate limiter and a circuit breaker in front of a warehouse.
// Configuration errors and cancelled requests never trip the breaker.
type Guard struct {
	next    port.Warehouse
	cb      *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewGuard wraps next according to cfg.
func NewGuard(next port.Warehouse, cfg configs.Warehouse, logger *slog.Logger, m *metrics.Metrics) *Guard {
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	g := &Guard{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		timeout: cfg.QueryTimeout,
		metrics: m,
		logger:  logger.With(slog.String("component", "warehouse_guard")),
	}

	g.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, port.ErrWarehouseNotConfigured) ||
				errors.Is(err, port.ErrWarehouseUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			g.logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	m.CircuitBreakerState.WithLabelValues(breakerName).Set(float64(gobreaker.StateClosed))

	return g
}

// QueryPerformance runs next.QueryPerformance under the limiter and breaker.
func (g *Guard) QueryPerformance(ctx context.Context, q domain.PerformanceQuery) ([]domain.PerformanceRow, error) {
	res, err := g.execute(ctx, "performance", func(ctx context.Context) (any, error) {
		return g.next.QueryPerformance(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.PerformanceRow), nil
}

// Sample runs next.Sample under the limiter and breaker.
func (g *Guard) Sample(ctx context.Context, limit int) ([]map[string]any, error) {
	res, err := g.execute(ctx, "sample", func(ctx context.Context) (any, error) {
		return g.next.Sample(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	return res.([]map[string]any), nil
}

func (g *Guard) execute(ctx context.Context, query string, fn func(context.Context) (any, error)) (res any, err error) {
	start := time.Now()
	status := "ok"
	defer func() {
		g.metrics.WarehouseQueries.WithLabelValues(query, status).Observe(time.Since(start).Seconds())
	}()

	if err = g.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			status = "cancelled"
			return nil, ctxErr
		}
		status = "throttled"
		return nil, fmt.Errorf("%w: %w", port.ErrWarehouseThrottled, err)
	}

	res, err = g.cb.Execute(func() (interface{}, error) {
		if g.timeout <= 0 {
			return fn(ctx)
		}
		tCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		return fn(tCtx)
	})

	switch {
	case err == nil:
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		status = "throttled"
		err = fmt.Errorf("%w: %w", port.ErrWarehouseThrottled, err)
	default:
		status = "error"
	}
	return res, err
}
