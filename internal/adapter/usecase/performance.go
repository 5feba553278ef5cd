package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

// SampleLimit caps the rows returned by Sample.
const SampleLimit = 5

// PerformanceService implements port.PerformanceUseCase on top of a
// warehouse.
type PerformanceService struct {
	warehouse port.Warehouse
	logger    *slog.Logger
}

// NewPerformanceService returns a service reading from warehouse.
func NewPerformanceService(warehouse port.Warehouse, logger *slog.Logger) *PerformanceService {
	return &PerformanceService{
		warehouse: warehouse,
		logger:    logger.With(slog.String("component", "performance")),
	}
}

// Performance returns the rows of one employee, highest spend first.
func (s *PerformanceService) Performance(ctx context.Context, q domain.PerformanceQuery) ([]domain.PerformanceRow, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	rows, err := s.warehouse.QueryPerformance(ctx, q)
	if err != nil {
		s.logger.Error("performance query failed", slog.String("acronym", q.Acronym), slog.Any("error", err))
		return nil, err
	}
	if rows == nil {
		rows = []domain.PerformanceRow{}
	}
	return rows, nil
}

// Summary reduces the rows of one employee to a single summary.
func (s *PerformanceService) Summary(ctx context.Context, q domain.PerformanceQuery) (domain.PerformanceSummary, error) {
	rows, err := s.Performance(ctx, q)
	if err != nil {
		return domain.PerformanceSummary{}, err
	}
	return domain.Summarize(rows), nil
}

// Sample returns a few raw rows of the performance table.
func (s *PerformanceService) Sample(ctx context.Context) ([]map[string]any, error) {
	rows, err := s.warehouse.Sample(ctx, SampleLimit)
	if err != nil {
		s.logger.Error("sample query failed", slog.Any("error", err))
		return nil, err
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return rows, nil
}

func validateQuery(q domain.PerformanceQuery) error {
	if strings.TrimSpace(q.Acronym) == "" {
		return fmt.Errorf("%w: employee_acronym is required", port.ErrInvalidQuery)
	}
	if q.Range != nil && q.Range.End.Before(q.Range.Start) {
		return fmt.Errorf("%w: end_date is before start_date", port.ErrInvalidQuery)
	}
	return nil
}
