package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

// SettingsService implements port.SettingsUseCase. Documents are stored as
// given; only the dashboard normalizes them.
type SettingsService struct {
	repo   port.SettingsRepository
	logger *slog.Logger
}

// NewSettingsService returns a service persisting through repo.
func NewSettingsService(repo port.SettingsRepository, logger *slog.Logger) *SettingsService {
	return &SettingsService{
		repo:   repo,
		logger: logger.With(slog.String("component", "settings")),
	}
}

// Get returns the stored document, or the default settings when nothing is
// stored.
func (s *SettingsService) Get(ctx context.Context) (json.RawMessage, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return json.Marshal(domain.DefaultSettings())
	}
	return doc, nil
}

// Put replaces the stored document. doc must be a JSON object.
func (s *SettingsService) Put(ctx context.Context, doc json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if fields == nil {
		return nil, ErrInvalidSettings
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	s.logger.Info("settings saved", slog.Int("bytes", len(doc)))
	return doc, nil
}
