package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
	"adperf/internal/metrics"
)

// ErrSettingsNotSaved is wrapped by Update when the optimistic change could
// not be persisted. The change stays applied in memory.
var ErrSettingsNotSaved = errors.New("settings not saved")

// ErrSettingsLoading is returned by Update while Load has not returned yet,
// so an edit can never be based on the defaults and then lost to the
// stored document.
var ErrSettingsLoading = errors.New("settings are still loading")

// Mutator derives new settings from a private copy of the current ones.
type Mutator func(domain.Settings) (domain.Settings, error)

// SettingsStore holds the settings shared by every dashboard view. It starts
// from the defaults, is loaded once from the settings API, and persists the
// whole document after every change.
type SettingsStore struct {
	api     port.SettingsAPI
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu          sync.RWMutex
	settings    domain.Settings
	err         string
	loading     bool
	subscribers []func(domain.Settings)

	// notifyMu keeps subscriber calls in order; saveMu serializes saves.
	notifyMu sync.Mutex
	saveMu   sync.Mutex
}

// NewSettingsStore returns a store holding the defaults, marked as loading.
func NewSettingsStore(api port.SettingsAPI, logger *slog.Logger, m *metrics.Metrics) *SettingsStore {
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	return &SettingsStore{
		api:      api,
		logger:   logger.With(slog.String("component", "settings_store")),
		metrics:  m,
		settings: domain.DefaultSettings(),
		loading:  true,
	}
}

// Load replaces the in-memory settings with the normalized stored document.
// On failure the defaults are kept and the error is recorded.
func (s *SettingsStore) Load(ctx context.Context) error {
	raw, err := s.api.FetchSettings(ctx)
	var next domain.Settings
	if err == nil {
		next, err = NormalizeSettings(raw)
	}

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, "Failed to load settings")
		s.mu.Unlock()
		s.logger.Error("failed to load settings", slog.Any("error", err))
		return err
	}
	s.settings = next
	s.err = ""
	s.mu.Unlock()

	s.logger.Info("settings loaded", slog.Int("employees", len(next.Employees)))
	s.notify()
	return nil
}

// Settings returns a copy of the current settings.
func (s *SettingsStore) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// Err returns the last load or save error, or "".
func (s *SettingsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether Load has not returned yet.
func (s *SettingsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Subscribe registers fn to be called with the latest settings after every
// change. Calls are never concurrent.
func (s *SettingsStore) Subscribe(fn func(domain.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Update applies fn, publishes the result and persists it. A mutator error
// leaves everything untouched. A persistence error is recorded and returned
// wrapping ErrSettingsNotSaved, but the change is kept. Updates are rejected
// with ErrSettingsLoading until Load returns.
func (s *SettingsStore) Update(ctx context.Context, fn Mutator) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrSettingsLoading
	}
	next, err := fn(s.settings.Clone())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	next.SpendEvaluationKey = NormalizeThresholds(next.SpendEvaluationKey, domain.DefaultSpendThresholds())
	next.CROASEvaluationKey = NormalizeThresholds(next.CROASEvaluationKey, domain.DefaultCROASThresholds())
	if next.Employees == nil {
		next.Employees = []domain.Employee{}
	}
	if next.Periods == nil {
		next.Periods = []string{}
	}
	s.settings = next
	s.err = ""
	s.mu.Unlock()

	s.notify()
	return s.persist(context.WithoutCancel(ctx))
}

// persist sends the newest snapshot, so a save that waited behind another
// one never writes an outdated document.
func (s *SettingsStore) persist(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	snapshot := s.Settings()
	if _, err := s.api.SaveSettings(ctx, snapshot); err != nil {
		s.metrics.SettingsSaves.WithLabelValues("error").Inc()
		s.mu.Lock()
		s.err = errorMessage(err, "Failed to save settings")
		s.mu.Unlock()
		s.logger.Error("failed to save settings", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrSettingsNotSaved, err)
	}
	s.metrics.SettingsSaves.WithLabelValues("ok").Inc()
	return nil
}

func (s *SettingsStore) notify() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.RLock()
	subscribers := append([]func(domain.Settings){}, s.subscribers...)
	s.mu.RUnlock()

	for _, fn := range subscribers {
		fn(s.Settings())
	}
}

func errorMessage(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
