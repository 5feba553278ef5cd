package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
	"adperf/internal/metrics"
)

// DashboardConfig configures a Dashboard.
type DashboardConfig struct {
	// AggregateLocally fetches raw rows and reduces them with
	// domain.Aggregate instead of calling the summary endpoint.
	AggregateLocally bool
}

// EmployeeRow is one line of the dashboard table.
type EmployeeRow struct {
	Employee   domain.Employee  `json:"employee"`
	State      domain.LoadState `json:"state"`
	SpendColor domain.Color     `json:"spendColor"`
	CROASColor domain.Color     `json:"croasColor"`
	Warning    string           `json:"warning,omitempty"`
}

// DashboardView is the whole dashboard page.
type DashboardView struct {
	Periods         []string      `json:"periods"`
	SettingsError   *string       `json:"settingsError"`
	SettingsLoading bool          `json:"settingsLoading"`
	Tenured         []EmployeeRow `json:"tenured"`
	Probationary    []EmployeeRow `json:"probationary"`
}

// AdsView is the ad-level breakdown of one employee.
type AdsView struct {
	Acronym     string                  `json:"acronym"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Range       *domain.DateRange       `json:"range"`
	Rows        []domain.PerformanceRow `json:"rows"`
	Aggregates  domain.Aggregates       `json:"aggregates"`
	SpendColor  domain.Color            `json:"spendColor"`
	CROASColor  domain.Color            `json:"croasColor"`
	Error       *string                 `json:"error"`
}

// Dashboard keeps one loader for tenured and one for probationary employees
// in step with the settings store.
type Dashboard struct {
	store  *SettingsStore
	api    port.PerformanceAPI
	cfg    DashboardConfig
	logger *slog.Logger

	tenured      *Loader
	probationary *Loader
}

// NewDashboard builds the loaders on ctx, subscribes to store and syncs once
// with the settings the store holds right now.
func NewDashboard(ctx context.Context, store *SettingsStore, api port.PerformanceAPI, cfg DashboardConfig, logger *slog.Logger, m *metrics.Metrics) *Dashboard {
	d := &Dashboard{
		store:  store,
		api:    api,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "dashboard")),
	}
	d.tenured = NewLoader(ctx, LoaderConfig{Name: "tenured"}, d.fetchTenured, logger, m)
	d.probationary = NewLoader(ctx, LoaderConfig{Name: "probationary", RequireRange: true}, d.fetchProbationary, logger, m)

	store.Subscribe(func(s domain.Settings) { d.Sync(s) })
	d.Sync(store.Settings())
	return d
}

// Sync points both loaders at the employees of s. The returned channel is
// closed when both resulting cycles are done.
func (d *Dashboard) Sync(s domain.Settings) <-chan struct{} {
	tenured, probationary := splitEmployees(s.Employees)

	t := d.tenured.Sync(entitiesOf(tenured, false))
	p := d.probationary.Sync(entitiesOf(probationary, true))

	done := make(chan struct{})
	go func() {
		<-t
		<-p
		close(done)
	}()
	return done
}

// View renders the current dashboard.
func (d *Dashboard) View() DashboardView {
	s := d.store.Settings()
	tenured, probationary := splitEmployees(s.Employees)

	view := DashboardView{
		Periods:         s.Periods,
		SettingsLoading: d.store.Loading(),
		Tenured:         rowsOf(tenured, d.tenured.Snapshot(), s),
		Probationary:    rowsOf(probationary, d.probationary.Snapshot(), s),
	}
	if msg := d.store.Err(); msg != "" {
		view.SettingsError = &msg
	}
	return view
}

// Retry refetches one employee in whichever loader holds it. The returned
// channel is closed when the fetch is done.
func (d *Dashboard) Retry(acronym string) (<-chan struct{}, error) {
	if done, ok := d.tenured.Retry(acronym); ok {
		return done, nil
	}
	if done, ok := d.probationary.Retry(acronym); ok {
		return done, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrEmployeeNotFound, acronym)
}

// Ads loads the ad rows of one employee. A range lifts the P1 filter. Fetch
// failures are reported on the view, not as an error.
func (d *Dashboard) Ads(ctx context.Context, acronym string, rng *domain.DateRange) AdsView {
	s := d.store.Settings()

	view := AdsView{
		Acronym:     acronym,
		Name:        acronym,
		Description: "P1 ad performance details from BigQuery",
		Range:       rng,
		Rows:        []domain.PerformanceRow{},
	}
	for _, e := range s.Employees {
		if e.Acronym == acronym {
			view.Name = e.DisplayName()
			break
		}
	}
	if rng != nil {
		view.Description = fmt.Sprintf("Ad performance from %s to %s", rng.Start, rng.End)
	}

	rows, err := d.api.FetchPerformance(ctx, acronym, rng)
	if err != nil {
		msg := errorMessage(err, "Failed to load ad data")
		view.Error = &msg
		d.logger.Warn("failed to load ads", slog.String("acronym", acronym), slog.Any("error", err))
	} else if rows != nil {
		view.Rows = rows
	}

	view.Aggregates = domain.Aggregate(view.Rows)
	view.SpendColor = s.SpendEvaluationKey.Evaluate(view.Aggregates.TotalSpend)
	view.CROASColor = s.CROASEvaluationKey.Evaluate(view.Aggregates.BlendedRatio)
	return view
}

func (d *Dashboard) fetchTenured(ctx context.Context, e Entity) (domain.Aggregates, error) {
	return d.fetch(ctx, e.Key, nil)
}

func (d *Dashboard) fetchProbationary(ctx context.Context, e Entity) (domain.Aggregates, error) {
	return d.fetch(ctx, e.Key, e.Range())
}

func (d *Dashboard) fetch(ctx context.Context, acronym string, rng *domain.DateRange) (domain.Aggregates, error) {
	if !d.cfg.AggregateLocally {
		return d.api.FetchPerformanceSummary(ctx, acronym, rng)
	}
	rows, err := d.api.FetchPerformance(ctx, acronym, rng)
	if err != nil {
		return domain.Aggregates{}, err
	}
	return domain.Aggregate(rows), nil
}

// splitEmployees drops employees without an acronym and splits the rest by
// status.
func splitEmployees(employees []domain.Employee) (tenured, probationary []domain.Employee) {
	for _, e := range employees {
		if !e.HasAcronym() {
			continue
		}
		if e.Status == domain.StatusProbationary {
			probationary = append(probationary, e)
		} else {
			tenured = append(tenured, e)
		}
	}
	return tenured, probationary
}

func entitiesOf(employees []domain.Employee, withDates bool) []Entity {
	out := make([]Entity, 0, len(employees))
	for _, e := range employees {
		entity := Entity{Key: e.Acronym}
		if withDates {
			entity.Start, entity.End = e.StartDate, e.ReviewDate
		}
		out = append(out, entity)
	}
	return out
}

func rowsOf(employees []domain.Employee, states map[string]domain.LoadState, s domain.Settings) []EmployeeRow {
	out := make([]EmployeeRow, 0, len(employees))
	for _, e := range employees {
		state, ok := states[e.Acronym]
		if !ok {
			state = domain.Loading()
		}
		row := EmployeeRow{
			Employee:   e,
			State:      state,
			SpendColor: domain.ColorGray,
			CROASColor: domain.ColorGray,
			Warning:    e.DateWarning(),
		}
		if state.Aggregates != nil {
			row.SpendColor = s.SpendEvaluationKey.Evaluate(state.Aggregates.TotalSpend)
			row.CROASColor = s.CROASEvaluationKey.Evaluate(state.Aggregates.BlendedRatio)
		}
		out = append(out, row)
	}
	return out
}
