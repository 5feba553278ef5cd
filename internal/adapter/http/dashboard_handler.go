package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adperf/internal/adapter/usecase"
	"adperf/internal/config/configs"
	"adperf/internal/core/domain"
	"adperf/internal/metrics"
)

// DashboardViews produces the dashboard and ads pages.
type DashboardViews interface {
	View() usecase.DashboardView
	Retry(acronym string) (<-chan struct{}, error)
	Ads(ctx context.Context, acronym string, rng *domain.DateRange) usecase.AdsView
}

// SettingsEditor is the in-memory settings document behind the settings page.
type SettingsEditor interface {
	Settings() domain.Settings
	Err() string
	Loading() bool
	Update(ctx context.Context, fn usecase.Mutator) error
}

// DashboardHandler is the inbound HTTP adapter of the dashboard service.
type DashboardHandler struct {
	views    DashboardViews
	settings SettingsEditor
	logger   *slog.Logger
	router   chi.Router
}

// NewDashboardHandler creates a handler with all routes configured.
func NewDashboardHandler(views DashboardViews, settings SettingsEditor, logger *slog.Logger, m *metrics.Metrics, corsCfg configs.CORS) *DashboardHandler {
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	h := &DashboardHandler{views: views, settings: settings, logger: logger}
	r := baseRouter(logger, m, corsCfg)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", h.handleDashboard)
		r.Post("/dashboard/employees/{acronym}/retry", h.handleRetry)
		r.Get("/ads", h.handleAds)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.handleSettingsView)
			r.Put("/", h.handleReplaceSettings)
			r.Post("/employees", h.handleAddEmployee)
			r.Patch("/employees/{index}", h.handleUpdateEmployee)
			r.Delete("/employees/{index}", h.handleRemoveEmployee)
			r.Patch("/thresholds/{metric}/{color}", h.handleUpdateThreshold)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *DashboardHandler) Router() http.Handler {
	return h.router
}

// handleDashboard returns both employee tables with their colours.
func (h *DashboardHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.views.View())
}

// handleRetry reloads one employee in the background. Unknown acronyms
// result in HTTP 404.
func (h *DashboardHandler) handleRetry(w http.ResponseWriter, r *http.Request) {
	acronym := chi.URLParam(r, "acronym")
	if _, err := h.views.Retry(acronym); err != nil {
		writeError(w, h.logger, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleAds returns the ad-level breakdown of one employee. It accepts
// `employee_acronym` (required) and optional `start_date` and `end_date`.
// Fetch failures are reported inside the view, not as a status.
func (h *DashboardHandler) handleAds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	acronym := q.Get("employee_acronym")
	if acronym == "" {
		writeError(w, h.logger, http.StatusUnprocessableEntity, "employee_acronym is required")
		return
	}
	rng, err := domain.ParseDateRange(q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.views.Ads(r.Context(), acronym, rng))
}
