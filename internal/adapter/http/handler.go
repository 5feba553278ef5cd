package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adperf/internal/config/configs"
	"adperf/internal/core/port"
	"adperf/internal/metrics"
)

// Handler is the inbound HTTP adapter of the API server. It serves
// performance data from the warehouse and the shared settings document.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	perf     port.PerformanceUseCase
	settings port.SettingsUseCase
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(perf port.PerformanceUseCase, settings port.SettingsUseCase, logger *slog.Logger, m *metrics.Metrics, corsCfg configs.CORS) *Handler {
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	h := &Handler{perf: perf, settings: settings, logger: logger}
	r := baseRouter(logger, m, corsCfg)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"message": "Ad Performance Tracker API"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/bigquery/sample", h.handleSample)
		r.Get("/bigquery/performance", h.handlePerformance)
		r.Get("/bigquery/performance/summary", h.handlePerformanceSummary)
		r.Get("/settings", h.handleGetSettings)
		r.Put("/settings", h.handlePutSettings)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
