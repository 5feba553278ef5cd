package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector exported by the two servers. Each binary
// registers all of them and only moves the ones it uses.
type Metrics struct {
	// HTTPRequests counts served requests by route pattern and status.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration observes served request latency by route pattern.
	HTTPDuration *prometheus.HistogramVec

	// APIRequestDuration observes outbound calls to the API server.
	APIRequestDuration *prometheus.HistogramVec

	// LoaderCycles counts load cycles started per loader.
	LoaderCycles *prometheus.CounterVec
	// LoaderResults counts fetch outcomes per loader: ok, error, stale or
	// skipped.
	LoaderResults *prometheus.CounterVec

	// SettingsSaves counts settings persistence attempts by result.
	SettingsSaves *prometheus.CounterVec

	// WarehouseQueries observes warehouse query latency by query and status.
	WarehouseQueries *prometheus.HistogramVec
	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers the collectors on reg. A nil reg gets a private
// registry so tests and tools can pass nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "adperf_http_requests_total",
			Help: "Total number of served HTTP requests.",
		}, []string{"route", "method", "status"}),

		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "adperf_http_request_duration_seconds",
			Help:    "Histogram of served HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),

		APIRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "adperf_api_client_request_duration_seconds",
			Help:    "Histogram of outbound API request latencies.",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"endpoint", "status"}),

		LoaderCycles: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "adperf_loader_cycles_total",
			Help: "Total number of load cycles started.",
		}, []string{"loader"}),

		LoaderResults: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "adperf_loader_results_total",
			Help: "Per-entity fetch outcomes.",
		}, []string{"loader", "result"}),

		SettingsSaves: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "adperf_settings_saves_total",
			Help: "Settings persistence attempts.",
		}, []string{"result"}),

		WarehouseQueries: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "adperf_warehouse_query_duration_seconds",
			Help:    "Histogram of warehouse query latencies.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"query", "status"}),

		CircuitBreakerState: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "adperf_circuit_breaker_state",
			Help: "Current state of the circuit breaker (0=closed, 1=half-open, 2=open).",
		}, []string{"name"}),
	}

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	} else {
		m.gatherer = prometheus.DefaultGatherer
	}
	return m
}

// Handler exposes the registry the metrics were registered on.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
