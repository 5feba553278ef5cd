package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"adperf/internal/config/configs"
	"adperf/internal/metrics"
)

// RequestIDHeader carries the request id in both directions. It is the
// header chi's middleware.RequestID reads.
const RequestIDHeader = "X-Request-ID"

// EchoRequestID copies the id assigned by middleware.RequestID onto the
// response.
func EchoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			w.Header().Set(RequestIDHeader, rid)
		}
		next.ServeHTTP(w, r)
	})
}

// Logger logs one record per request.
func Logger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", statusOf(ww)),
				slog.String("rid", middleware.GetReqID(r.Context())),
				slog.Duration("latency", time.Since(start)),
			)
		})
	}
}

// Instrument records request count and latency per route pattern, so
// path parameters do not blow up label cardinality.
func Instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			m.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(statusOf(ww))).Inc()
			m.HTTPDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}

// CORS allows the configured browser origins to call the server.
func CORS(cfg configs.CORS) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	})
	return c.Handler
}

// baseRouter returns a router with the middleware stack shared by both
// servers and the health and metrics routes mounted.
func baseRouter(logger *slog.Logger, m *metrics.Metrics, corsCfg configs.CORS) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(EchoRequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(Instrument(m))
	r.Use(CORS(corsCfg))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	return r
}
