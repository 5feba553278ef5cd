package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adperf/internal/config/configs"
	"adperf/internal/core/domain"
	"adperf/internal/core/port"
	"adperf/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockPerformanceUseCase, *mocks.MockSettingsUseCase) {
	t.Helper()
	perf := mocks.NewMockPerformanceUseCase(t)
	settings := mocks.NewMockSettingsUseCase(t)
	h := NewHandler(perf, settings, discardLogger(), nil, configs.CORS{AllowedOrigins: []string{"http://localhost:3000"}})
	return h, perf, settings
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestHealthAndRoot(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := serve(h.Router(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = serve(h.Router(), http.MethodGet, "/", "")
	assert.JSONEq(t, `{"message":"Ad Performance Tracker API"}`, rec.Body.String())
}

func TestRequestIDIsReusedAndEchoed(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))

	first := serve(h.Router(), http.MethodGet, "/health", "").Header().Get(RequestIDHeader)
	second := serve(h.Router(), http.MethodGet, "/health", "").Header().Get(RequestIDHeader)
	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestPerformanceDefaultsToP1(t *testing.T) {
	h, perf, _ := newTestHandler(t)
	perf.EXPECT().
		Performance(mock.Anything, domain.PerformanceQuery{Acronym: "HM", P1Only: true}).
		Return([]domain.PerformanceRow{{AdName: "MP1", AdsetName: "SC_P_HM_US", Spend: 10}}, nil)

	rec := serve(h.Router(), http.MethodGet, "/api/bigquery/performance?employee_acronym=HM", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"ad_name":"MP1","adset_name":"SC_P_HM_US","spend":10,"croas":null}]`, rec.Body.String())
}

func TestPerformanceSummaryWithRange(t *testing.T) {
	h, perf, _ := newTestHandler(t)
	perf.EXPECT().
		Summary(mock.Anything, mock.MatchedBy(func(q domain.PerformanceQuery) bool {
			return q.Acronym == "HM" && !q.P1Only && q.Range != nil &&
				q.Range.Start.String() == "2024-01-01" && q.Range.End.String() == "2024-03-31"
		})).
		Return(domain.PerformanceSummary{TotalSpend: 0, RowCount: 0}, nil)

	rec := serve(h.Router(), http.MethodGet,
		"/api/bigquery/performance/summary?employee_acronym=HM&start_date=2024-01-01&end_date=2024-03-31&p1_only=false", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_spend":0,"blended_croas":null,"row_count":0}`, rec.Body.String())
}

func TestPerformanceRejectsBadParameters(t *testing.T) {
	h, _, _ := newTestHandler(t)

	for _, target := range []string{
		"/api/bigquery/performance",
		"/api/bigquery/performance?employee_acronym=HM&start_date=2024-01-01",
		"/api/bigquery/performance?employee_acronym=HM&start_date=yesterday&end_date=2024-01-01",
		"/api/bigquery/performance/summary?employee_acronym=HM&p1_only=maybe",
	} {
		rec := serve(h.Router(), http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
	}
}

func TestWarehouseErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		detail string
	}{
		{port.ErrWarehouseNotConfigured, http.StatusServiceUnavailable, "BigQuery table not configured: set GCP_PROJECT, BIGQUERY_DATASET, BIGQUERY_TABLE"},
		{fmt.Errorf("%w: %w", port.ErrWarehouseUnavailable, errors.New("no credentials")), http.StatusServiceUnavailable, "BigQuery client failed: no credentials"},
		{fmt.Errorf("%w: circuit breaker is open", port.ErrWarehouseThrottled), http.StatusServiceUnavailable, "BigQuery temporarily unavailable: circuit breaker is open"},
		{fmt.Errorf("%w: end_date is before start_date", port.ErrInvalidQuery), http.StatusUnprocessableEntity, "invalid query: end_date is before start_date"},
		{errors.New("Syntax error"), http.StatusBadGateway, "BigQuery request failed: Syntax error"},
	}

	for _, tt := range tests {
		t.Run(tt.detail, func(t *testing.T) {
			h, perf, _ := newTestHandler(t)
			perf.EXPECT().Sample(mock.Anything).Return(nil, tt.err)

			rec := serve(h.Router(), http.MethodGet, "/api/bigquery/sample", "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.detail, detailOf(t, rec))
		})
	}
}

func TestGetSettings(t *testing.T) {
	h, _, settings := newTestHandler(t)
	settings.EXPECT().Get(mock.Anything).Return(json.RawMessage(`{"employees":[],"custom":1}`), nil).Once()
	settings.EXPECT().Get(mock.Anything).Return(nil, errors.New("disk I/O error")).Once()

	rec := serve(h.Router(), http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"employees":[],"custom":1}`, rec.Body.String())

	rec = serve(h.Router(), http.MethodGet, "/api/settings", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to load settings: disk I/O error", detailOf(t, rec))
}

func TestPutSettings(t *testing.T) {
	h, _, settings := newTestHandler(t)
	body := `{"employees":[{"acronym":"HM"}]}`
	settings.EXPECT().Put(mock.Anything, json.RawMessage(body)).Return(json.RawMessage(body), nil).Once()
	settings.EXPECT().Put(mock.Anything, mock.Anything).Return(nil, errors.New("read-only database")).Once()

	rec := serve(h.Router(), http.MethodPut, "/api/settings", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, rec.Body.String())

	rec = serve(h.Router(), http.MethodPut, "/api/settings", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Failed to save settings: read-only database", detailOf(t, rec))
}

func TestCORSPreflight(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/settings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	h, _, _ := newTestHandler(t)
	serve(h.Router(), http.MethodGet, "/health", "")

	rec := serve(h.Router(), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `adperf_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
