package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adperf/internal/adapter/usecase"
	"adperf/internal/config/configs"
	"adperf/internal/core/domain"
	"adperf/internal/core/port/mocks"
)

type dashboardFixture struct {
	handler     *DashboardHandler
	dashboard   *usecase.Dashboard
	store       *usecase.SettingsStore
	perf        *mocks.MockPerformanceAPI
	settingsAPI *mocks.MockSettingsAPI
}

func newDashboardFixture(t *testing.T) dashboardFixture {
	t.Helper()
	perf := mocks.NewMockPerformanceAPI(t)
	settingsAPI := mocks.NewMockSettingsAPI(t)

	doc, err := json.Marshal(domain.DefaultSettings())
	require.NoError(t, err)
	settingsAPI.EXPECT().FetchSettings(mock.Anything).Return(doc, nil).Once()

	store := usecase.NewSettingsStore(settingsAPI, discardLogger(), nil)
	require.NoError(t, store.Load(context.Background()))
	d := usecase.NewDashboard(context.Background(), store, perf, usecase.DashboardConfig{}, discardLogger(), nil)

	return dashboardFixture{
		handler:     NewDashboardHandler(d, store, discardLogger(), nil, configs.CORS{}),
		dashboard:   d,
		store:       store,
		perf:        perf,
		settingsAPI: settingsAPI,
	}
}

func (f dashboardFixture) settle(t *testing.T) usecase.DashboardView {
	t.Helper()
	var view usecase.DashboardView
	require.Eventually(t, func() bool {
		view = f.dashboard.View()
		for _, rows := range [][]usecase.EmployeeRow{view.Tenured, view.Probationary} {
			for _, row := range rows {
				if row.State.IsLoading {
					return false
				}
			}
		}
		return true
	}, 5*time.Second, 5*time.Millisecond)
	return view
}

func decodeSettingsView(t *testing.T, body []byte) SettingsView {
	t.Helper()
	var view SettingsView
	require.NoError(t, json.Unmarshal(body, &view))
	return view
}

func TestDashboardRoute(t *testing.T) {
	f := newDashboardFixture(t)
	f.perf.EXPECT().
		FetchPerformanceSummary(mock.Anything, mock.Anything, (*domain.DateRange)(nil)).
		Return(domain.Aggregates{TotalSpend: 25000, BlendedRatio: 3.5, RowCount: 2}, nil)
	f.settle(t)

	rec := serve(f.handler.Router(), http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view usecase.DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Tenured, 3)
	assert.Equal(t, domain.ColorGreen, view.Tenured[0].SpendColor)
	assert.Equal(t, domain.ColorGreen, view.Tenured[0].CROASColor)
	assert.Equal(t, []string{"P1"}, view.Periods)
}

func TestRetryRoute(t *testing.T) {
	f := newDashboardFixture(t)
	f.perf.EXPECT().
		FetchPerformanceSummary(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Aggregates{}, nil)
	f.settle(t)

	rec := serve(f.handler.Router(), http.MethodPost, "/api/dashboard/employees/HM/retry", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	f.settle(t)

	rec = serve(f.handler.Router(), http.MethodPost, "/api/dashboard/employees/NOPE/retry", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdsRoute(t *testing.T) {
	f := newDashboardFixture(t)
	f.perf.EXPECT().
		FetchPerformanceSummary(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Aggregates{}, nil)
	f.perf.EXPECT().
		FetchPerformance(mock.Anything, "HM", mock.MatchedBy(func(rng *domain.DateRange) bool {
			return rng != nil && rng.Start.String() == "2024-01-01"
		})).
		Return([]domain.PerformanceRow{{AdName: "ad", Spend: 100}}, nil)
	f.settle(t)

	rec := serve(f.handler.Router(), http.MethodGet, "/api/ads?employee_acronym=HM&start_date=2024-01-01&end_date=2024-01-31", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view usecase.AdsView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Employee HM", view.Name)
	assert.Equal(t, float64(100), view.Aggregates.TotalSpend)

	rec = serve(f.handler.Router(), http.MethodGet, "/api/ads", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve(f.handler.Router(), http.MethodGet, "/api/ads?employee_acronym=HM&end_date=2024-01-31", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSettingsViewWarnings(t *testing.T) {
	f := newDashboardFixture(t)
	f.perf.EXPECT().
		FetchPerformanceSummary(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Aggregates{}, nil).
		Maybe()
	f.settingsAPI.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(json.RawMessage(`{}`), nil)

	rec := serve(f.handler.Router(), http.MethodPatch, "/api/settings/employees/1",
		`{"status":"probationary","startDate":"2024-03-01","reviewDate":"2024-02-01"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeSettingsView(t, rec.Body.Bytes())
	assert.Nil(t, view.Error)
	require.Len(t, view.Warnings, 1)
	assert.Equal(t, 1, view.Warnings[0].Index)
	assert.Equal(t, "ABC", view.Warnings[0].Acronym)
	assert.Equal(t, "Review date must be after start date.", view.Warnings[0].Message)
	f.settle(t)
}

func TestSettingsEmployeeLifecycle(t *testing.T) {
	f := newDashboardFixture(t)
	f.perf.EXPECT().
		FetchPerformanceSummary(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Aggregates{}, nil).
		Maybe()
	f.settingsAPI.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(json.RawMessage(`{}`), nil)

	rec := serve(f.handler.Router(), http.MethodPost, "/api/settings/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeSettingsView(t, rec.Body.Bytes()).Settings.Employees, 4)

	rec = serve(f.handler.Router(), http.MethodDelete, "/api/settings/employees/0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	employees := decodeSettingsView(t, rec.Body.Bytes()).Settings.Employees
	require.Len(t, employees, 3)
	assert.Equal(t, "ABC", employees[0].Acronym)

	for _, target := range []string{"/api/settings/employees/7", "/api/settings/employees/first"} {
		rec = serve(f.handler.Router(), http.MethodDelete, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}

	rec = serve(f.handler.Router(), http.MethodPatch, "/api/settings/employees/0", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.settle(t)
}

func TestSettingsThresholdRoute(t *testing.T) {
	f := newDashboardFixture(t)
	f.perf.EXPECT().
		FetchPerformanceSummary(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Aggregates{}, nil).
		Maybe()
	f.settingsAPI.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(json.RawMessage(`{}`), nil)

	rec := serve(f.handler.Router(), http.MethodPatch, "/api/settings/thresholds/spend/green", `{"min":25000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	green, _ := decodeSettingsView(t, rec.Body.Bytes()).Settings.SpendEvaluationKey.Band(domain.ColorGreen)
	assert.Equal(t, float64(25000), green.Min)

	rec = serve(f.handler.Router(), http.MethodPatch, "/api/settings/thresholds/ctr/green", `{"min":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(f.handler.Router(), http.MethodPatch, "/api/settings/thresholds/croas/gray", `{"min":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.settle(t)
}

func TestSettingsSaveFailureStaysInView(t *testing.T) {
	f := newDashboardFixture(t)
	f.perf.EXPECT().
		FetchPerformanceSummary(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Aggregates{}, nil).
		Maybe()
	f.settingsAPI.EXPECT().
		SaveSettings(mock.Anything, mock.Anything).
		Return(nil, errors.New("Failed to save settings: read-only database"))

	rec := serve(f.handler.Router(), http.MethodPut, "/api/settings", `{"employees":[{"acronym":"JD","name":"Jane"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeSettingsView(t, rec.Body.Bytes())
	require.NotNil(t, view.Error)
	assert.Equal(t, "Failed to save settings: read-only database", *view.Error)
	require.Len(t, view.Settings.Employees, 1)
	assert.Equal(t, "JD", view.Settings.Employees[0].Acronym)

	rec = serve(f.handler.Router(), http.MethodPut, "/api/settings", `["not","an","object"]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.settle(t)
}

func TestSettingsUpdateRejectedWhileLoading(t *testing.T) {
	perf := mocks.NewMockPerformanceAPI(t)
	perf.EXPECT().
		FetchPerformanceSummary(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Aggregates{}, nil).
		Maybe()
	settingsAPI := mocks.NewMockSettingsAPI(t)

	store := usecase.NewSettingsStore(settingsAPI, discardLogger(), nil)
	d := usecase.NewDashboard(context.Background(), store, perf, usecase.DashboardConfig{}, discardLogger(), nil)
	router := NewDashboardHandler(d, store, discardLogger(), nil, configs.CORS{}).Router()

	rec := serve(router, http.MethodPost, "/api/settings/employees", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, usecase.ErrSettingsLoading.Error(), detailOf(t, rec))

	rec = serve(router, http.MethodPut, "/api/settings", `{"employees":[]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	assert.Len(t, store.Settings().Employees, 3)
	settingsAPI.AssertNotCalled(t, "SaveSettings", mock.Anything, mock.Anything)
}
