package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adperf/internal/core/domain"
)

func TestUpdateEmployeePatch(t *testing.T) {
	var patch EmployeePatch
	require.NoError(t, json.Unmarshal([]byte(`{"status":"probationary","startDate":"2024-01-01","reviewDate":"2024-04-01"}`), &patch))

	s, err := UpdateEmployee(0, patch)(domain.DefaultSettings())
	require.NoError(t, err)

	hm := s.Employees[0]
	assert.Equal(t, "HM", hm.Acronym)
	assert.Equal(t, domain.StatusProbationary, hm.Status)
	require.NotNil(t, hm.ProbationRange())
	assert.Equal(t, "2024-04-01", hm.ReviewDate.String())
}

func TestUpdateEmployeeNullClearsDate(t *testing.T) {
	s := domain.DefaultSettings()
	s.Employees[0].Status = domain.StatusProbationary
	s.Employees[0].StartDate = date("2024-01-01")
	s.Employees[0].ReviewDate = date("2024-02-01")

	var patch EmployeePatch
	require.NoError(t, json.Unmarshal([]byte(`{"reviewDate":null,"name":"Hannah"}`), &patch))

	s, err := UpdateEmployee(0, patch)(s)
	require.NoError(t, err)
	assert.Nil(t, s.Employees[0].ReviewDate)
	assert.NotNil(t, s.Employees[0].StartDate)
	assert.Equal(t, "Hannah", s.Employees[0].Name)
}

func TestUpdateEmployeeTenuredClearsDates(t *testing.T) {
	s := domain.DefaultSettings()
	s.Employees[1].Status = domain.StatusProbationary
	s.Employees[1].StartDate = date("2024-01-01")
	s.Employees[1].ReviewDate = date("2024-02-01")

	tenured := "tenured"
	s, err := UpdateEmployee(1, EmployeePatch{Status: &tenured})(s)
	require.NoError(t, err)
	assert.Nil(t, s.Employees[1].StartDate)
	assert.Nil(t, s.Employees[1].ReviewDate)
}

func TestEmployeePatchRejectsBadDate(t *testing.T) {
	var patch EmployeePatch
	assert.Error(t, json.Unmarshal([]byte(`{"startDate":"01/02/2024"}`), &patch))
}

func TestRemoveEmployee(t *testing.T) {
	s, err := RemoveEmployee(1)(domain.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, s.Employees, 2)
	assert.Equal(t, "XYZ", s.Employees[1].Acronym)

	_, err = RemoveEmployee(-1)(domain.DefaultSettings())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateThreshold(t *testing.T) {
	var patch ThresholdPatch
	require.NoError(t, json.Unmarshal([]byte(`{"min":2.5,"max":null}`), &patch))

	s, err := UpdateThreshold(domain.MetricCROAS, domain.ColorYellow, patch)(domain.DefaultSettings())
	require.NoError(t, err)

	yellow, _ := s.CROASEvaluationKey.Band(domain.ColorYellow)
	assert.Equal(t, float64(2.5), yellow.Min)
	assert.Nil(t, yellow.Max)
	assert.Equal(t, domain.DefaultSpendThresholds(), s.SpendEvaluationKey)
}

func TestUpdateThresholdUnknownTargets(t *testing.T) {
	_, err := UpdateThreshold(domain.Metric("ctr"), domain.ColorRed, ThresholdPatch{})(domain.DefaultSettings())
	assert.ErrorIs(t, err, ErrUnknownMetric)

	_, err = UpdateThreshold(domain.MetricSpend, domain.ColorGray, ThresholdPatch{})(domain.DefaultSettings())
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestReplaceSettings(t *testing.T) {
	m, err := ReplaceSettings(json.RawMessage(`{"employees":[{"acronym":"JD"}]}`))
	require.NoError(t, err)

	s, err := m(domain.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, s.Employees, 1)
	assert.Equal(t, domain.DefaultCROASThresholds(), s.CROASEvaluationKey)

	_, err = ReplaceSettings(json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}
