package domain

import "errors"

// ErrIncompleteRange is returned when only one end of a date range is given.
var ErrIncompleteRange = errors.New("start_date and end_date must be given together")

// Settings is the shared document edited on the settings page and persisted
// by the settings API as a whole.
type Settings struct {
	Employees          []Employee     `json:"employees"`
	SpendEvaluationKey ThresholdTable `json:"spendEvaluationKey"`
	CROASEvaluationKey ThresholdTable `json:"croasEvaluationKey"`
	Periods            []string       `json:"periods"`
}

// DefaultSettings is used until a stored document is loaded, and served by
// the API when nothing was ever stored.
func DefaultSettings() Settings {
	return Settings{
		Employees: []Employee{
			{Acronym: "HM", Name: "Employee HM", Status: StatusTenured},
			{Acronym: "ABC", Name: "Employee ABC", Status: StatusTenured},
			{Acronym: "XYZ", Name: "Employee XYZ", Status: StatusTenured},
		},
		SpendEvaluationKey: DefaultSpendThresholds(),
		CROASEvaluationKey: DefaultCROASThresholds(),
		Periods:            []string{"P1"},
	}
}

// Table returns the threshold table for m.
func (s Settings) Table(m Metric) (ThresholdTable, bool) {
	switch m {
	case MetricSpend:
		return s.SpendEvaluationKey, true
	case MetricCROAS:
		return s.CROASEvaluationKey, true
	}
	return nil, false
}

// SetTable replaces the threshold table for m.
func (s *Settings) SetTable(m Metric, t ThresholdTable) bool {
	switch m {
	case MetricSpend:
		s.SpendEvaluationKey = t
	case MetricCROAS:
		s.CROASEvaluationKey = t
	default:
		return false
	}
	return true
}

// Clone returns a deep copy, so mutators never share memory with a
// published snapshot.
func (s Settings) Clone() Settings {
	out := Settings{
		SpendEvaluationKey: s.SpendEvaluationKey.Clone(),
		CROASEvaluationKey: s.CROASEvaluationKey.Clone(),
	}
	out.Employees = make([]Employee, len(s.Employees))
	for i, e := range s.Employees {
		out.Employees[i] = e.clone()
	}
	out.Periods = append([]string{}, s.Periods...)
	return out
}

// LoadState tracks one entity's fetch. Exactly one of Aggregates and Error
// is set once IsLoading is false, except for entities that were never
// fetched because a parameter was missing: those have neither.
type LoadState struct {
	Aggregates *Aggregates `json:"aggregates"`
	Error      *string     `json:"error"`
	IsLoading  bool        `json:"isLoading"`
}

// Loading is the state of a pending fetch.
func Loading() LoadState { return LoadState{IsLoading: true} }

// Loaded is the state of a successful fetch.
func Loaded(agg Aggregates) LoadState { return LoadState{Aggregates: &agg} }

// Failed is the state of a failed fetch.
func Failed(msg string) LoadState { return LoadState{Error: &msg} }

// ErrorMessage returns the error or "".
func (s LoadState) ErrorMessage() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}
