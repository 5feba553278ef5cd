package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"cloud.google.com/go/civil"

	"adperf/internal/core/domain"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrUnknownColor     = errors.New("unknown threshold color")
)

var jsonNull = []byte("null")

// OptionalDate distinguishes an absent field (Set false) from an explicit
// null or empty string (Set true, Value nil).
type OptionalDate struct {
	Set   bool
	Value *civil.Date
}

func (o *OptionalDate) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.Value = nil
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	o.Value = &d
	return nil
}

// OptionalFloat distinguishes an absent field from an explicit null.
type OptionalFloat struct {
	Set   bool
	Value *float64
}

func (o *OptionalFloat) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.Value = nil
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	o.Value = &f
	return nil
}

// EmployeePatch changes the fields that are present.
type EmployeePatch struct {
	Acronym    *string      `json:"acronym"`
	Name       *string      `json:"name"`
	Status     *string      `json:"status"`
	StartDate  OptionalDate `json:"startDate"`
	ReviewDate OptionalDate `json:"reviewDate"`
}

// ThresholdPatch changes the bounds of one band. The color is fixed.
type ThresholdPatch struct {
	Min *float64      `json:"min"`
	Max OptionalFloat `json:"max"`
}

// ReplaceSettings replaces the whole document with the normalized raw payload.
func ReplaceSettings(raw json.RawMessage) (Mutator, error) {
	next, err := NormalizeSettings(raw)
	if err != nil {
		return nil, err
	}
	return func(domain.Settings) (domain.Settings, error) {
		return next.Clone(), nil
	}, nil
}

// AddEmployee appends a blank tenured employee.
func AddEmployee() Mutator {
	return func(s domain.Settings) (domain.Settings, error) {
		s.Employees = append(s.Employees, domain.Employee{Status: domain.StatusTenured})
		return s, nil
	}
}

// UpdateEmployee applies patch to the employee at index i. Switching to
// tenured clears both dates.
func UpdateEmployee(i int, patch EmployeePatch) Mutator {
	return func(s domain.Settings) (domain.Settings, error) {
		if i < 0 || i >= len(s.Employees) {
			return s, fmt.Errorf("%w: index %d", ErrEmployeeNotFound, i)
		}
		e := &s.Employees[i]
		if patch.Acronym != nil {
			e.Acronym = *patch.Acronym
		}
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.StartDate.Set {
			e.StartDate = patch.StartDate.Value
		}
		if patch.ReviewDate.Set {
			e.ReviewDate = patch.ReviewDate.Value
		}
		if patch.Status != nil {
			e.Status = domain.ParseStatus(*patch.Status)
			if e.Status == domain.StatusTenured {
				e.StartDate = nil
				e.ReviewDate = nil
			}
		}
		return s, nil
	}
}

// RemoveEmployee drops the employee at index i.
func RemoveEmployee(i int) Mutator {
	return func(s domain.Settings) (domain.Settings, error) {
		if i < 0 || i >= len(s.Employees) {
			return s, fmt.Errorf("%w: index %d", ErrEmployeeNotFound, i)
		}
		s.Employees = slices.Delete(s.Employees, i, i+1)
		return s, nil
	}
}

// UpdateThreshold applies patch to the band of color c in the table of m.
func UpdateThreshold(m domain.Metric, c domain.Color, patch ThresholdPatch) Mutator {
	return func(s domain.Settings) (domain.Settings, error) {
		table, ok := s.Table(m)
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownMetric, m)
		}
		idx := slices.IndexFunc(table, func(t domain.Threshold) bool { return t.Color == c })
		if idx < 0 || !slices.Contains(domain.BandColors, c) {
			return s, fmt.Errorf("%w: %q", ErrUnknownColor, c)
		}
		if patch.Min != nil {
			table[idx].Min = *patch.Min
		}
		if patch.Max.Set {
			table[idx].Max = patch.Max.Value
		}
		s.SetTable(m, table)
		return s, nil
	}
}
