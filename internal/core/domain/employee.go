package domain

import (
	"strings"

	"cloud.google.com/go/civil"
)

// Status decides which data an employee's performance is measured on.
type Status string

const (
	// StatusTenured employees are measured on P1 ads over all time.
	StatusTenured Status = "tenured"
	// StatusProbationary employees are measured on all ads between their
	// start and review dates.
	StatusProbationary Status = "probationary"
)

// ParseStatus maps anything other than "probationary" to StatusTenured.
func ParseStatus(s string) Status {
	if Status(s) == StatusProbationary {
		return StatusProbationary
	}
	return StatusTenured
}

// Employee maps an acronym found in ad set names to a display name. The dates
// only matter for probationary employees; ReviewDate >= StartDate is expected
// but not enforced here.
type Employee struct {
	Acronym    string      `json:"acronym"`
	Name       string      `json:"name"`
	Status     Status      `json:"status"`
	StartDate  *civil.Date `json:"startDate"`
	ReviewDate *civil.Date `json:"reviewDate"`
}

// HasAcronym reports whether the employee can be queried at all.
func (e Employee) HasAcronym() bool {
	return strings.TrimSpace(e.Acronym) != ""
}

// DisplayName falls back to the acronym when no name is set.
func (e Employee) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Acronym
}

// ProbationRange returns the start..review range, or nil while either date
// is missing.
func (e Employee) ProbationRange() *DateRange {
	if e.StartDate == nil || e.ReviewDate == nil {
		return nil
	}
	return &DateRange{Start: *e.StartDate, End: *e.ReviewDate}
}

// DateWarning describes a problem with the probation dates, or returns ""
// when there is none. Only probationary employees are checked.
func (e Employee) DateWarning() string {
	if e.Status != StatusProbationary {
		return ""
	}
	switch {
	case e.StartDate == nil && e.ReviewDate == nil:
		return ""
	case e.StartDate == nil || e.ReviewDate == nil:
		return "Both start date and review date should be set for probationary employees."
	case e.ReviewDate.Before(*e.StartDate):
		return "Review date must be after start date."
	}
	return ""
}

func (e Employee) clone() Employee {
	out := e
	if e.StartDate != nil {
		d := *e.StartDate
		out.StartDate = &d
	}
	if e.ReviewDate != nil {
		d := *e.ReviewDate
		out.ReviewDate = &d
	}
	return out
}

// DateRange is an inclusive calendar-date range.
type DateRange struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
}

// ParseDateRange accepts two YYYY-MM-DD strings. Both empty means no range.
func ParseDateRange(start, end string) (*DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, ErrIncompleteRange
	}
	s, err := civil.ParseDate(start)
	if err != nil {
		return nil, err
	}
	e, err := civil.ParseDate(end)
	if err != nil {
		return nil, err
	}
	return &DateRange{Start: s, End: e}, nil
}
