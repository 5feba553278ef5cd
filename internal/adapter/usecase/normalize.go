package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"cloud.google.com/go/civil"

	"adperf/internal/core/domain"
)

// ErrInvalidSettings is returned when a settings payload is not a JSON object.
var ErrInvalidSettings = errors.New("settings payload must be a JSON object")

// NormalizeSettings turns an untrusted settings payload into Settings. Only a
// payload that is not a JSON object is rejected; every field inside it is
// coerced or replaced by its default.
func NormalizeSettings(raw json.RawMessage) (domain.Settings, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if doc == nil {
		return domain.Settings{}, ErrInvalidSettings
	}

	return domain.Settings{
		Employees:          normalizeEmployees(doc["employees"]),
		SpendEvaluationKey: normalizeTable(doc["spendEvaluationKey"], domain.DefaultSpendThresholds()),
		CROASEvaluationKey: normalizeTable(doc["croasEvaluationKey"], domain.DefaultCROASThresholds()),
		Periods:            normalizeStrings(doc["periods"]),
	}, nil
}

// NormalizeThresholds returns exactly one band per color in green, yellow,
// red order: the first band of each color in t, else the band of that color
// in defaults.
func NormalizeThresholds(t, defaults domain.ThresholdTable) domain.ThresholdTable {
	out := make(domain.ThresholdTable, 0, len(domain.BandColors))
	for _, c := range domain.BandColors {
		band, ok := t.Band(c)
		if !ok {
			band, _ = defaults.Band(c)
			band.Color = c
		}
		out = append(out, band)
	}
	return out.Clone()
}

func normalizeEmployees(v any) []domain.Employee {
	items, _ := v.([]any)
	out := make([]domain.Employee, 0, len(items))
	for _, item := range items {
		fields, _ := item.(map[string]any)
		out = append(out, domain.Employee{
			Acronym:    coerceString(fields["acronym"]),
			Name:       coerceString(fields["name"]),
			Status:     domain.ParseStatus(coerceString(fields["status"])),
			StartDate:  coerceDate(fields["startDate"]),
			ReviewDate: coerceDate(fields["reviewDate"]),
		})
	}
	return out
}

func normalizeTable(v any, defaults domain.ThresholdTable) domain.ThresholdTable {
	items, _ := v.([]any)
	raw := make(domain.ThresholdTable, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		band := domain.Threshold{
			Min:   coerceNumber(fields["min"]),
			Color: domain.Color(coerceString(fields["color"])),
		}
		if hi, ok := fields["max"].(float64); ok {
			band.Max = &hi
		} else if s, ok := fields["max"].(string); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				band.Max = &f
			}
		}
		raw = append(raw, band)
	}
	return NormalizeThresholds(raw, defaults)
}

func normalizeStrings(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, coerceString(item))
	}
	return out
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func coerceNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}
	return 0
}

func coerceDate(v any) *civil.Date {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}
