package ingesting

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

const (
	DefaultMinYear = 2020
	DefaultMaxYear = 2030
)

var requiredFields = []string{"quarter", "year", "metric_name", "metric_value"}

// RowValidator turns one raw row into a MetricRecord. Years outside [MinYear, MaxYear] are rejected.
type RowValidator struct {
	MinYear int
	MaxYear int
}

func NewRowValidator(cfg config.Validation) RowValidator {
	v := RowValidator{MinYear: cfg.MinYear, MaxYear: cfg.MaxYear}
	if v.MinYear == 0 {
		v.MinYear = DefaultMinYear
	}
	if v.MaxYear == 0 {
		v.MaxYear = DefaultMaxYear
	}
	return v
}

// ValidateRow normalizes raw, whose keys are snake_case header names. row is the 1-based
// index used in messages. Non-fatal problems, such as an unknown status, come back as
// warnings alongside the record.
func (v RowValidator) ValidateRow(raw map[string]string, row int) (*domain.MetricRecord, []string, error) {
	get := func(field string) string {
		return strings.TrimSpace(raw[field])
	}

	var missing []string
	for _, field := range requiredFields {
		if get(field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, nil, missingFieldError(row, missing)
	}

	quarter, ok := domain.ParseQuarter(get("quarter"))
	if !ok {
		return nil, nil, invalidQuarterError(row, get("quarter"))
	}

	year, ok := parseYear(get("year"))
	if !ok || year < v.MinYear || year > v.MaxYear {
		return nil, nil, invalidYearError(row, get("year"), v.MinYear, v.MaxYear)
	}

	value, ok := parseNumber(get("metric_value"))
	if !ok {
		return nil, nil, invalidNumberError(row, "metric_value", "metric value", get("metric_value"))
	}

	record := &domain.MetricRecord{
		Quarter:     quarter,
		Year:        year,
		MetricName:  get("metric_name"),
		MetricValue: value,
		MetricUnit:  optional(get("metric_unit")),
		Category:    optional(get("category")),
		Description: optional(get("description")),
	}

	if text := get("target_value"); text != "" {
		target, ok := parseNumber(text)
		if !ok {
			return nil, nil, invalidNumberError(row, "target_value", "target value", text)
		}
		record.TargetValue = &target
	}

	var warnings []string
	if text := get("status"); text != "" {
		if status, ok := domain.ParseStatus(text); ok {
			record.Status = &status
		} else {
			warnings = append(warnings, fmt.Sprintf("Invalid status value: %s. Must be green, amber, or red", text))
		}
	}

	return record, warnings, nil
}

// parseYear accepts "2024" and the "2024.0" spreadsheets produce for numeric cells.
func parseYear(s string) (int, bool) {
	if year, err := strconv.Atoi(s); err == nil {
		return year, true
	}

	f, ok := parseNumber(s)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
