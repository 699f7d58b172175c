package reporting

import (
	"strconv"
	"strings"

	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
)

// ParsePeriod reads a quarter label and a year from request parameters.
func ParsePeriod(quarter, year string) (domain.Period, error) {
	quarter, year = strings.TrimSpace(quarter), strings.TrimSpace(year)
	if quarter == "" || year == "" {
		return domain.Period{}, NewValidationError(ErrMissingPeriod, apiErrors.ErrMissingRequiredData, "")
	}

	q, ok := domain.ParseQuarter(quarter)
	if !ok {
		return domain.Period{}, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, quarter)
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return domain.Period{}, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, year)
	}

	return domain.NewPeriod(q, y), nil
}

// ParseFilter builds a MetricFilter from optional quarter and year parameters.
func ParseFilter(quarter, year string) (domain.MetricFilter, error) {
	var filter domain.MetricFilter

	if quarter = strings.TrimSpace(quarter); quarter != "" {
		q, ok := domain.ParseQuarter(quarter)
		if !ok {
			return filter, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, quarter)
		}
		filter.Quarter = q
	}

	if year = strings.TrimSpace(year); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return filter, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, year)
		}
		filter.Year = y
	}

	return filter, nil
}

// ParsePeriodKeys parses a comma separated list of "{year}-{quarter}" keys.
// Blank input yields nil, which selects the most recent periods.
func ParsePeriodKeys(raw string) ([]domain.Period, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var periods []domain.Period
	for _, key := range strings.Split(raw, ",") {
		if strings.TrimSpace(key) == "" {
			continue
		}
		period, err := domain.ParsePeriodKey(key)
		if err != nil {
			return nil, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, err.Error())
		}
		periods = append(periods, period)
	}
	return periods, nil
}

// ParseCount reads an optional non-negative integer parameter, falling back to def when blank.
func ParseCount(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, NewValidationError(ErrInvalidPaging, apiErrors.ErrInvalidRequest, raw)
	}
	return n, nil
}
