package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

func validRow() map[string]string {
	return map[string]string{
		"quarter":      "Q1",
		"year":         "2024",
		"metric_name":  "NRR",
		"metric_value": "105",
	}
}

func TestNewRowValidator_Defaults(t *testing.T) {
	v := NewRowValidator(config.Validation{})
	assert.Equal(t, DefaultMinYear, v.MinYear)
	assert.Equal(t, DefaultMaxYear, v.MaxYear)

	v = NewRowValidator(config.Validation{MinYear: 2015, MaxYear: 2040})
	assert.Equal(t, 2015, v.MinYear)
	assert.Equal(t, 2040, v.MaxYear)
}

func TestValidateRow_Valid(t *testing.T) {
	v := NewRowValidator(config.Validation{})

	raw := validRow()
	raw["quarter"] = " q1 "
	raw["metric_unit"] = " % "
	raw["category"] = "Growth & Retention"
	raw["description"] = ""
	raw["target_value"] = "110"
	raw["status"] = " Amber "

	record, warnings, err := v.ValidateRow(raw, 1)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, domain.Q1, record.Quarter)
	assert.Equal(t, 2024, record.Year)
	assert.Equal(t, "NRR", record.MetricName)
	assert.Equal(t, 105.0, record.MetricValue)
	assert.Equal(t, "%", *record.MetricUnit)
	assert.Equal(t, "Growth & Retention", *record.Category)
	assert.Nil(t, record.Description)
	assert.Equal(t, 110.0, *record.TargetValue)
	assert.Equal(t, domain.StatusAmber, *record.Status)
}

func TestValidateRow_MissingFields(t *testing.T) {
	v := NewRowValidator(config.Validation{})

	_, _, err := v.ValidateRow(map[string]string{"quarter": "Q1", "metric_value": "  "}, 3)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, 3, rowErr.Row)
	assert.Equal(t, []string{"year", "metric_name", "metric_value"}, rowErr.Fields)
	assert.Equal(t, "Missing required columns: year, metric_name, metric_value", err.Error())
}

func TestValidateRow_Year(t *testing.T) {
	v := NewRowValidator(config.Validation{})

	tests := []struct {
		year  string
		valid bool
	}{
		{"2019", false},
		{"2020", true},
		{"2030", true},
		{"2031", false},
		{"2024.0", true},
		{"2024.5", false},
		{"next year", false},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			raw := validRow()
			raw["year"] = tt.year

			record, _, err := v.ValidateRow(raw, 1)
			if tt.valid {
				require.NoError(t, err)
				assert.NotZero(t, record.Year)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestValidateRow_InvalidValues(t *testing.T) {
	v := NewRowValidator(config.Validation{})

	tests := []struct {
		name  string
		field string
		value string
		kind  error
	}{
		{"unknown quarter", "quarter", "Q5", ErrInvalidEnum},
		{"text metric value", "metric_value", "abc", ErrInvalidNumber},
		{"nan metric value", "metric_value", "NaN", ErrInvalidNumber},
		{"infinite metric value", "metric_value", "Inf", ErrInvalidNumber},
		{"text target value", "target_value", "ten", ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRow()
			raw[tt.field] = tt.value

			record, _, err := v.ValidateRow(raw, 2)
			assert.Nil(t, record)
			assert.ErrorIs(t, err, tt.kind)

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tt.value, rowErr.Value)
			assert.Equal(t, []string{tt.field}, rowErr.Fields)
		})
	}
}

func TestValidateRow_UnknownStatusIsDropped(t *testing.T) {
	v := NewRowValidator(config.Validation{})

	raw := validRow()
	raw["status"] = "blue"

	record, warnings, err := v.ValidateRow(raw, 1)
	require.NoError(t, err)
	assert.Nil(t, record.Status)
	assert.Equal(t, []string{"Invalid status value: blue. Must be green, amber, or red"}, warnings)
}
