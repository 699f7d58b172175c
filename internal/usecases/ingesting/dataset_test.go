package ingesting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/fileparser"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

func TestValidateDataset_Empty(t *testing.T) {
	v := NewRowValidator(config.Validation{})

	result, err := v.ValidateDataset(nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestValidateDataset_AllInvalid(t *testing.T) {
	v := NewRowValidator(config.Validation{})

	_, err := v.ValidateDataset([]fileparser.Row{
		{Line: 2, Fields: fileparser.RawRecord{"quarter": "Q9", "year": "2024", "metric_name": "NRR", "metric_value": "1"}},
		{Line: 3, Fields: fileparser.RawRecord{"quarter": "Q1", "year": "2019", "metric_name": "NRR", "metric_value": "1"}},
	})
	assert.ErrorIs(t, err, ErrNoValidRows)
}

func TestValidateDataset_Mixed(t *testing.T) {
	v := NewRowValidator(config.Validation{})

	result, err := v.ValidateDataset([]fileparser.Row{
		{Line: 2, Fields: fileparser.RawRecord{"quarter": "Q1", "year": "2024", "metric_name": "NRR", "metric_value": "105", "status": "purple"}},
		{Line: 4, Fields: fileparser.RawRecord{"quarter": "Q1", "year": "2024", "metric_name": "CAC"}},
		{Line: 5, Fields: fileparser.RawRecord{"quarter": "Q4", "year": "2023", "metric_name": "NRR", "metric_value": "102"}},
	})
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "NRR", result.Records[0].MetricName)
	assert.Equal(t, domain.Q4, result.Records[1].Quarter)

	require.Len(t, result.Warnings, 2)
	assert.Equal(t, 2, result.Warnings[0].Row)
	assert.Contains(t, result.Warnings[0].Message, "Invalid status value")
	assert.Equal(t, Warning{Row: 4, Message: "Missing required columns: metric_value"}, result.Warnings[1])
	assert.Equal(t, "Row 4: Missing required columns: metric_value", result.Warnings[1].String())
}

func TestValidateDataset_LinesSurviveBlankRows(t *testing.T) {
	content := "quarter,year,metric_name,metric_value\n" +
		"Q1,2024,NRR,105\n" +
		"\n" +
		",,,\n" +
		"Q1,2024,CAC,\n" +
		"Q1,2024,ARR,6520000\n"

	path := filepath.Join(t.TempDir(), "gaps.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, err := fileparser.Parse(path, domain.FileTypeCSV)
	require.NoError(t, err)

	result, err := NewRowValidator(config.Validation{}).ValidateDataset(rows)
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, []Warning{{Row: 5, Message: "Missing required columns: metric_value"}}, result.Warnings)
}

func TestComputeStats(t *testing.T) {
	category := "Growth & Retention"
	records := []*domain.MetricRecord{
		{Quarter: domain.Q1, Year: 2024, MetricName: "NRR", MetricValue: 105, Category: &category},
		{Quarter: domain.Q3, Year: 2023, MetricName: "Churn", MetricValue: -88000},
		{Quarter: domain.Q4, Year: 2023, MetricName: "NRR", MetricValue: 102, Category: &category},
	}

	stats := ComputeStats(records)
	assert.Equal(t, 3, stats.TotalRows)
	assert.Equal(t, []string{"2023-Q3", "2023-Q4", "2024-Q1"}, stats.Quarters)
	assert.Equal(t, []string{"NRR", "Churn"}, stats.Metrics)
	assert.Equal(t, []string{"Growth & Retention"}, stats.Categories)
	assert.Equal(t, domain.ValueRange{Min: -88000, Max: 105}, stats.ValueRange)
}

func TestTemplate_CSVValidates(t *testing.T) {
	file, err := Template("CSV")
	require.NoError(t, err)
	assert.Equal(t, "elt-data-template.csv", file.Name)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("quarter,year,metric_name,metric_value")))

	path := filepath.Join(t.TempDir(), file.Name)
	require.NoError(t, os.WriteFile(path, file.Data, 0o600))

	rows, err := fileparser.Parse(path, domain.FileTypeCSV)
	require.NoError(t, err)

	result, err := NewRowValidator(config.Validation{}).ValidateDataset(rows)
	require.NoError(t, err)
	assert.Len(t, result.Records, 24)
	assert.Empty(t, result.Warnings)

	stats := ComputeStats(result.Records)
	assert.Equal(t, []string{"2023-Q3", "2023-Q4", "2024-Q1"}, stats.Quarters)
	assert.Len(t, stats.Metrics, 8)
	assert.Len(t, stats.Categories, 4)
	assert.Equal(t, domain.ValueRange{Min: -125000, Max: 6520000}, stats.ValueRange)
}

func TestTemplate_XLSX(t *testing.T) {
	file, err := Template("xlsx")
	require.NoError(t, err)
	assert.Equal(t, "elt-data-template.xlsx", file.Name)
	assert.NotEmpty(t, file.Data)
}

func TestTemplate_UnknownFormat(t *testing.T) {
	_, err := Template("pdf")
	assert.ErrorIs(t, err, ErrUnsupportedTemplate)
}
