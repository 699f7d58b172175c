package ingesting

import (
	"bytes"
	"strings"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/fileparser"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
)

const (
	TemplateCSV  = "csv"
	TemplateXLSX = "xlsx"
)

var templateHeaders = []string{
	"quarter",
	"year",
	"metric_name",
	"metric_value",
	"metric_unit",
	"category",
	"description",
	"target_value",
	"status",
}

// Three quarters of sample history, newest first.
var templateRows = [][]string{
	{"Q1", "2024", "Total ARR", "6520000", "USD", "Growth & Retention", "Annual Recurring Revenue", "7100000", "amber"},
	{"Q1", "2024", "Net New ARR Added", "238000", "USD", "Growth & Retention", "New ARR added this quarter", "350000", "red"},
	{"Q1", "2024", "Churn", "-95000", "USD", "Growth & Retention", "Churn amount (negative value)", "-50000", "red"},
	{"Q1", "2024", "NRR", "105", "%", "Growth & Retention", "Net Revenue Retention", "110", "amber"},
	{"Q1", "2024", "Burn Multiple", "1.35", "x", "Financial & Sales", "Burn rate multiple", "1", "red"},
	{"Q1", "2024", "CAC", "2340", "USD", "Financial & Sales", "Customer Acquisition Cost", "2000", "red"},
	{"Q1", "2024", "Deployment Frequency", "12", "per month", "Product & Engineering", "Number of deployments per month", "15", "amber"},
	{"Q1", "2024", "eNPS (Employee Engagement)", "50", "score", "People & Culture", "Employee Net Promoter Score", "60", "amber"},

	{"Q4", "2023", "Total ARR", "6282000", "USD", "Growth & Retention", "Annual Recurring Revenue", "7000000", "amber"},
	{"Q4", "2023", "Net New ARR Added", "285000", "USD", "Growth & Retention", "New ARR added this quarter", "300000", "amber"},
	{"Q4", "2023", "Churn", "-125000", "USD", "Growth & Retention", "Churn amount (negative value)", "-80000", "red"},
	{"Q4", "2023", "NRR", "102", "%", "Growth & Retention", "Net Revenue Retention", "110", "red"},
	{"Q4", "2023", "Burn Multiple", "1.42", "x", "Financial & Sales", "Burn rate multiple", "1", "red"},
	{"Q4", "2023", "CAC", "2580", "USD", "Financial & Sales", "Customer Acquisition Cost", "2000", "red"},
	{"Q4", "2023", "Deployment Frequency", "10", "per month", "Product & Engineering", "Number of deployments per month", "15", "red"},
	{"Q4", "2023", "eNPS (Employee Engagement)", "42", "score", "People & Culture", "Employee Net Promoter Score", "60", "red"},

	{"Q3", "2023", "Total ARR", "6120000", "USD", "Growth & Retention", "Annual Recurring Revenue", "6500000", "amber"},
	{"Q3", "2023", "Net New ARR Added", "320000", "USD", "Growth & Retention", "New ARR added this quarter", "280000", "green"},
	{"Q3", "2023", "Churn", "-88000", "USD", "Growth & Retention", "Churn amount (negative value)", "-90000", "green"},
	{"Q3", "2023", "NRR", "108", "%", "Growth & Retention", "Net Revenue Retention", "110", "amber"},
	{"Q3", "2023", "Burn Multiple", "1.28", "x", "Financial & Sales", "Burn rate multiple", "1", "amber"},
	{"Q3", "2023", "CAC", "2180", "USD", "Financial & Sales", "Customer Acquisition Cost", "2000", "amber"},
	{"Q3", "2023", "Deployment Frequency", "14", "per month", "Product & Engineering", "Number of deployments per month", "15", "amber"},
	{"Q3", "2023", "eNPS (Employee Engagement)", "48", "score", "People & Culture", "Employee Net Promoter Score", "60", "amber"},
}

type TemplateFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Template renders the sample dataset as a downloadable file.
func Template(format string) (*TemplateFile, error) {
	switch strings.ToLower(format) {
	case TemplateCSV:
		var buf bytes.Buffer
		if err := fileparser.WriteCSV(&buf, templateHeaders, templateRows); err != nil {
			return nil, err
		}
		return &TemplateFile{
			Name:        "elt-data-template.csv",
			ContentType: "text/csv",
			Data:        buf.Bytes(),
		}, nil

	case TemplateXLSX:
		data, err := fileparser.WriteXLSX(templateHeaders, templateRows)
		if err != nil {
			return nil, err
		}
		return &TemplateFile{
			Name:        "elt-data-template.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	}

	return nil, NewUploadError(ErrUnsupportedTemplate, apiErrors.ErrInvalidFormat, format)
}
