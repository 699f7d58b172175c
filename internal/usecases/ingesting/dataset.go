package ingesting

import (
	"fmt"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/fileparser"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

// Warning is a dropped row or a dropped field, attributed to its line in the source file.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("Row %d: %s", w.Row, w.Message)
}

type DatasetResult struct {
	Records  []*domain.MetricRecord
	Warnings []Warning
}

// ValidateDataset keeps the valid rows in input order. It fails with ErrEmptyDataset when
// there are no rows at all and with ErrNoValidRows when every row was rejected.
func (v RowValidator) ValidateDataset(rows []fileparser.Row) (*DatasetResult, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	result := &DatasetResult{
		Records:  make([]*domain.MetricRecord, 0, len(rows)),
		Warnings: make([]Warning, 0),
	}

	for _, row := range rows {
		index := row.Line

		record, warnings, err := v.ValidateRow(row.Fields, index)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Row: index, Message: err.Error()})
			continue
		}

		for _, message := range warnings {
			result.Warnings = append(result.Warnings, Warning{Row: index, Message: message})
		}
		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 {
		return result, ErrNoValidRows
	}

	return result, nil
}
