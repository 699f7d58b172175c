// Package fileparser turns uploaded spreadsheets into ordered raw records keyed by
// their normalized header names. It knows nothing about metrics; validation happens
// in the ingesting use case.
package fileparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// RawRecord maps a normalized header name to the cell text of one data row.
type RawRecord map[string]string

// Row is one non-blank data row. Line is its 1-based line in the source file, where the
// header is line 1, so blank rows before it still count.
type Row struct {
	Line   int
	Fields RawRecord
}

type sheetLine struct {
	number int
	cells  []string
}

// ParseError reports a file that could not be read or decoded. The whole file is rejected.
type ParseError struct {
	Format domain.FileType
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parsing failed: %s", e.Format, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads the first sheet (or the whole CSV) at path. The header row supplies the
// field names and fully blank rows are skipped.
func Parse(path string, format domain.FileType) ([]Row, error) {
	var (
		lines []sheetLine
		err   error
	)

	switch format {
	case domain.FileTypeCSV:
		lines, err = readCSV(path)
	case domain.FileTypeXLSX:
		lines, err = readXLSX(path)
	case domain.FileTypeXLS:
		lines, err = readXLS(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	return toRows(lines), nil
}

func toRows(lines []sheetLine) []Row {
	rows := make([]Row, 0)
	if len(lines) == 0 {
		return rows
	}

	headers := make([]string, len(lines[0].cells))
	for i, h := range lines[0].cells {
		headers[i] = NormalizeHeader(h)
	}

	for _, line := range lines[1:] {
		if isBlank(line.cells) {
			continue
		}

		record := make(RawRecord, len(headers))
		for i, value := range line.cells {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			record[headers[i]] = value
		}
		rows = append(rows, Row{Line: line.number, Fields: record})
	}

	return rows
}

// numberLines pairs spreadsheet rows with their 1-based row number. Spreadsheet
// readers keep empty rows in place, so the slice index is the row position.
func numberLines(rows [][]string) []sheetLine {
	lines := make([]sheetLine, len(rows))
	for i, cells := range rows {
		lines[i] = sheetLine{number: i + 1, cells: cells}
	}
	return lines
}

// NormalizeHeader converts "Metric Name" or "metric-name" into "metric_name".
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
