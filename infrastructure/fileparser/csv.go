package fileparser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV numbers each record by the line it starts on. encoding/csv drops empty
// lines, so the record index alone would drift.
func readCSV(path string) ([]sheetLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	lines := make([]sheetLine, 0)
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV rows: %w", err)
		}

		number, _ := reader.FieldPos(0)
		lines = append(lines, sheetLine{number: number, cells: cells})
	}
	return lines, nil
}

// WriteCSV writes headers followed by one line per row.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
