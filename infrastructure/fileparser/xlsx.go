package fileparser

import (
	"errors"

	"github.com/xuri/excelize/v2"
)

const TemplateSheetName = "ELT Data"

func readXLSX(path string) ([]sheetLine, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return numberLines(rows), nil
}

// WriteXLSX renders a single-sheet workbook named TemplateSheetName.
func WriteXLSX(headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, TemplateSheetName); err != nil {
		return nil, err
	}

	if err := writeSheetRow(f, 1, headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeSheetRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheetRow(f *excelize.File, index int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, index)
	if err != nil {
		return err
	}

	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(TemplateSheetName, cell, &row)
}
