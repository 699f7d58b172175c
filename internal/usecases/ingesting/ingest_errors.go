package ingesting

import (
	"errors"
	"fmt"
	"strings"
)

// Row-level failures. A row failing with one of these is dropped and reported as a warning.
var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidEnum   = errors.New("invalid enumerated value")
	ErrInvalidRange  = errors.New("value out of range")
	ErrInvalidNumber = errors.New("invalid number")
)

// Dataset and upload failures. These abort the whole upload.
var (
	ErrEmptyDataset        = errors.New("no data found in file")
	ErrNoValidRows         = errors.New("no valid data rows found")
	ErrUnsupportedFileType = errors.New("invalid file type, only CSV and Excel files are allowed")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedTemplate = errors.New("invalid template format, use csv or xlsx")
)

// RowError is the validation failure of a single input row.
type RowError struct {
	Row    int      // 1-based data row index
	Kind   error    // one of the row-level sentinels
	Fields []string // offending fields
	Value  string   // offending raw value, when there is one
	msg    string
}

func (e *RowError) Error() string {
	return e.msg
}

func (e *RowError) Unwrap() error {
	return e.Kind
}

func missingFieldError(row int, fields []string) *RowError {
	return &RowError{
		Row:    row,
		Kind:   ErrMissingField,
		Fields: fields,
		msg:    "Missing required columns: " + strings.Join(fields, ", "),
	}
}

func invalidQuarterError(row int, value string) *RowError {
	return &RowError{
		Row:    row,
		Kind:   ErrInvalidEnum,
		Fields: []string{"quarter"},
		Value:  value,
		msg:    fmt.Sprintf("Invalid quarter format: %s. Must be Q1, Q2, Q3, or Q4", value),
	}
}

func invalidYearError(row int, value string, min, max int) *RowError {
	return &RowError{
		Row:    row,
		Kind:   ErrInvalidRange,
		Fields: []string{"year"},
		Value:  value,
		msg:    fmt.Sprintf("Invalid year: %s. Must be between %d-%d", value, min, max),
	}
}

func invalidNumberError(row int, field, label, value string) *RowError {
	return &RowError{
		Row:    row,
		Kind:   ErrInvalidNumber,
		Fields: []string{field},
		Value:  value,
		msg:    fmt.Sprintf("Invalid %s: %s. Must be a number", label, value),
	}
}

// UploadError is an upload rejected before anything was persisted.
type UploadError struct {
	Err     error  // base error
	Code    string // API error code
	Details string
}

func (e *UploadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func NewUploadError(err error, code string, details string) *UploadError {
	return &UploadError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
