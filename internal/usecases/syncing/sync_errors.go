package syncing

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedDataType = errors.New("invalid data type, must be: pipeline, revenue, deals, contacts, or companies")
	ErrInvalidQuarter      = errors.New("invalid sync quarter")
	ErrInvalidRow          = errors.New("synced row failed validation")
)

// SyncError is a rejected sync request.
type SyncError struct {
	Err      error
	Code     string // apiErrors code
	DataType string
	Details  string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code, dataType, details string) *SyncError {
	return &SyncError{
		Err:      err,
		Code:     code,
		DataType: dataType,
		Details:  details,
	}
}
