package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod     = errors.New("invalid quarter or year")
	ErrMissingPeriod     = errors.New("quarter and year are required")
	ErrMissingMetricName = errors.New("metric name is required")
	ErrMissingConfigName = errors.New("config name is required")
	ErrMissingConfigData = errors.New("config data is required")
	ErrInvalidPaging     = errors.New("limit and offset must be non-negative integers")
)

// ValidationError is a rejected query or config request.
type ValidationError struct {
	Err     error  // base error
	Code    string // apiErrors code
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error, code string, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
