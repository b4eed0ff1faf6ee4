package model

import (
	"errors"
	"fmt"
)

// DataValidationError is the single error kind reported for invalid
// product data: malformed payloads, missing or mistyped fields, unknown
// categories, and mutation preconditions such as updating a product
// that has never been persisted. Store-level failures are never wrapped
// in this type.
type DataValidationError struct {
	Reason string
}

func (e *DataValidationError) Error() string {
	return e.Reason
}

// NewDataValidationError creates a new validation error with a
// formatted reason.
func NewDataValidationError(format string, args ...any) *DataValidationError {
	return &DataValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsDataValidation reports whether err is (or wraps) a
// DataValidationError.
func IsDataValidation(err error) bool {
	var dve *DataValidationError
	return errors.As(err, &dve)
}
