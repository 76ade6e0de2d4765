package book

import (
	"errors"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	ErrInvalidFormat   = errors.New(config.ErrInvalidFormat)
	ErrContactNotFound = errors.New(config.ErrContactNotFound)
)

// FormatError reports a value that failed its field's validation rule.
// It unwraps to ErrInvalidFormat.
type FormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

func newFormatError(field, value, reason string) error {
	return &FormatError{Field: field, Value: value, Reason: reason}
}
