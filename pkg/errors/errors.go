package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrInvalidTier is matched by every InvalidTierError via errors.Is.
var ErrInvalidTier = stdErrors.New("invalid tier")

// ParseError represents a catalog file or YAML decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures catalog and tier table validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidTierError reports a tier id outside the table's range. It signals a
// contract violation by the caller and is never recovered locally.
type InvalidTierError struct {
	ID  int
	Min int
	Max int
}

// NewInvalidTierError constructs an InvalidTierError for id against the range [min, max].
func NewInvalidTierError(id, min, max int) error {
	return &InvalidTierError{ID: id, Min: min, Max: max}
}

func (e *InvalidTierError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid tier %d: must be between %d and %d", e.ID, e.Min, e.Max)
}

// Is reports whether target is ErrInvalidTier.
func (e *InvalidTierError) Is(target error) bool {
	return target == ErrInvalidTier
}
