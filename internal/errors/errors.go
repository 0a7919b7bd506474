// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidRatio indicates a ratio with a zero numerator or denominator
	TypeInvalidRatio Type = "INVALID_RATIO"

	// TypeUnrelatedUnits indicates a conversion between units of different families
	TypeUnrelatedUnits Type = "UNRELATED_UNITS"

	// TypeCyclicUnit indicates a unit that derives, directly or not, from itself
	TypeCyclicUnit Type = "CYCLIC_UNIT"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, t Type) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Type == t {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// FromPanic extracts a domain error from a recovered panic value.
// It returns nil when the value is not an *Error.
func FromPanic(r interface{}) *Error {
	if e, ok := r.(*Error); ok {
		return e
	}
	return nil
}

// InvalidRatio creates an invalid ratio error
func InvalidRatio(num, den int64) *Error {
	return Newf(TypeInvalidRatio, "ratio %d/%d has a zero term", num, den)
}

// UnrelatedUnits creates an unrelated units error
func UnrelatedUnits(from, to string) *Error {
	return Newf(TypeUnrelatedUnits, "no conversion path from %s to %s", from, to)
}

// CyclicUnit creates a cyclic unit error
func CyclicUnit(unit string) *Error {
	return Newf(TypeCyclicUnit, "unit %s derives from itself", unit)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}
