// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeIncompatibleUnits indicates two quantities with different dimensions
	TypeIncompatibleUnits Type = "INCOMPATIBLE_UNITS"

	// TypeNotDimensionless indicates a quantity that still carries dimension
	// where a bare number was required
	TypeNotDimensionless Type = "NOT_DIMENSIONLESS"

	// TypeOutOfRange indicates a value outside its allowed interval
	TypeOutOfRange Type = "OUT_OF_RANGE"

	// TypeRegistryFrozen indicates a registration attempted after Freeze
	TypeRegistryFrozen Type = "REGISTRY_FROZEN"

	// TypeDuplicate indicates a symbol or kind registered twice
	TypeDuplicate Type = "DUPLICATE"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"

	// TypeNotFound indicates a unit or constant not found error
	TypeNotFound Type = "NOT_FOUND"
)

// Sentinels for errors.Is. Any *Error of the same Type matches.
var (
	ErrIncompatibleUnits = New(TypeIncompatibleUnits, "incompatible units")
	ErrNotDimensionless  = New(TypeNotDimensionless, "must be dimensionless")
	ErrOutOfRange        = New(TypeOutOfRange, "out of range")
	ErrRegistryFrozen    = New(TypeRegistryFrozen, "registry is frozen")
	ErrDuplicate         = New(TypeDuplicate, "already registered")
	ErrNotFound          = New(TypeNotFound, "not found")
	ErrInput             = New(TypeInput, "invalid input")
	ErrParsing           = New(TypeParsing, "parse failure")
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

// Is reports whether target is an *Error of the same Type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
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

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IncompatibleUnits reports two dimension fingerprints that cannot be
// combined. Both are kept in the context under "left" and "right".
func IncompatibleUnits(left, right fmt.Stringer) *Error {
	return Newf(TypeIncompatibleUnits, "incompatible units: %s and %s", fingerprint(left), fingerprint(right)).
		WithContext("left", left).
		WithContext("right", right)
}

// NotDimensionless reports a quantity used where a bare number is required.
func NotDimensionless(value fmt.Stringer) *Error {
	return Newf(TypeNotDimensionless, "must be unitless: %s", value).
		WithContext("value", value)
}

// OutOfRange reports a value outside [min, max].
func OutOfRange(value, min, max interface{}) *Error {
	return Newf(TypeOutOfRange, "%v is out of range: [%v, %v]", value, min, max).
		WithContext("value", value).
		WithContext("min", min).
		WithContext("max", max)
}

// Frozen creates a registry frozen error
func Frozen(symbol string) *Error {
	return Newf(TypeRegistryFrozen, "cannot register %q: registry is frozen", symbol)
}

// Duplicate creates a duplicate registration error
func Duplicate(what, identifier string) *Error {
	return Newf(TypeDuplicate, "%s already registered: %s", what, identifier)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

func fingerprint(s fmt.Stringer) string {
	str := s.String()
	if str == "" {
		return "(dimensionless)"
	}
	return str
}
