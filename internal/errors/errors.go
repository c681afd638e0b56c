// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates a generic input validation error
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeInvalidSurface indicates a surface that cannot be priced as given
	TypeInvalidSurface Type = "INVALID_SURFACE"

	// TypeCallerContract indicates the caller broke a documented precondition
	TypeCallerContract Type = "CALLER_CONTRACT_VIOLATION"

	// TypeOracle indicates the completion oracle was unavailable.
	// Never returned to callers of the core, only logged.
	TypeOracle Type = "ORACLE_UNAVAILABLE"

	// TypeParsing indicates malformed oracle output
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"
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

// IsOfType checks if the error is of a specific type
func (e *Error) IsOfType(t Type) bool {
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

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType reports whether any error in err's chain is a domain error of type t
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// TypeOf returns the domain type of err, or TypeInternal for foreign errors
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// InvalidSurface creates an error for the surface at index
func InvalidSurface(index int, surfaceType, reason string) *Error {
	return Newf(TypeInvalidSurface, "surface %d (%s): %s", index, surfaceType, reason).
		WithContext("index", index).
		WithContext("surface_type", surfaceType)
}

// CallerContract creates a caller contract violation
func CallerContract(message string) *Error {
	return New(TypeCallerContract, message)
}

// Oracle wraps an oracle failure
func Oracle(provider string, cause error) *Error {
	return Wrap(TypeOracle, "completion oracle unavailable", cause).WithContext("provider", provider)
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
