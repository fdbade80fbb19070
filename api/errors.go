// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types and error handling utilities for the bytering library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrInvalidConfiguration = fmt.Errorf("invalid configuration")
	ErrAllocationFailure    = fmt.Errorf("allocation failure")
	ErrRingClosed           = fmt.Errorf("ring is closed")
	ErrNotSupported         = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeInvalidConfiguration
	ErrCodeAllocationFailure
	ErrCodeClosed
	ErrCodeNotSupported
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the structured code back to its sentinel so callers can use
// errors.Is against the package-level errors.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeInvalidConfiguration:
		return ErrInvalidConfiguration
	case ErrCodeAllocationFailure:
		return ErrAllocationFailure
	case ErrCodeClosed:
		return ErrRingClosed
	case ErrCodeNotSupported:
		return ErrNotSupported
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
