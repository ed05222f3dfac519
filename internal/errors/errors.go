// Package errors provides coded error types for the mandel module.
//
// Codes let the CLI tell caller mistakes (bad resolution, out-of-range pixel
// index, malformed config) apart from unexpected failures without matching on
// message text.
//
//	err := errors.New(errors.ErrCodeInvalidResolution, "width must be positive, got %d", w)
//	if errors.Is(err, errors.ErrCodeInvalidResolution) {
//	    // reject the job
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidResolution Code = "INVALID_RESOLUTION"
	ErrCodeInvalidViewport   Code = "INVALID_VIEWPORT"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeIndexOutOfRange   Code = "INDEX_OUT_OF_RANGE"

	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the outermost *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from err, or "" if err carries none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
