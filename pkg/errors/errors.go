// Package errors provides structured error types for the attribute tool.
//
// Every fatal condition the pipeline can hit carries a machine-readable
// [Code] so that the CLI boundary can decide how to report it without
// string matching:
//
//   - READ_ERROR: the lock file cannot be opened or decoded
//   - ENCODE_ERROR: the records cannot be serialized to JSON
//   - WRITE_ERROR: the report file cannot be removed or created
//   - INVALID_CONFIG: the configuration file is unreadable or malformed
//
// A missing license file is deliberately absent from this list: it removes
// the dependency from the report and is never surfaced as an error.
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeRead, cause, "read %s", path)
//	if errors.Is(err, errors.ErrCodeRead) {
//	    // lock file problem
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the pipeline stages.
const (
	ErrCodeRead          Code = "READ_ERROR"
	ErrCodeEncode        Code = "ENCODE_ERROR"
	ErrCodeWrite         Code = "WRITE_ERROR"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Input validation errors
	ErrCodeInvalidPackage  Code = "INVALID_PACKAGE"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
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

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types the code prefix is dropped and the cause, if any, is
// appended so the diagnostic still names what went wrong on disk.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
