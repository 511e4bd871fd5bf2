// File: error.go
// Title: Coded Error Implementation
// Description: Implements an error type that carries a Tessera status code
//              alongside a message and an optional cause. It keeps
//              compatibility with Go's standard error interface and with
//              errors.Is/errors.As unwrapping.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with coded errors

package error

import "fmt"

// Error represents a failure annotated with a status code
type Error struct {
	message string
	code    Code
	cause   error
}

// New creates a new Error with the given message and an UnknownError code
func New(message string) *Error {
	return &Error{
		message: message,
		code:    UnknownError,
	}
}

// Wrap wraps an existing error with additional context. Returns nil when
// err is nil so it can be used unconditionally on call results.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := &Error{
		message: message,
		code:    UnknownError,
		cause:   err,
	}
	if cerr, ok := err.(*Error); ok {
		wrapped.code = cerr.code
	}
	return wrapped
}

// WithCode sets the status code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// Code returns the status code
func (e *Error) Code() Code {
	return e.code
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// GetCode returns the status code carried by an error, or UnknownError when
// the error is not a coded error. A nil error maps to Success.
func GetCode(err error) Code {
	if err == nil {
		return Success
	}
	if cerr, ok := err.(*Error); ok {
		return cerr.code
	}
	return UnknownError
}
