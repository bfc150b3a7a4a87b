// Package clierr defines the error kinds the CLI reports and the exit status
// each one maps to.
package clierr

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure.
type Code string

const (
	// AlreadyExists means the target sketchbook path is taken.
	AlreadyExists Code = "ALREADY_EXISTS"
	// WriteFailure covers any I/O error while creating a sketchbook.
	WriteFailure Code = "WRITE_FAILURE"
	// ReadFailure means a sketches directory exists but cannot be read.
	ReadFailure Code = "READ_FAILURE"
	// InvalidName rejects names that cannot be used as a directory name.
	InvalidName Code = "INVALID_NAME"
	// InvalidConfig rejects unusable configuration or flag values.
	InvalidConfig Code = "INVALID_CONFIG"
	// Internal is anything else.
	Internal Code = "INTERNAL"
)

// Error is a classified CLI error.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

// ExitCode returns the process exit status for this error.
func (e *Error) ExitCode() int {
	if e.Code == Internal {
		return 2
	}
	return 1
}

// New creates an Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies err under code.
func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Cause: err}
}

// CodeOf extracts the code from err, or "" if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// ExitCode maps any error to a process exit status: 0 for nil, the
// classified status for *Error, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return 1
}
