// Package clierr carries process exit codes through error returns so main
// stays a one-liner and command code never calls os.Exit directly.
package clierr

import (
	"errors"
	"fmt"
)

// ExitCoder is implemented by errors that know their process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error with an explicit exit code. It supports wrapping
// via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Newf is a formatted variant.
func Newf(code int, format string, args ...any) error {
	return &ExitError{code: normalize(code), msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// Silent creates an ExitError with no message, for failures that were
// already reported to the user (e.g. the failure list in the check report).
func Silent(code int) error {
	return &ExitError{code: normalize(code)}
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1 for
// non-nil errors and 0 for nil. Keeps main dumb.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never carry 0.
	if code <= 0 {
		return 1
	}
	return code
}
