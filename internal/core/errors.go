package core

import (
	"errors"
	"fmt"
)

// CLI exit codes, one per failure stage.
const (
	ExitSuccess          = 0
	ExitValidationFailed = 1
	ExitConfigError      = 2
	ExitResolutionError  = 3
	ExitRetrievalError   = 4
)

// Error codes for structured JSON error responses.
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeConfigError      = "CONFIG_ERROR"
	ErrCodeResolutionError  = "RESOLUTION_ERROR"
	ErrCodeRetrievalError   = "RETRIEVAL_ERROR"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// ConfigError reports invalid or conflicting configuration.
type ConfigError struct {
	Msg string
}

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string { return e.Msg }

// ExitCode returns the process exit code for this error.
func (e *ConfigError) ExitCode() int { return ExitConfigError }

// ResolutionError reports a failure to determine the commit range to
// check. Hint, when set, carries a remediation the reporter prints
// alongside the message.
type ResolutionError struct {
	Msg  string
	Hint string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code for this error.
func (e *ResolutionError) ExitCode() int { return ExitResolutionError }

// RetrievalError reports a failure to fetch commit data for a range that
// resolved cleanly.
type RetrievalError struct {
	Msg string
	Err error
}

func (e *RetrievalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code for this error.
func (e *RetrievalError) ExitCode() int { return ExitRetrievalError }

// IsConfigError checks if an error is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsResolutionError checks if an error is a ResolutionError.
func IsResolutionError(err error) bool {
	var e *ResolutionError
	return errors.As(err, &e)
}

// IsRetrievalError checks if an error is a RetrievalError.
func IsRetrievalError(err error) bool {
	var e *RetrievalError
	return errors.As(err, &e)
}

// ErrorCodeForError maps stage errors to structured error code strings.
func ErrorCodeForError(err error) string {
	switch {
	case IsConfigError(err):
		return ErrCodeConfigError
	case IsResolutionError(err):
		return ErrCodeResolutionError
	case IsRetrievalError(err):
		return ErrCodeRetrievalError
	default:
		return ErrCodeInternalError
	}
}

// HintForError returns the remediation hint attached to a resolution
// error, or the empty string.
func HintForError(err error) string {
	var re *ResolutionError
	if errors.As(err, &re) {
		return re.Hint
	}
	return ""
}
