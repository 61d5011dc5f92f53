// Package errors provides structured error types and exit codes for gnu-json-result.
package errors

import (
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Usage error, missing directory, interrupted run
	ExitConfigError  = 2 // Invalid config file or flag value
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindUsage
	KindNotFound
	KindConfig
	KindValidation
)

// Error is the base error type for gnu-json-result.
type Error struct {
	Kind    ErrorKind
	Message string
	Path    string // File or directory the error refers to, if any
	Cause   error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Message, e.Path, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s %s", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

// Usage creates a command-line usage error.
func Usage(message string) *Error {
	return &Error{
		Kind:    KindUsage,
		Message: message,
	}
}

// Usagef creates a command-line usage error with formatting.
func Usagef(format string, args ...interface{}) *Error {
	return Usage(fmt.Sprintf(format, args...))
}

// Config creates a configuration error for the file at path.
func Config(message, path string, cause error) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// Validation creates an error for option values that fail validation.
func Validation(message string, cause error) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// FileError creates a runtime error for a file that could not be processed.
func FileError(message, path string, cause error) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// NotFound creates an error for a path that does not exist.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if As(err, &e) {
		return e.ExitCode()
	}
	return ExitRuntimeError
}
