// Package errors provides structured error types and exit codes for the test engine CLI.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// Exit codes, mirrored from the public testengine package.
const (
	ExitSuccess      = testengine.ExitSuccess    // All tests succeeded
	ExitTestFailure  = testengine.ExitFailure    // At least one FAIL or ERROR
	ExitUsageError   = testengine.ExitUsageError // Bad arguments, config or manifest
	ExitFatalError   = testengine.ExitFatalError // Unit could not be created
	ExitRuntimeError = testengine.ExitFailure    // Unexpected runtime error
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindUsage
	KindNotFound
	KindFatal
)

// EngineError is the base error type for the CLI.
type EngineError struct {
	Kind    ErrorKind
	Message string
	Unit    string // Unit name if applicable
	Cause   error  // Underlying error
}

func (e *EngineError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if e.Unit != "" {
		return fmt.Sprintf("[%s] %s", e.Unit, msg)
	}
	return msg
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *EngineError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindUsage:
		return ExitUsageError
	case KindNotFound, KindFatal:
		return ExitFatalError
	default:
		return ExitRuntimeError
	}
}

// Usage creates a new usage error.
func Usage(message string) *EngineError {
	return &EngineError{
		Kind:    KindUsage,
		Message: message,
	}
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, message string) *EngineError {
	return &EngineError{
		Kind:    KindConfig,
		Message: message,
		Cause:   err,
	}
}

// Fatal creates an error that aborts a run before any test executes.
func Fatal(unit string, err error) *EngineError {
	kind := KindFatal
	if stderrors.Is(err, testengine.ErrUnknownUnit) {
		kind = KindNotFound
	}
	return &EngineError{
		Kind:    kind,
		Unit:    unit,
		Message: "cannot create unit",
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *EngineError
	if stderrors.As(err, &ee) {
		return ee.ExitCode()
	}
	return ExitRuntimeError
}
