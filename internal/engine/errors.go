package engine

import (
	"errors"
	"fmt"
)

// ErrNoUnit is returned by Discover and Engine.Run when given a nil unit.
var ErrNoUnit = errors.New("no unit to test")

// ErrBadMetadata is returned when a unit's own annotation table cannot be
// obtained.
var ErrBadMetadata = errors.New("unit metadata unavailable")

// ErrMethodNotFound is the cause of an InvocationFailure for an annotation
// that names a method the unit does not export.
var ErrMethodNotFound = errors.New("method not found on unit")

// ConfigReason identifies why a descriptor is structurally invalid.
type ConfigReason int

const (
	ReasonNoExpected ConfigReason = iota
	ReasonLengthMismatch
)

// ConfigurationError reports a descriptor that is never invoked because its
// metadata is inconsistent.
type ConfigurationError struct {
	Method      string
	Reason      ConfigReason
	InputLen    int
	ExpectedLen int
}

func (e *ConfigurationError) Error() string {
	switch e.Reason {
	case ReasonLengthMismatch:
		return fmt.Sprintf("input/output length mismatch: input length %d, output length %d", e.InputLen, e.ExpectedLen)
	default:
		return "no expected output provided"
	}
}

// InvocationFailure reports a test method that failed while being called:
// it panicked, returned a non-nil error, or could not be dispatched.
type InvocationFailure struct {
	Method string
	Index  int    // position of the failing element in Params
	Arg    string // empty for no-argument invocations
	Cause  error
	Panic  any    // recovered value, nil unless the method panicked
	Stack  []byte // goroutine stack at the time of the panic
}

func (e *InvocationFailure) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("invocation %d panicked: %v", e.Index+1, e.Panic)
	}
	return fmt.Sprintf("invocation %d failed: %v", e.Index+1, e.Cause)
}

func (e *InvocationFailure) Unwrap() error {
	return e.Cause
}

// AssertionMismatch reports a value-checked invocation whose result differs
// from the expected string.
type AssertionMismatch struct {
	Method   string
	Index    int
	Arg      string
	Expected string
	Actual   string
}

func (e *AssertionMismatch) Error() string {
	return fmt.Sprintf("wrong answer for %q: expected %q, returned %q", e.Arg, e.Expected, e.Actual)
}

// ErrBadSignature is the cause of an InvocationFailure when the method's
// parameters cannot receive the annotation's string arguments.
var ErrBadSignature = errors.New("method signature does not match annotation")
