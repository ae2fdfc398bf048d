// Package engine discovers annotated test methods on a unit, invokes them and
// classifies each one as SUCCESS, FAIL or ERROR.
package engine

import (
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// Callable invokes one test method with positional string arguments and
// returns its result. A non-nil error means the invocation itself failed.
type Callable func(args []string) (any, error)

// Descriptor describes one discovered test. Descriptors are built by Discover
// and are not modified afterwards.
type Descriptor struct {
	Name     string
	Kind     testengine.Kind
	Params   []string
	Expected []string

	// Call is nil when the annotation names a method the unit does not have.
	Call Callable
}

// Validate checks the structural invariants of a value-checked descriptor.
// Plain descriptors are always valid; their Expected values are ignored.
func (d *Descriptor) Validate() error {
	if d.Kind != testengine.ValueChecked {
		return nil
	}
	if len(d.Expected) == 0 {
		return &ConfigurationError{Method: d.Name, Reason: ReasonNoExpected}
	}
	if len(d.Params) != len(d.Expected) {
		return &ConfigurationError{
			Method:      d.Name,
			Reason:      ReasonLengthMismatch,
			InputLen:    len(d.Params),
			ExpectedLen: len(d.Expected),
		}
	}
	return nil
}

// Arity returns the number of invocations the descriptor performs: one per
// param, or a single no-argument call when there are none.
func (d *Descriptor) Arity() int {
	if len(d.Params) == 0 {
		return 1
	}
	return len(d.Params)
}
