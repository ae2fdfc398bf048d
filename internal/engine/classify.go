package engine

import (
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// Outcome is the terminal classification of a descriptor.
type Outcome int

const (
	Success Outcome = iota
	Fail
	Error
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "SUCCESS"
	case Fail:
		return "FAIL"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Result is the classified outcome of one descriptor.
type Result struct {
	Name    string
	Kind    testengine.Kind
	Outcome Outcome

	// Err is a *ConfigurationError or *InvocationFailure for Error and an
	// *AssertionMismatch for Fail. It is nil on Success.
	Err error

	// Invocations is the number of calls actually made.
	Invocations int
}

// Message returns the diagnostic for a FAIL or ERROR result.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Classify validates d, invokes it element by element and returns its
// outcome. The first failed invocation or mismatching value decides the
// outcome; later elements are not invoked. A value-checked descriptor that
// fails validation is never invoked.
func Classify(d *Descriptor) Result {
	res := Result{Name: d.Name, Kind: d.Kind}

	if err := d.Validate(); err != nil {
		res.Outcome = Error
		res.Err = err
		return res
	}

	for i, inv := range Invocations(d) {
		res.Invocations++
		if inv.Err != nil {
			res.Outcome = Error
			res.Err = inv.Err
			return res
		}
		if d.Kind != testengine.ValueChecked {
			continue
		}
		if actual := inv.String(); actual != d.Expected[i] {
			res.Outcome = Fail
			res.Err = &AssertionMismatch{
				Method:   d.Name,
				Index:    i,
				Arg:      inv.Arg,
				Expected: d.Expected[i],
				Actual:   actual,
			}
			return res
		}
	}

	res.Outcome = Success
	return res
}
