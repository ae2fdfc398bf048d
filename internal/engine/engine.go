package engine

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// Reporter receives the progress of a run: the discovered descriptors, one
// result per descriptor in discovery order, and the final summary.
type Reporter interface {
	Start(unit string, descriptors []Descriptor)
	Report(result Result)
	Finish(summary Summary)
}

// Discard is a Reporter that ignores everything.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Start(string, []Descriptor) {}
func (discard) Report(Result)              {}
func (discard) Finish(Summary)             {}

// Summary holds the counts of one run. Succeeded, Failed and Errored
// partition Total.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Errored   int
}

// Add counts one outcome.
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch o {
	case Success:
		s.Succeeded++
	case Fail:
		s.Failed++
	default:
		s.Errored++
	}
}

// OK reports whether no test failed or errored.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d tests: %d passed, %d failed, %d errors", s.Total, s.Succeeded, s.Failed, s.Errored)
}

// Engine runs every discovered test of a unit, one after another.
type Engine struct {
	reporter Reporter
	log      logr.Logger
	overlay  *testengine.Annotations
}

// New creates an engine that reports to reporter. A nil reporter discards
// all results.
func New(reporter Reporter) *Engine {
	if reporter == nil {
		reporter = Discard
	}
	return &Engine{
		reporter: reporter,
		log:      logr.Discard(),
	}
}

// SetLogger sets the logger used for diagnostic output.
func (e *Engine) SetLogger(log logr.Logger) {
	e.log = log
}

// SetOverlay sets annotations applied on top of those a unit declares.
func (e *Engine) SetOverlay(overlay *testengine.Annotations) {
	e.overlay = overlay
}

// Discover returns the descriptors Run would execute for unit.
func (e *Engine) Discover(unit any) ([]Descriptor, error) {
	if isNil(unit) {
		return nil, ErrNoUnit
	}
	meta, err := MetadataFor(unit, e.overlay)
	if err != nil {
		return nil, err
	}
	return Discover(unit, meta)
}

// Run discovers the tests of unit, classifies each of them in discovery order
// and returns the counts. Individual test failures never produce an error;
// only a unit that cannot be inspected does, before anything is reported:
// ErrNoUnit for a nil unit and ErrBadMetadata when its annotations cannot
// be read.
func (e *Engine) Run(name string, unit any) (Summary, error) {
	log := e.log.WithValues("unit", name, "run", uuid.NewString())

	descriptors, err := e.Discover(unit)
	if err != nil {
		return Summary{}, err
	}
	log.Info("starting run", "tests", len(descriptors))

	e.reporter.Start(name, descriptors)

	var summary Summary
	for i := range descriptors {
		res := Classify(&descriptors[i])
		summary.Add(res.Outcome)
		log.V(1).Info("test finished", "test", res.Name, "outcome", res.Outcome.String(), "invocations", res.Invocations)
		var failure *InvocationFailure
		if errors.As(res.Err, &failure) && failure.Stack != nil {
			log.V(2).Info("test panicked", "test", res.Name, "stack", string(failure.Stack))
		}
		e.reporter.Report(res)
	}

	e.reporter.Finish(summary)
	log.Info("run finished", "total", summary.Total, "passed", summary.Succeeded, "failed", summary.Failed, "errors", summary.Errored)
	return summary, nil
}
