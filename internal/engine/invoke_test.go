package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// descriptorFor binds one fixture method the same way Discover does.
func descriptorFor(t *testing.T, f *fixture, method string, ann testengine.Annotation) *Descriptor {
	t.Helper()
	m := reflect.ValueOf(f).MethodByName(method)
	if !m.IsValid() {
		t.Fatalf("fixture has no method %s", method)
	}
	d := newDescriptor(method, ann, bind(m))
	return &d
}

func collect(d *Descriptor) []Invocation {
	var out []Invocation
	for _, inv := range Invocations(d) {
		out = append(out, inv)
	}
	return out
}

func TestInvocations_NoParamsCallsOnce(t *testing.T) {
	f := &fixture{}
	invs := collect(descriptorFor(t, f, "Plain", testengine.Test()))

	if len(invs) != 1 {
		t.Fatalf("got %d invocations, want 1", len(invs))
	}
	if invs[0].Err != nil {
		t.Errorf("unexpected error: %v", invs[0].Err)
	}
	if diff := cmp.Diff([]string{"Plain()"}, f.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestInvocations_OncePerParamInOrder(t *testing.T) {
	f := &fixture{}
	invs := collect(descriptorFor(t, f, "PlainWithParam", testengine.Test("a", "b", "c")))

	if len(invs) != 3 {
		t.Fatalf("got %d invocations, want 3", len(invs))
	}
	want := []string{"PlainWithParam(a)", "PlainWithParam(b)", "PlainWithParam(c)"}
	if diff := cmp.Diff(want, f.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	for i, inv := range invs {
		if inv.Index != i {
			t.Errorf("invocation %d has Index %d", i, inv.Index)
		}
	}
}

func TestInvocations_StopsAfterFailure(t *testing.T) {
	f := &fixture{}
	invs := collect(descriptorFor(t, f, "FailOn", testengine.Test("ok", "bad", "never")))

	if len(invs) != 2 {
		t.Fatalf("got %d invocations, want 2", len(invs))
	}
	var failure *InvocationFailure
	if !errors.As(invs[1].Err, &failure) {
		t.Fatalf("second invocation error = %v, want *InvocationFailure", invs[1].Err)
	}
	if failure.Index != 1 || failure.Arg != "bad" || failure.Method != "FailOn" {
		t.Errorf("failure = %+v", failure)
	}
	if diff := cmp.Diff([]string{"FailOn(ok)", "FailOn(bad)"}, f.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestInvocations_ConsumerCanStopEarly(t *testing.T) {
	f := &fixture{}
	d := descriptorFor(t, f, "Echo", testengine.TestString([]string{"1", "2", "3"}, []string{"1", "2", "3"}))

	for _, inv := range Invocations(d) {
		if inv.Arg == "1" {
			break
		}
	}
	if diff := cmp.Diff([]string{"Echo(1)"}, f.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestInvocations_Panic(t *testing.T) {
	f := &fixture{}
	invs := collect(descriptorFor(t, f, "NilDeref", testengine.Test()))

	var failure *InvocationFailure
	if !errors.As(invs[0].Err, &failure) {
		t.Fatalf("error = %v, want *InvocationFailure", invs[0].Err)
	}
	if failure.Panic == nil {
		t.Error("Panic is nil for a panicking method")
	}
	if len(failure.Stack) == 0 {
		t.Error("Stack is empty for a panicking method")
	}
	if failure.Cause == nil {
		t.Error("runtime error panic should be kept as Cause")
	}
}

func TestInvocations_PanicWithNonError(t *testing.T) {
	d := &Descriptor{Name: "Custom", Call: func([]string) (any, error) { panic("custom") }}
	invs := collect(d)

	var failure *InvocationFailure
	if !errors.As(invs[0].Err, &failure) {
		t.Fatalf("error = %v, want *InvocationFailure", invs[0].Err)
	}
	if failure.Panic != "custom" || failure.Cause != nil {
		t.Errorf("failure = %+v", failure)
	}
	if got, want := failure.Error(), "invocation 1 panicked: custom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInvocations_MissingMethod(t *testing.T) {
	d := &Descriptor{Name: "Ghost", Params: []string{"a", "b"}}
	invs := collect(d)

	if len(invs) != 1 {
		t.Fatalf("got %d invocations, want 1", len(invs))
	}
	if !errors.Is(invs[0].Err, ErrMethodNotFound) {
		t.Errorf("error = %v, want ErrMethodNotFound", invs[0].Err)
	}
}

func TestInvocations_Values(t *testing.T) {
	tests := []struct {
		name   string
		method string
		param  string
		want   string
	}{
		{"string result", "Echo", "John", "John"},
		{"int result", "ParseInt", "42", "42"},
		{"value with nil error", "Checked", "hi", "hi!"},
		{"named string param", "Labeled", "tag", "tag"},
		{"plain return discarded by caller", "PlainReturning", "x", "ignored"},
		{"no result", "PlainWithParam", "x", "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := descriptorFor(t, &fixture{}, tt.method, testengine.Test(tt.param))
			invs := collect(d)
			if invs[0].Err != nil {
				t.Fatalf("unexpected error: %v", invs[0].Err)
			}
			if got := invs[0].String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvocations_BadSignature(t *testing.T) {
	tests := []struct {
		name   string
		method string
		ann    testengine.Annotation
	}{
		{"too few params", "TwoArgs", testengine.Test("a")},
		{"param on no-arg method", "Plain", testengine.Test("a")},
		{"no params on one-arg method", "Echo", testengine.Test()},
		{"non-string param", "IntArg", testengine.Test("1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fixture{}
			invs := collect(descriptorFor(t, f, tt.method, tt.ann))
			if !errors.Is(invs[0].Err, ErrBadSignature) {
				t.Errorf("error = %v, want ErrBadSignature", invs[0].Err)
			}
			if len(f.calls) != 0 {
				t.Errorf("method was called despite signature mismatch: %v", f.calls)
			}
		})
	}
}

func TestInvocations_ReturnedError(t *testing.T) {
	d := descriptorFor(t, &fixture{}, "Checked", testengine.Test(""))
	invs := collect(d)

	if invs[0].Err == nil {
		t.Fatal("expected invocation failure")
	}
	if got, want := invs[0].Err.Error(), "invocation 1 failed: empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
