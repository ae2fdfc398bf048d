// Package testengine is the authoring API for units run by the testengine CLI.
//
// A unit is any value whose exported methods are tests. Metadata is attached
// without touching method signatures: the unit implements Annotated and returns
// a table mapping method names to annotations, or an external YAML manifest
// supplies the same table.
//
//	type Suite struct{}
//
//	func (Suite) TestAnnotations() *testengine.Annotations {
//		return testengine.NewAnnotations().
//			Set("Echo", testengine.TestString([]string{"a"}, []string{"a"}))
//	}
//
//	func (Suite) Echo(s string) string { return s }
package testengine

import (
	"fmt"
	"strings"
)

// Kind distinguishes tests that only need to complete from tests whose return
// value is compared against an expected string.
type Kind int

const (
	// Plain tests succeed when every invocation returns without failing.
	// Return values are discarded.
	Plain Kind = iota
	// ValueChecked tests compare the string form of each invocation's
	// result with the expected value at the same position.
	ValueChecked
)

// String returns the canonical text form of the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case ValueChecked:
		return "value"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Plain, ValueChecked:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("invalid test kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("invalid test kind %q (valid: %s)", string(text), strings.Join(ValidKinds(), ", "))
	}
	*k = parsed
	return nil
}

// ParseKind converts a string to a Kind. Matching is case-insensitive and
// accepts "value-checked" and "string" as aliases for "value".
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "":
		return Plain, true
	case "value", "value-checked", "string":
		return ValueChecked, true
	default:
		return 0, false
	}
}

// ValidKinds returns the canonical names of all kinds.
func ValidKinds() []string {
	return []string{Plain.String(), ValueChecked.String()}
}

// Annotation is the test metadata attached to one method.
type Annotation struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Params   []string `json:"params,omitempty" yaml:"params,omitempty"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// Test returns a plain test annotation. With no params the method is invoked
// once with no arguments; otherwise once per param.
func Test(params ...string) Annotation {
	return Annotation{Kind: Plain, Params: params}
}

// TestString returns a value-checked annotation. The method is invoked once
// per param and fmt.Sprint of its result must equal the expected value at
// the same index.
func TestString(params, expected []string) Annotation {
	return Annotation{Kind: ValueChecked, Params: params, Expected: expected}
}
