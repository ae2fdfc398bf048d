package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

func TestLoad(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "beautiful.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if m.Unit != "beautiful" {
		t.Errorf("Unit = %q, want beautiful", m.Unit)
	}
	wantNames := []string{"ReturnIntTest", "TestSomething", "NoExpectedOutputStringTest"}
	if diff := cmp.Diff(wantNames, m.Tests.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	got, _ := m.Tests.Get("ReturnIntTest")
	want := testengine.TestString([]string{"3", "2"}, []string{"3", "2"})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReturnIntTest mismatch (-want +got):\n%s", diff)
	}

	plain, _ := m.Tests.Get("TestSomething")
	if diff := cmp.Diff(testengine.Annotation{Kind: testengine.Plain}, plain); diff != "" {
		t.Errorf("TestSomething mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestParse_KindAliases(t *testing.T) {
	m, err := Parse(strings.NewReader(`
unit: u
tests:
  A: {kind: string, params: [x], expected: [x]}
  B: {kind: value-checked, params: [y], expected: [y]}
  C: {params: [z]}
  D: {kind: Plain}
  E: {kind: VALUE, params: [w], expected: [w]}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for name, want := range map[string]testengine.Kind{"A": testengine.ValueChecked, "B": testengine.ValueChecked, "C": testengine.Plain, "D": testengine.Plain, "E": testengine.ValueChecked} {
		ann, ok := m.Tests.Get(name)
		if !ok {
			t.Fatalf("missing %s", name)
		}
		if ann.Kind != want {
			t.Errorf("%s kind = %v, want %v", name, ann.Kind, want)
		}
	}
}

func TestParse_EmptyExpectedKept(t *testing.T) {
	m, err := Parse(strings.NewReader("unit: u\ntests:\n  Echo: {kind: value, params: [cat]}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ann, _ := m.Tests.Get("Echo")
	if len(ann.Expected) != 0 {
		t.Errorf("Expected = %v, want empty", ann.Expected)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"not yaml", "unit: [", "invalid YAML"},
		{"missing unit", "tests: {}", "manifest validation failed"},
		{"bad kind", "unit: u\ntests:\n  A: {kind: maybe}\n", "manifest validation failed"},
		{"unknown field", "unit: u\ntests: {}\nextra: 1\n", "manifest validation failed"},
		{"duplicate test", "unit: u\ntests:\n  A: {}\n  A: {}\n", "invalid YAML"},
		{"tests not mapping", "unit: u\ntests: [A]\n", "manifest validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestManifest_For(t *testing.T) {
	m := &Manifest{Unit: "beautiful", Tests: testengine.NewAnnotations().Set("A", testengine.Test())}

	ann, err := m.For("beautiful")
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if ann.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ann.Len())
	}

	if _, err := m.For("arith"); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("For(other) error = %v, want ErrUnitMismatch", err)
	}
}
