// Package manifest loads test annotations for a unit from a YAML file, so
// tests can be declared without touching the unit's source.
//
//	unit: beautiful
//	tests:
//	  ReturnInt:
//	    kind: value
//	    params: ["3", "2"]
//	    expected: ["3", "2"]
//	  TestSomething: {kind: plain}
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/schema"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// ErrUnitMismatch is returned when a manifest is applied to a different unit
// than the one it declares.
var ErrUnitMismatch = errors.New("manifest is for a different unit")

// Manifest is a decoded annotation file.
type Manifest struct {
	Unit  string
	Tests *testengine.Annotations
}

type document struct {
	Unit  string                  `yaml:"unit"`
	Tests *testengine.Annotations `yaml:"tests"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest, validating it against the manifest schema before
// it is interpreted. Test entries keep the order in which they appear.
func Parse(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := schema.ValidateManifest(raw); err != nil {
		return nil, err
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if doc.Tests == nil {
		doc.Tests = testengine.NewAnnotations()
	}

	return &Manifest{Unit: doc.Unit, Tests: doc.Tests}, nil
}

// For returns the manifest's annotations if it describes unit.
func (m *Manifest) For(unit string) (*testengine.Annotations, error) {
	if m.Unit != unit {
		return nil, fmt.Errorf("%w: manifest declares %q, running %q", ErrUnitMismatch, m.Unit, unit)
	}
	return m.Tests, nil
}
