package engine

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// Metadata answers, for each method name, whether it is a test and how.
// *testengine.Annotations implements it.
type Metadata interface {
	Get(method string) (testengine.Annotation, bool)
	Names() []string
}

// MetadataFor returns the annotations a unit declares about itself through
// testengine.Annotated, overlaid with the entries of overlay. Both sources
// are optional. A panic in TestAnnotations is returned as ErrBadMetadata.
func MetadataFor(unit any, overlay *testengine.Annotations) (*testengine.Annotations, error) {
	if isNil(unit) {
		return overlay.Merge(nil), nil
	}
	own, err := ownAnnotations(unit)
	if err != nil {
		return nil, err
	}
	return own.Merge(overlay), nil
}

func ownAnnotations(unit any) (own *testengine.Annotations, err error) {
	a, ok := unit.(testengine.Annotated)
	if !ok {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: TestAnnotations panicked: %v", ErrBadMetadata, r)
		}
	}()
	return a.TestAnnotations(), nil
}

// Discover returns a descriptor for every exported method of unit that meta
// annotates. Methods are visited in the order reflect reports them (sorted by
// name), so the result is stable across runs. Annotations naming a method the
// unit does not export follow, in declaration order, with a nil Call.
//
// A unit without annotated methods yields an empty slice and no error.
func Discover(unit any, meta Metadata) ([]Descriptor, error) {
	if isNil(unit) {
		return nil, ErrNoUnit
	}
	if isNil(meta) {
		return nil, nil
	}

	v := reflect.ValueOf(unit)
	t := v.Type()

	var descriptors []Descriptor
	bound := make(map[string]bool)
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		ann, ok := meta.Get(m.Name)
		if !ok {
			continue
		}
		bound[m.Name] = true
		descriptors = append(descriptors, newDescriptor(m.Name, ann, bind(v.Method(i))))
	}

	for _, name := range meta.Names() {
		if bound[name] {
			continue
		}
		ann, _ := meta.Get(name)
		descriptors = append(descriptors, newDescriptor(name, ann, nil))
	}

	return descriptors, nil
}

func newDescriptor(name string, ann testengine.Annotation, call Callable) Descriptor {
	d := Descriptor{
		Name:   name,
		Kind:   ann.Kind,
		Params: slices.Clone(ann.Params),
		Call:   call,
	}
	if ann.Kind == testengine.ValueChecked {
		d.Expected = slices.Clone(ann.Expected)
	}
	return d
}

func isNil(v any) bool {
	return v == nil || isNilValue(reflect.ValueOf(v))
}
