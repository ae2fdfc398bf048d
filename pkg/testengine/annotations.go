package testengine

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Annotated is implemented by units that carry their own test metadata.
type Annotated interface {
	TestAnnotations() *Annotations
}

// Annotations maps method names to their test metadata, remembering the
// order in which entries were declared.
type Annotations struct {
	m *orderedmap.OrderedMap[string, Annotation]
}

// NewAnnotations creates an empty table.
func NewAnnotations() *Annotations {
	return &Annotations{m: orderedmap.New[string, Annotation]()}
}

// Set attaches an annotation to the named method and returns the table so
// declarations can be chained. Re-declaring a name replaces its annotation
// but keeps its original position.
func (a *Annotations) Set(method string, ann Annotation) *Annotations {
	a.init()
	a.m.Set(method, ann)
	return a
}

// Get returns the annotation for the named method.
func (a *Annotations) Get(method string) (Annotation, bool) {
	if a == nil || a.m == nil {
		return Annotation{}, false
	}
	return a.m.Get(method)
}

// Len returns the number of annotated methods.
func (a *Annotations) Len() int {
	if a == nil || a.m == nil {
		return 0
	}
	return a.m.Len()
}

// Names returns annotated method names in declaration order.
func (a *Annotations) Names() []string {
	if a == nil || a.m == nil {
		return nil
	}
	names := make([]string, 0, a.m.Len())
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Merge returns a new table holding a's entries overlaid with overlay's.
// Entries present in both take overlay's annotation; entries only in overlay
// are appended in overlay's order. Either side may be nil.
func (a *Annotations) Merge(overlay *Annotations) *Annotations {
	merged := NewAnnotations()
	for _, name := range a.Names() {
		ann, _ := a.Get(name)
		merged.Set(name, ann)
	}
	for _, name := range overlay.Names() {
		ann, _ := overlay.Get(name)
		merged.Set(name, ann)
	}
	return merged
}

// MarshalJSON encodes the table as a JSON object in declaration order.
func (a *Annotations) MarshalJSON() ([]byte, error) {
	if a == nil || a.m == nil {
		return []byte("{}"), nil
	}
	return a.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the order of its keys.
func (a *Annotations) UnmarshalJSON(data []byte) error {
	a.m = orderedmap.New[string, Annotation]()
	return a.m.UnmarshalJSON(data)
}

// MarshalYAML encodes the table as a YAML mapping in declaration order.
func (a *Annotations) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range a.Names() {
		ann, _ := a.Get(name)
		var value yaml.Node
		if err := value.Encode(ann); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&value)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, keeping the order of its keys.
func (a *Annotations) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: annotations must be a mapping", node.Line)
	}
	a.m = orderedmap.New[string, Annotation]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var ann Annotation
		if err := value.Decode(&ann); err != nil {
			return fmt.Errorf("line %d: test %q: %w", value.Line, key.Value, err)
		}
		a.m.Set(key.Value, ann)
	}
	return nil
}

func (a *Annotations) init() {
	if a.m == nil {
		a.m = orderedmap.New[string, Annotation]()
	}
}
