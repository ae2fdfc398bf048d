package testengine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownUnit is returned by NewUnit when no factory is registered under
// the requested name.
var ErrUnknownUnit = errors.New("unknown unit")

// Factory creates a fresh instance of a unit.
type Factory func() any

var (
	unitsMu sync.RWMutex
	units   = make(map[string]Factory)
)

// RegisterUnit makes a unit available to the CLI under name. It is meant to
// be called from init functions and panics if name is empty, the factory is
// nil, or the name is already taken.
func RegisterUnit(name string, factory Factory) {
	unitsMu.Lock()
	defer unitsMu.Unlock()

	if name == "" {
		panic("testengine: RegisterUnit with empty name")
	}
	if factory == nil {
		panic("testengine: RegisterUnit factory is nil for " + name)
	}
	if _, dup := units[name]; dup {
		panic("testengine: RegisterUnit called twice for " + name)
	}
	units[name] = factory
}

// NewUnit instantiates the unit registered under name.
func NewUnit(name string) (any, error) {
	unitsMu.RLock()
	factory, ok := units[name]
	unitsMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
	}
	unit := factory()
	if unit == nil {
		return nil, fmt.Errorf("unit %s: factory returned nil", name)
	}
	return unit, nil
}

// Units returns the names of all registered units, sorted.
func Units() []string {
	unitsMu.RLock()
	defer unitsMu.RUnlock()

	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
