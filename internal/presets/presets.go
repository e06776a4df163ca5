// Package presets holds named, ready-made rule specifications and a registry
// keyed by preset name.
package presets

import (
	"sort"

	"simca/pkg/automaton"
)

// Factory constructs a fresh Spec so callers can never share mutable rule
// data between simulators by accident.
type Factory func() *automaton.Spec

var registry = map[string]Factory{}

// Register adds a spec factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns the registered preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
