package lang

import (
	"slices"
	"sync"
)

// Registry is a concurrency-safe table of named values that can serve as the
// scope of an evaluation.
type Registry struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]any)}
}

// Globals is the process-wide registry used as the scope when none is given.
//
//nolint:gochecknoglobals
var Globals = NewRegistry()

// Set binds name to v, replacing any previous binding.
func (r *Registry) Set(name string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[name] = v
}

// Get returns the value bound to name.
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name]

	return v, ok
}

// Delete removes the binding for name.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, name)
}

// Keys returns the bound names in lexical order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Member implements [Member] so that a registry can be indexed like an
// object.
func (r *Registry) Member(key any) (any, bool) {
	return r.Get(PropertyKey(key))
}
