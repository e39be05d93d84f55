package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory is a function that creates a new back-end instance.
// Factories are registered via Register() and called by NewBackend().
type Factory func(cfg Config) Backend

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// Register registers a back-end factory with the given name.
//
// Register panics if factory is nil or if a back-end with the same name is
// already registered, so that duplicate registrations are caught during
// program initialization.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("render: Register called twice for " + name)
	}
	backends[name] = factory
}

// NewBackend creates a back-end instance by name. The error for an
// unknown name lists the registered back-ends.
func NewBackend(name string, cfg Config) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (registered: %s)",
			name, strings.Join(Backends(), ", "))
	}
	return factory(cfg), nil
}

// Backends returns the sorted names of the registered back-ends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
