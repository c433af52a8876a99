package bot

import (
	"slices"
	"sync"
)

// Registry collects the modules that make up a running bot. Modules add
// themselves through the package-level Register from their init functions, so
// importing a module package is all it takes to enable it.
type Registry struct {
	mu      sync.RWMutex
	modules []Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends m. Arrival order is preserved and later decides the order
// of config loading and Init calls.
func (r *Registry) Register(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = append(r.modules, m)
}

// Modules returns a copy of the registered modules. Callers may mutate the
// returned slice without affecting the registry.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.modules)
}

var globalRegistry = NewRegistry()

// Register adds a module to the global registry, normally from a module
// package's init function.
func Register(m Module) {
	globalRegistry.Register(m)
}

// Modules returns the modules in the global registry.
func Modules() []Module {
	return globalRegistry.Modules()
}

// ResetGlobalRegistry discards the global registry. Only tests call this.
func ResetGlobalRegistry() {
	globalRegistry = NewRegistry()
}
