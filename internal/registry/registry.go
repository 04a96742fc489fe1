package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/lunaticare/nativevariants/internal/component"
	"github.com/lunaticare/nativevariants/internal/config"
	"github.com/lunaticare/nativevariants/internal/platform"
)

// Factory builds a component instance from its manifest block.
type Factory func(c *config.Component, host platform.HostProbe) (component.Component, error)

// Registry holds the registered component-kind factories for a single
// application instance.
type Registry struct {
	factories map[string]Factory
}

// New creates an empty Registry instance.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default returns a registry with the core component kinds registered.
func Default() *Registry {
	r := New()
	r.RegisterKind("library", component.NewLibraryFromConfig)
	r.RegisterKind("application", component.NewApplicationFromConfig)
	return r
}

// RegisterKind registers a factory for a component kind. Registering the
// same kind twice is a programmer error.
func (r *Registry) RegisterKind(kind string, factory Factory) {
	if _, exists := r.factories[kind]; exists {
		panic(fmt.Sprintf("component kind '%s' already registered", kind))
	}
	slog.Debug("Registering component kind.", "kind", kind)
	r.factories[kind] = factory
}

// Kinds returns the registered kind names, sorted for stable output.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Create builds the component instance for one manifest block.
func (r *Registry) Create(c *config.Component, host platform.HostProbe) (component.Component, error) {
	factory, ok := r.factories[c.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown component kind %q for component %q (known kinds: %v)", c.Kind, c.Name, r.Kinds())
	}
	return factory(c, host)
}
