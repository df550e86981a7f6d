package resource

import (
	"sync"

	"github.com/cwlabs/datakit/types"
)

// Registry maps module names (e.g. "datakit/data") to Containers, so callers
// can address packaged namespaces by name rather than by filesystem path.
type Registry struct {
	mu         sync.RWMutex
	containers map[string]Container
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{containers: make(map[string]Container)}
}

// Register adds or replaces the container for the given module name.
func (r *Registry) Register(module string, c Container) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.containers[module] = c
}

// Lookup returns the container registered under module.
func (r *Registry) Lookup(module string) (Container, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.containers[module]
	return c, ok
}

// Modules returns the names of all registered modules.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.containers))
	for name := range r.containers {
		names = append(names, name)
	}
	return names
}

// Resolve locates name inside the module registered under the given name.
func (r *Registry) Resolve(module, name string) (*Handle, error) {
	if module == "" {
		return nil, types.NewError(types.ErrTypeMismatch, "module name must not be empty")
	}
	c, ok := r.Lookup(module)
	if !ok {
		return nil, types.Errorf(types.ErrModuleNotFound, "module %q is not registered", module)
	}
	return c.Resolve(name)
}

// DefaultRegistry holds the process-wide module registrations. The built-in
// dataset modules register themselves here at init.
var DefaultRegistry = NewRegistry()

// Register adds a container to the DefaultRegistry.
func Register(module string, c Container) {
	DefaultRegistry.Register(module, c)
}

// Resolve locates name inside a module of the DefaultRegistry.
func Resolve(module, name string) (*Handle, error) {
	return DefaultRegistry.Resolve(module, name)
}

// ResolveRef resolves name against ref, which may be either a module name
// registered in the DefaultRegistry or a Container supplied directly. This
// mirrors the loose module argument of the public loading API.
func ResolveRef(ref any, name string) (*Handle, error) {
	switch v := ref.(type) {
	case string:
		return DefaultRegistry.Resolve(v, name)
	case Container:
		if v == nil {
			return nil, types.NewError(types.ErrTypeMismatch, "module reference container must not be nil")
		}
		return v.Resolve(name)
	case nil:
		return nil, types.NewError(types.ErrTypeMismatch, "module reference must be a module name or a resource.Container")
	default:
		return nil, types.Errorf(types.ErrTypeMismatch, "unsupported module reference type %T", ref)
	}
}
