package serial

import (
	"fmt"
	"sync"
)

// Serializable is implemented by opaque typed objects that can round-trip
// through a configuration document. Serialize returns the object's fields as
// a plain mapping; the registry reconstructs the object from that mapping.
type Serializable interface {
	Serialize() map[string]any
}

// Factory reconstructs an object from its serialized fields. The fields map
// does not include the type-tag key.
type Factory func(fields map[string]any) (Serializable, error)

// Handle pairs a registered alias with its factory.
type Handle struct {
	alias   string
	factory Factory
}

// Alias returns the alias under which the handle was registered.
func (h *Handle) Alias() string {
	return h.alias
}

// Registry maps type aliases to constructor functions. It is an explicit
// object passed to the document round-trip, not a process-wide singleton.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handles: map[string]*Handle{},
	}
}

// Register binds alias to factory and returns the resulting handle.
func (r *Registry) Register(alias string, factory Factory) (*Handle, error) {
	if alias == "" {
		return nil, fmt.Errorf("%w: empty alias", ErrBadAlias)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: nil factory for %q", ErrBadAlias, alias)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handles[alias]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAlias, alias)
	}
	h := &Handle{alias: alias, factory: factory}
	r.handles[alias] = h
	return h, nil
}

// Resolve looks up the handle for alias, returning nil when unregistered.
func (r *Registry) Resolve(alias string) *Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handles[alias]
}

// AliasFor returns the alias of a handle obtained from this registry.
func (r *Registry) AliasFor(h *Handle) string {
	if h == nil {
		return ""
	}
	return h.alias
}

// Deserialize invokes the handle's factory on fields.
func (r *Registry) Deserialize(h *Handle, fields map[string]any) (Serializable, error) {
	if h == nil || h.factory == nil {
		return nil, ErrUnknownAlias
	}
	obj, err := h.factory(fields)
	if err != nil {
		return nil, fmt.Errorf("deserialize %q: %w", h.alias, err)
	}
	return obj, nil
}

// Aliases returns the registered aliases in unspecified order.
func (r *Registry) Aliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.handles))
	for alias := range r.handles {
		res = append(res, alias)
	}
	return res
}
