// Package registry maps (role, name) pairs to component factories.
package registry

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Fallback is invoked the first time an unknown (role, name) pair is resolved.
// It is expected to register the missing definition, typically by deploying it on demand.
type Fallback func(ctx context.Context, key domain.TypeKey) error

// Registry holds the definitions known to a build.
// A child registry reads through to its parent and writes only to itself.
type Registry struct {
	parent *Registry

	mu       sync.RWMutex
	roles    map[string]ports.Role
	types    map[domain.TypeKey]ports.Factory
	fallback Fallback
	tried    map[domain.TypeKey]struct{}

	group singleflight.Group
}

// New creates a root registry with the default roles registered.
func New() *Registry {
	r := newRegistry(nil)
	for _, name := range []string{domain.RoleTask, domain.RoleDataType} {
		r.roles[name] = ports.Role{Name: name}
	}
	return r
}

func newRegistry(parent *Registry) *Registry {
	return &Registry{
		parent: parent,
		roles:  make(map[string]ports.Role),
		types:  make(map[domain.TypeKey]ports.Factory),
		tried:  make(map[domain.TypeKey]struct{}),
	}
}

// Child creates an overlay registry.
func (r *Registry) Child() *Registry {
	return newRegistry(r)
}

// Parent returns the registry r reads through to, or nil.
func (r *Registry) Parent() *Registry {
	return r.parent
}

// SetFallback installs the on-demand resolver consulted for unknown names.
func (r *Registry) SetFallback(fn Fallback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = fn
}

// RegisterRole adds a role.
func (r *Registry) RegisterRole(role ports.Role) error {
	if role.Name == "" {
		return zerr.With(zerr.Wrap(domain.ErrMissingAttribute, "invalid role"), "attribute", "name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.roles[role.Name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateRole, "failed to register role"), "role", role.Name)
	}
	r.roles[role.Name] = role
	return nil
}

// Role looks a role up in r and its ancestors.
func (r *Registry) Role(name string) (ports.Role, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		reg.mu.RLock()
		role, ok := reg.roles[name]
		reg.mu.RUnlock()
		if ok {
			return role, true
		}
	}
	return ports.Role{}, false
}

// Roles returns the names of every visible role, sorted.
func (r *Registry) Roles() []string {
	seen := make(map[string]struct{})
	for reg := r; reg != nil; reg = reg.parent {
		reg.mu.RLock()
		for name := range reg.roles {
			seen[name] = struct{}{}
		}
		reg.mu.RUnlock()
	}
	return slices.Sorted(maps.Keys(seen))
}

// Register binds factory to (role, name).
// Without override an existing definition, in r or any ancestor, is kept and
// ErrDuplicateDefinition is returned. With override a child shadows its parent.
func (r *Registry) Register(role, name string, factory ports.Factory, override bool) error {
	def, ok := r.Role(role)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnknownRole, "failed to register type"), "role", role)
	}
	if factory == nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidImplementation, "failed to register type"), "name", name)
	}
	if def.Contract != nil {
		factory = checked(factory, def.Contract, name)
	}

	key := domain.TypeKey{Role: role, Name: name}
	duplicate := zerr.With(zerr.With(zerr.Wrap(domain.ErrDuplicateDefinition, "failed to register type"),
		"role", role), "name", name)

	if !override && r.parent != nil {
		if _, exists := r.parent.lookup(key); exists {
			return duplicate
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[key]; exists && !override {
		return duplicate
	}
	r.types[key] = factory
	return nil
}

// Restore puts back a factory previously returned by Own, as is.
func (r *Registry) Restore(role, name string, factory ports.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[domain.TypeKey{Role: role, Name: name}] = factory
}

// Own returns the definition registered in r's own layer, ignoring ancestors.
func (r *Registry) Own(role, name string) (ports.Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.types[domain.TypeKey{Role: role, Name: name}]
	return f, ok
}

// UnregisterRole removes a role from r's own layer. Definitions in the role are removed with it.
func (r *Registry) UnregisterRole(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.roles, name)
	for key := range r.types {
		if key.Role == name {
			delete(r.types, key)
		}
	}
}

// Unregister removes a definition from r's own layer.
func (r *Registry) Unregister(role, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.types, domain.TypeKey{Role: role, Name: name})
}

// Resolve returns the factory bound to (role, name).
func (r *Registry) Resolve(role, name string) (ports.Factory, error) {
	return r.ResolveContext(context.Background(), role, name)
}

// ResolveContext returns the factory bound to (role, name), consulting the fallback of the
// first registry in the chain that has one when the name is unknown.
func (r *Registry) ResolveContext(ctx context.Context, role, name string) (ports.Factory, error) {
	if _, ok := r.Role(role); !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownRole, "failed to resolve type"), "role", role)
	}

	key := domain.TypeKey{Role: role, Name: name}
	if f, ok := r.lookup(key); ok {
		return f, nil
	}

	for reg := r; reg != nil; reg = reg.parent {
		called, err := reg.runFallback(ctx, key)
		if err != nil {
			return nil, err
		}
		if called {
			if f, ok := r.lookup(key); ok {
				return f, nil
			}
			break
		}
	}

	return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownType, "failed to resolve type"),
		"role", role), "name", name)
}

// Types returns the names registered for role, sorted.
func (r *Registry) Types(role string) []string {
	seen := make(map[string]struct{})
	for reg := r; reg != nil; reg = reg.parent {
		reg.mu.RLock()
		for key := range reg.types {
			if key.Role == role {
				seen[key.Name] = struct{}{}
			}
		}
		reg.mu.RUnlock()
	}
	return slices.Sorted(maps.Keys(seen))
}

func (r *Registry) lookup(key domain.TypeKey) (ports.Factory, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		reg.mu.RLock()
		f, ok := reg.types[key]
		reg.mu.RUnlock()
		if ok {
			return f, true
		}
	}
	return nil, false
}

// runFallback calls the fallback of r until it succeeds once for key.
// A failed attempt is retried by the next resolution.
// called reports whether r has a fallback at all.
func (r *Registry) runFallback(ctx context.Context, key domain.TypeKey) (called bool, err error) {
	r.mu.RLock()
	fn := r.fallback
	r.mu.RUnlock()
	if fn == nil {
		return false, nil
	}

	_, err, _ = r.group.Do(key.String(), func() (any, error) {
		r.mu.RLock()
		_, done := r.tried[key]
		r.mu.RUnlock()
		if done {
			return nil, nil
		}

		if err := fn(ctx, key); err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.tried[key] = struct{}{}
		r.mu.Unlock()
		return nil, nil
	})
	return true, err
}

func checked(factory ports.Factory, contract ports.Contract, name string) ports.Factory {
	return func() (ports.Component, error) {
		c, err := factory()
		if err != nil {
			return nil, err
		}
		if err := contract(c); err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidImplementation, err), "name", name)
		}
		return c, nil
	}
}
