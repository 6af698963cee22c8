// Package registry holds the process-wide cache of constructed GraphQL types.
//
// The registry is the single place where type identity is established: for
// a given name at most one type object exists for the registry's lifetime.
// Entries are built on first request and never evicted.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gqlmeta/internal/lazy"
	"gqlmeta/internal/schema"
)

// ErrCyclicBuild is returned when a builder requests the type it is
// currently building.
var ErrCyclicBuild = errors.New("cyclic type build")

// Builder constructs the type registered under name. Nested lookups made
// during Build must go through types, which re-enters the registry without
// re-locking it. Work deferred past Build (field thunks, lazy references)
// must use the Registry itself.
type Builder interface {
	Build(name string, types lazy.Lookup) (schema.NamedType, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(name string, types lazy.Lookup) (schema.NamedType, error)

// Build calls f(name, types).
func (f BuilderFunc) Build(name string, types lazy.Lookup) (schema.NamedType, error) {
	return f(name, types)
}

// Registry is a get-or-build cache keyed by type name. One mutex guards the
// whole get-or-build step so that concurrent schema builds never construct
// the same name twice.
type Registry struct {
	mu       sync.Mutex
	builder  Builder
	types    map[string]schema.NamedType
	building []string // names whose build is in progress, outermost first
}

// New creates an empty registry backed by builder.
func New(builder Builder) *Registry {
	return &Registry{
		builder: builder,
		types:   make(map[string]schema.NamedType),
	}
}

// Global registry instance
var (
	globalMu       sync.Mutex
	globalRegistry = New(nil)
)

// Default returns the process-wide registry.
func Default() *Registry {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalRegistry
}

// SetBuilder installs the builder used for names not yet cached.
func (r *Registry) SetBuilder(builder Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builder = builder
}

// Type returns the type registered under name, building it on first request.
func (r *Registry) Type(name string) (schema.NamedType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrBuild(name)
}

// getOrBuild must be called with r.mu held.
func (r *Registry) getOrBuild(name string) (schema.NamedType, error) {
	if t, ok := r.types[name]; ok {
		return t, nil
	}

	for i, inProgress := range r.building {
		if inProgress == name {
			chain := append(append([]string{}, r.building[i:]...), name)
			return nil, fmt.Errorf("%w: %s", ErrCyclicBuild, strings.Join(chain, " -> "))
		}
	}

	if r.builder == nil {
		return nil, fmt.Errorf("no builder registered for type %q", name)
	}

	r.building = append(r.building, name)
	defer func() { r.building = r.building[:len(r.building)-1] }()

	t, err := r.builder.Build(name, session{r: r})
	if err != nil {
		return nil, err
	}

	if t == nil {
		return nil, fmt.Errorf("builder returned no type for %q", name)
	}

	r.types[name] = t

	return t, nil
}

// session is the Lookup handed to builders. Its lookups run under the lock
// already held by the outermost Type call.
type session struct {
	r *Registry
}

func (s session) Type(name string) (schema.NamedType, error) {
	return s.r.getOrBuild(name)
}

// Register stores a prebuilt type. Registering a different object under an
// existing name is an error.
func (r *Registry) Register(t schema.NamedType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.TypeName()
	if existing, ok := r.types[name]; ok && existing != t {
		return fmt.Errorf("type %q already registered", name)
	}

	r.types[name] = t

	return nil
}

// Has reports whether name is cached.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.types[name]
	return ok
}

// Names returns the cached type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of cached types.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.types)
}

// Reset clears the process-wide registry (used for testing).
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalRegistry = New(nil)
}
