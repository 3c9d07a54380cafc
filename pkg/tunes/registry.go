package tunes

import (
	"sort"
	"sync"

	"github.com/aretw0/chime/pkg/domain"
)

// Constructor builds a fresh Tune with the given options applied.
type Constructor func(opts ...Option) domain.Tune

// Registry manages named jingles. The zero value is not usable; use
// NewRegistry, or the package-level Register for the default set.
type Registry struct {
	mu    sync.RWMutex
	tunes map[string]Constructor
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tunes: make(map[string]Constructor),
	}
}

// Register adds a jingle to the registry.
// If a jingle with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tunes[name] = fn
}

// Lookup resolves a jingle by name. The second return value is false for
// unknown names.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.tunes[name]
	return fn, ok
}

// Names lists the registered jingles in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tunes))
	for name := range r.tunes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry holds the built-in jingles plus anything added via the
// package-level Register.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register("yes", Yes)
	r.Register("no", No)
	r.Register("wrong", Wrong)
	r.Register("victory", Victory)
	r.Register("laugh", Laugh)
	r.Register("sad", Sad)
	r.Register("siren", Siren)
	return r
}()

// Register adds a custom jingle to the default registry, making it
// available to ByName and every surface built on it.
func Register(name string, fn Constructor) {
	defaultRegistry.Register(name, fn)
}

// ByName resolves a jingle constructor from its lowercase name. The second
// return value is false for unknown names.
func ByName(name string) (Constructor, bool) {
	return defaultRegistry.Lookup(name)
}

// Names lists the available jingles in a stable order.
func Names() []string {
	return defaultRegistry.Names()
}
