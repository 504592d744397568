package theme

import (
	"sort"
	"sync"

	"github.com/vango-dev/tagkit/pkg/attr"
)

// Registry holds defaults and themes keyed by element type ID.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	defaults map[string]attr.Map
	themes   map[string]map[string]attr.Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defaults: make(map[string]attr.Map),
		themes:   make(map[string]map[string]attr.Map),
	}
}

// SetDefaults merges attrs into the defaults for typeID.
func (r *Registry) SetDefaults(typeID string, attrs attr.Map) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults[typeID] = r.defaults[typeID].Merge(attrs)
}

// SetTheme merges attrs into theme name for typeID.
func (r *Registry) SetTheme(name, typeID string, attrs attr.Map) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.themes[name]
	if !ok {
		t = make(map[string]attr.Map)
		r.themes[name] = t
	}
	t[typeID] = t[typeID].Merge(attrs)
}

// Defaults returns the default attributes for typeID.
func (r *Registry) Defaults(typeID string) attr.Map {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults[typeID]
}

// Theme returns the attributes theme name sets for typeID.
func (r *Registry) Theme(name, typeID string) attr.Map {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.themes[name][typeID]
}

// HasTheme reports whether a theme with the given name is registered.
func (r *Registry) HasTheme(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.themes[name]
	return ok
}

// Themes returns the registered theme names, sorted.
func (r *Registry) Themes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
