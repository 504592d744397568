package attr

import (
	"sort"
	"strings"
)

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Lazy is a deferred attribute value evaluated when the map is encoded.
type Lazy func() string

// Map is an ordered attribute map with copy-on-write updates.
// The zero value is an empty map ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// New builds a map from attributes in order. Empty attributes are skipped and
// nil values unset earlier keys.
func New(attrs ...Attr) Map {
	var m Map
	for _, a := range attrs {
		m.put(a.Key, a.Value)
	}
	return m
}

// FromMap builds a map from a plain Go map. Keys are sorted so the result is
// deterministic; nested plain maps are kept as-is and sorted when encoded.
func FromMap(src map[string]any) Map {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var m Map
	for _, k := range keys {
		m.put(k, src[k])
	}
	return m
}

// Len returns the number of attributes.
func (m Map) Len() int {
	return len(m.keys)
}

// Keys returns the attribute names in order.
func (m Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value stored under name.
func (m Map) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name is set.
func (m Map) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Each calls fn for every attribute in order.
func (m Map) Each(fn func(name string, value any)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	if len(m.keys) == 0 {
		return Map{}
	}
	out := Map{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Set returns a copy of m with name set to value. A nil value unsets name.
// Re-setting an existing name keeps its original position.
func (m Map) Set(name string, value any) Map {
	out := m.Clone()
	out.put(name, value)
	return out
}

// With returns a copy of m with every attribute applied in order.
func (m Map) With(attrs ...Attr) Map {
	out := m.Clone()
	for _, a := range attrs {
		out.put(a.Key, a.Value)
	}
	return out
}

// Unset returns a copy of m without name.
func (m Map) Unset(name string) Map {
	return m.Set(name, nil)
}

// Merge returns a copy of m with patch applied on top. Patch values win,
// except for class where both class lists are kept (duplicates dropped).
// A deferred class on either side keeps the merged class deferred.
func (m Map) Merge(patch Map) Map {
	out := m.Clone()
	for _, k := range patch.keys {
		v := patch.values[k]
		if k == "class" {
			if existing, ok := out.values[k]; ok && v != nil {
				v = joinClasses(existing, v)
			}
		}
		out.put(k, v)
	}
	return out
}

// ToMap returns the attributes as a plain Go map.
func (m Map) ToMap() map[string]any {
	out := make(map[string]any, len(m.keys))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func (m *Map) put(name string, value any) {
	if name == "" {
		return
	}
	if value == nil {
		if _, ok := m.values[name]; !ok {
			return
		}
		delete(m.values, name)
		for i, k := range m.keys {
			if k == name {
				m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
				break
			}
		}
		return
	}
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

// joinClasses merges two class values into one de-duplicated list. When
// either side is deferred the result is a Lazy evaluated at encode time.
func joinClasses(a, b any) any {
	if deferred(a) || deferred(b) {
		return Lazy(func() string {
			return strings.Join(uniqueClasses(a, b), " ")
		})
	}
	return uniqueClasses(a, b)
}

func uniqueClasses(values ...any) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		for _, c := range classList(v) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

func deferred(v any) bool {
	switch v.(type) {
	case Lazy, func() string:
		return true
	default:
		return false
	}
}

// classList flattens a class value into individual class names. Deferred
// values are evaluated. Scalars are left to the encoder and yield nothing.
func classList(v any) []string {
	switch c := v.(type) {
	case string:
		return strings.Fields(c)
	case Lazy:
		return strings.Fields(c())
	case func() string:
		return strings.Fields(c())
	case []string:
		var out []string
		for _, s := range c {
			out = append(out, strings.Fields(s)...)
		}
		return out
	case map[string]bool:
		keys := make([]string, 0, len(c))
		for k, on := range c {
			if on && k != "" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		return keys
	case Map:
		var out []string
		c.Each(func(k string, on any) {
			if truthy(on) {
				out = append(out, k)
			}
		})
		return out
	case map[string]any:
		return classList(FromMap(c))
	default:
		return nil
	}
}

// truthy reports whether a class map entry enables its class: true or a
// non-empty string.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	default:
		return false
	}
}
