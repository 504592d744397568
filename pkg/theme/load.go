package theme

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/attr"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FormatOf returns the format for a file name based on its extension.
func FormatOf(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

func parserFor(format string) (koanf.Parser, error) {
	switch format {
	case FormatTOML:
		return toml.Parser(), nil
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	}
	return nil, errors.Newf(errors.CodeThemeLoad, "Unsupported theme format %q.", format).
		WithSuggestion("Use a .toml, .yaml, .yml or .json file.")
}

// LoadFile reads a theme file into r. Values from the file are merged over
// what r already holds.
func (r *Registry) LoadFile(path string) error {
	format, ok := FormatOf(path)
	if !ok {
		return errors.Newf(errors.CodeThemeLoad, "Cannot tell the format of %s.", path).
			WithSuggestion("Use a .toml, .yaml, .yml or .json file.")
	}
	parser, err := parserFor(format)
	if err != nil {
		return err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Newf(errors.CodeThemeLoad, "Failed to read theme file %s.", path).Wrap(err)
	}
	return r.apply(k)
}

// Load reads theme data in the given format into r.
func (r *Registry) Load(data []byte, format string) error {
	parser, err := parserFor(format)
	if err != nil {
		return err
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return errors.Newf(errors.CodeThemeLoad, "Failed to parse %s theme data.", format).Wrap(err)
	}
	return r.apply(k)
}

// LoadFile creates a registry from a theme file.
func LoadFile(path string) (*Registry, error) {
	r := NewRegistry()
	if err := r.LoadFile(path); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) apply(k *koanf.Koanf) error {
	for key := range k.Raw() {
		if key != "defaults" && key != "themes" {
			return errors.Newf(errors.CodeThemeLoad, "Unknown theme section %q.", key).
				WithSuggestion("Only [defaults.<type>] and [themes.<name>.<type>] tables are allowed.")
		}
	}

	defaults, err := table(k.Get("defaults"), "defaults")
	if err != nil {
		return err
	}
	for _, typeID := range sortedKeys(defaults) {
		m, err := attributes(defaults[typeID], "defaults."+typeID)
		if err != nil {
			return err
		}
		r.SetDefaults(typeID, m)
	}

	themes, err := table(k.Get("themes"), "themes")
	if err != nil {
		return err
	}
	for _, name := range sortedKeys(themes) {
		types, err := table(themes[name], "themes."+name)
		if err != nil {
			return err
		}
		for _, typeID := range sortedKeys(types) {
			m, err := attributes(types[typeID], "themes."+name+"."+typeID)
			if err != nil {
				return err
			}
			r.SetTheme(name, typeID, m)
		}
	}
	return nil
}

func table(v any, path string) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.CodeThemeLoad, "%s must be a table, got %T.", path, v)
	}
	return m, nil
}

// attributes converts one parsed table into an attribute map, checking every
// value encodes.
func attributes(v any, path string) (attr.Map, error) {
	t, err := table(v, path)
	if err != nil {
		return attr.Map{}, err
	}
	src := make(map[string]any, len(t))
	for name, value := range t {
		src[name] = normalize(value)
	}
	m := attr.FromMap(src)
	if err := m.Validate(); err != nil {
		return attr.Map{}, errors.Newf(errors.CodeThemeLoad, "Invalid attribute in %s.", path).Wrap(err)
	}
	return m, nil
}

// normalize turns parser output into values the attribute encoder accepts.
func normalize(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalize(item)
		}
		return out
	}
	return v
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
