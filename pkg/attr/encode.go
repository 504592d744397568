package attr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/tagkit/internal/errors"
)

// valueEscaper escapes text for safe inclusion in a double-quoted attribute.
// Whitespace control characters are escaped so values survive reformatting.
var valueEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// EscapeValue escapes an attribute value.
func EscapeValue(s string) string {
	return valueEscaper.Replace(s)
}

// Encode renders the map as an attribute string. Every attribute is preceded
// by a single space, so the result can be appended directly after a tag name.
func (m Map) Encode() (string, error) {
	if len(m.keys) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, k := range m.keys {
		if err := encodeAttr(&b, k, m.values[k]); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Validate checks every value without producing output. Deferred values are
// not evaluated.
func (m Map) Validate() error {
	for _, k := range m.keys {
		if err := validateAttr(k, m.values[k]); err != nil {
			return err
		}
	}
	return nil
}

func encodeAttr(b *strings.Builder, name string, value any) error {
	if !validName(name) {
		return errors.Newf(errors.CodeInvalidAttributeValue, "Attribute name %q is invalid.", name)
	}

	switch name {
	case "class":
		if classes, ok := classValue(value); ok {
			if len(classes) > 0 {
				writePair(b, name, strings.Join(classes, " "))
			}
			return nil
		}
	case "style":
		if style, ok, err := styleValue(value); ok || err != nil {
			if err != nil {
				return err
			}
			if style != "" {
				writePair(b, name, style)
			}
			return nil
		}
	}

	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		switch {
		case enumerated(name):
			writePair(b, name, strconv.FormatBool(v))
		case v:
			b.WriteByte(' ')
			b.WriteString(name)
		}
		return nil
	case Lazy:
		writePair(b, name, v())
		return nil
	case func() string:
		writePair(b, name, v())
		return nil
	case []string:
		writePair(b, name, strings.Join(v, " "))
		return nil
	case Map:
		for _, k := range v.keys {
			if err := encodeAttr(b, name+"-"+k, v.values[k]); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		return encodeAttr(b, name, FromMap(v))
	case map[string]string:
		return encodeAttr(b, name, fromStringMap(v))
	case map[string]bool:
		return encodeAttr(b, name, fromBoolMap(v))
	}

	s, ok := scalarString(value)
	if !ok {
		return invalidValue(name, value)
	}
	writePair(b, name, s)
	return nil
}

func validateAttr(name string, value any) error {
	if !validName(name) {
		return errors.Newf(errors.CodeInvalidAttributeValue, "Attribute name %q is invalid.", name)
	}
	switch v := value.(type) {
	case nil, bool, Lazy, func() string, []string, map[string]string, map[string]bool:
		return nil
	case Map:
		for _, k := range v.keys {
			if err := validateAttr(name+"-"+k, v.values[k]); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		return validateAttr(name, FromMap(v))
	}
	if _, ok := scalarString(value); !ok {
		return invalidValue(name, value)
	}
	return nil
}

func invalidValue(name string, value any) error {
	return errors.Newf(errors.CodeInvalidAttributeValue,
		"Attribute %q has unsupported value type %T.", name, value)
}

func writePair(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(EscapeValue(value))
	b.WriteByte('"')
}

// classValue resolves class-like values. Scalars fall through to the
// generic encoder.
func classValue(value any) ([]string, bool) {
	switch value.(type) {
	case string, []string, map[string]bool, Map, map[string]any:
		return classList(value), true
	default:
		return nil, false
	}
}

// styleValue renders nested style maps as "prop: value;" declarations.
func styleValue(value any) (string, bool, error) {
	var m Map
	switch v := value.(type) {
	case Map:
		m = v
	case map[string]any:
		m = FromMap(v)
	case map[string]string:
		m = fromStringMap(v)
	default:
		return "", false, nil
	}

	decls := make([]string, 0, m.Len())
	for _, k := range m.keys {
		v := m.values[k]
		if lazy, ok := v.(Lazy); ok {
			v = lazy()
		}
		s, ok := scalarString(v)
		if !ok {
			return "", true, invalidValue("style-"+k, v)
		}
		if s == "" {
			continue
		}
		decls = append(decls, k+": "+s+";")
	}
	return strings.Join(decls, " "), true, nil
}

// scalarString converts a scalar attribute value to a string.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func fromStringMap(src map[string]string) Map {
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

func fromBoolMap(src map[string]bool) Map {
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

// enumerated reports whether booleans under name are rendered as text.
func enumerated(name string) bool {
	return strings.HasPrefix(name, "aria-") || strings.HasPrefix(name, "data-")
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<':
			return false
		}
	}
	return true
}
