package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
)

// Kind is the rendering shape a tag belongs to.
type Kind uint8

const (
	KindBlock  Kind = iota // <div>, <section>: full rendering and begin/end
	KindInline             // <span>, <a>: one-call rendering only
	KindVoid               // <img>, <br>: no content, no closing tag
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindInline:
		return "inline"
	case KindVoid:
		return "void"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Pairable reports whether tags of this kind can be opened and closed
// separately.
func (k Kind) Pairable() bool {
	switch k {
	case KindBlock:
		return true
	case KindInline, KindVoid:
		return false
	default:
		return false
	}
}

// Catalog classifies tag names.
type Catalog interface {
	Kind(tag string) Kind
}

// KindTable is a Catalog backed by a map. Tags missing from the table are
// block elements.
type KindTable map[string]Kind

// Kind implements Catalog.
func (t KindTable) Kind(tag string) Kind {
	if k, ok := t[tag]; ok {
		return k
	}
	return KindBlock
}

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
}

// inlineElements are phrasing elements that must be rendered in one call.
var inlineElements = []string{
	"a", "abbr", "b", "bdi", "bdo", "button", "cite", "code", "data",
	"dfn", "em", "i", "kbd", "label", "mark", "output", "q", "rb", "rp",
	"rt", "rtc", "ruby", "s", "samp", "select", "small", "span", "strong",
	"sub", "sup", "textarea", "time", "u", "var",
}

// DefaultCatalog returns a fresh copy of the built-in classification.
func DefaultCatalog() KindTable {
	t := make(KindTable, len(voidElements)+len(inlineElements))
	for _, tag := range inlineElements {
		t[tag] = KindInline
	}
	for _, tag := range voidElements {
		t[tag] = KindVoid
	}
	return t
}

// defaultCatalog is shared by renderers created without a catalog.
// It is never modified.
var defaultCatalog = DefaultCatalog()

// IsKnown reports whether tag is a name in the HTML atom table.
func IsKnown(tag string) bool {
	return atom.Lookup([]byte(strings.ToLower(tag))) != 0
}

// CanonicalName validates tag and returns the name to render. Standard HTML
// element names are lower-cased; other names are returned unchanged.
func CanonicalName(tag string) (string, error) {
	if tag == "" {
		return "", newInvalidTag(tag, "Tag name cannot be empty.")
	}
	if !validTagName(tag) {
		return "", newInvalidTag(tag, fmt.Sprintf("Tag name %q is invalid.", tag))
	}
	if a := atom.Lookup([]byte(strings.ToLower(tag))); a != 0 {
		return a.String(), nil
	}
	return tag, nil
}

// validTagName reports whether tag starts with an ASCII letter and contains
// only letters, digits and the separators custom elements use.
func validTagName(tag string) bool {
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_' || c == ':' || c == '.'):
		default:
			return false
		}
	}
	return true
}
