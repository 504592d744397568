package element

import (
	"sort"

	"github.com/vango-dev/tagkit/pkg/attr"
	"github.com/vango-dev/tagkit/pkg/render"
)

// DefaultTemplate places the prefix, the tag and the suffix on their own lines.
const DefaultTemplate = "{prefix}\n{tag}\n{suffix}"

// decoration is text rendered before or after the element, optionally
// wrapped in its own tag.
type decoration struct {
	text  string
	tag   string
	attrs attr.Map
}

// Element is an immutable HTML element description.
type Element struct {
	typ Type

	attrs attr.Map
	unset []string

	content string
	items   []string
	caption string
	head    []string
	rows    [][]string

	prefix   decoration
	suffix   decoration
	template string
	theme    string

	before []func(Element) bool
	after  []func(string) string

	// err is the first failure from a converting setter, reported on render.
	err error
}

// New creates an element of type t. It fails when t has no tag bound.
func New(t Type) (Element, error) {
	if err := t.validate(); err != nil {
		return Element{}, err
	}
	if t.ID == "" {
		t.ID = t.Tag
	}
	if t.Kind == render.KindBlock {
		_, t.Kind, _ = render.Default().Kind(t.Tag)
	}
	return Element{typ: t, template: DefaultTemplate}, nil
}

// Must is like New but panics on error. Use it for package-level element
// definitions.
func Must(t Type) Element {
	e, err := New(t)
	if err != nil {
		panic(err)
	}
	return e
}

// Type returns the element type.
func (e Element) Type() Type { return e.typ }

// Attrs returns the element's own attributes, without provider defaults.
func (e Element) Attrs() attr.Map { return e.attrs }

// GetContent returns the accumulated content in call order.
func (e Element) GetContent() string { return e.content }

// Err returns the first error recorded by a converting setter.
func (e Element) Err() error { return e.err }

// Attribute setters

// Attr sets a single attribute. A nil value unsets it, including any value a
// defaults or theme provider would supply.
func (e Element) Attr(name string, value any) Element {
	if value == nil {
		return e.Unset(name)
	}
	e.attrs = e.attrs.Set(name, value)
	e.unset = without(e.unset, name)
	return e
}

// Attributes merges m into the element's attributes. Classes accumulate.
func (e Element) Attributes(m attr.Map) Element {
	e.attrs = e.attrs.Merge(m)
	for _, k := range m.Keys() {
		e.unset = without(e.unset, k)
	}
	return e
}

// With applies attributes in order.
func (e Element) With(attrs ...attr.Attr) Element {
	return e.Attributes(attr.New(attrs...))
}

// Unset removes an attribute and suppresses provider values for it.
func (e Element) Unset(name string) Element {
	e.attrs = e.attrs.Unset(name)
	if !contains(e.unset, name) {
		e.unset = extend(e.unset, name)
	}
	return e
}

// Class adds classes.
func (e Element) Class(classes ...string) Element {
	return e.Attributes(attr.New(attr.Class(classes...)))
}

// ID sets the id attribute.
func (e Element) ID(id string) Element { return e.Attr("id", id) }

// Style sets the style attribute from a string or a map of declarations.
func (e Element) Style(style any) Element { return e.Attr("style", style) }

// Title sets the title attribute.
func (e Element) Title(title string) Element { return e.Attr("title", title) }

// Lang sets the lang attribute.
func (e Element) Lang(lang string) Element { return e.Attr("lang", lang) }

// Data sets data-* attributes from m.
func (e Element) Data(m map[string]any) Element {
	return e.prefixed("data-", m)
}

// Aria sets aria-* attributes from m.
func (e Element) Aria(m map[string]any) Element {
	return e.prefixed("aria-", m)
}

func (e Element) prefixed(prefix string, m map[string]any) Element {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e = e.Attr(prefix+k, m[k])
	}
	return e
}

// Content setters

// Content appends escaped text.
func (e Element) Content(text ...string) Element {
	for _, t := range text {
		e.content += render.EscapeText(t)
	}
	return e
}

// HTML appends raw markup. The caller is responsible for its safety.
func (e Element) HTML(html ...string) Element {
	for _, h := range html {
		e.content += h
	}
	return e
}

// Items appends list items, rendered as escaped <li> children.
func (e Element) Items(items ...string) Element {
	e.items = extend(e.items, items...)
	return e
}

// Caption sets a table caption.
func (e Element) Caption(text string) Element {
	e.caption = text
	return e
}

// Head sets table header cells.
func (e Element) Head(cells ...string) Element {
	e.head = extend(nil, cells...)
	return e
}

// Rows appends table body rows.
func (e Element) Rows(rows ...[]string) Element {
	e.rows = extend(e.rows, rows...)
	return e
}

// Decoration setters

// Prefix sets raw markup rendered before the element.
func (e Element) Prefix(text string) Element {
	e.prefix = decoration{text: text}
	return e
}

// PrefixTag sets the prefix to content wrapped in its own tag. The content is
// escaped.
func (e Element) PrefixTag(tag, content string, attrs ...attr.Attr) Element {
	e.prefix = decoration{text: content, tag: tag, attrs: attr.New(attrs...)}
	return e
}

// Suffix sets raw markup rendered after the element.
func (e Element) Suffix(text string) Element {
	e.suffix = decoration{text: text}
	return e
}

// SuffixTag sets the suffix to content wrapped in its own tag. The content is
// escaped.
func (e Element) SuffixTag(tag, content string, attrs ...attr.Attr) Element {
	e.suffix = decoration{text: content, tag: tag, attrs: attr.New(attrs...)}
	return e
}

// Template sets the layout template. See DefaultTemplate.
func (e Element) Template(template string) Element {
	e.template = template
	return e
}

// Theme selects a theme by name, overriding the context's default theme.
func (e Element) Theme(name string) Element {
	e.theme = name
	return e
}

// Lifecycle

// BeforeRun adds a hook called before rendering. Returning false renders an
// empty string.
func (e Element) BeforeRun(fn func(Element) bool) Element {
	e.before = extend(e.before, fn)
	return e
}

// AfterRun adds a hook that transforms the rendered output.
func (e Element) AfterRun(fn func(string) string) Element {
	e.after = extend(e.after, fn)
	return e
}

// Rendering shortcuts

// Render renders the element with ctx.
func (e Element) Render(ctx *Context) (string, error) { return ctx.Render(e) }

// Begin opens the element on ctx's stack.
func (e Element) Begin(ctx *Context) (string, error) { return ctx.Begin(e) }

// End closes the innermost element on ctx's stack, which must be of e's type.
func (e Element) End(ctx *Context) (string, error) { return ctx.End(e) }

// extend appends to a copy of s so that element copies never share backing
// arrays.
func extend[T any](s []T, add ...T) []T {
	out := make([]T, len(s), len(s)+len(add))
	copy(out, s)
	return append(out, add...)
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func without(s []string, v string) []string {
	if !contains(s, v) {
		return s
	}
	out := make([]string, 0, len(s)-1)
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
