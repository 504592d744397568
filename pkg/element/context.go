package element

import (
	"log/slog"
	"strings"

	"github.com/vango-dev/tagkit/pkg/attr"
	"github.com/vango-dev/tagkit/pkg/render"
	"github.com/vango-dev/tagkit/pkg/stack"
)

const doctype = "<!DOCTYPE html>"

// DefaultsProvider supplies default attributes per element type.
type DefaultsProvider interface {
	Defaults(typeID string) attr.Map
}

// ThemeProvider supplies themed attributes per theme and element type.
type ThemeProvider interface {
	Theme(name, typeID string) attr.Map
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithRenderer sets the renderer. It defaults to render.Default().
func WithRenderer(r *render.Renderer) ContextOption {
	return func(c *Context) {
		c.renderer = r
	}
}

// WithStack sets the begin/end stack. By default each Context owns a new one.
func WithStack(s *stack.Stack) ContextOption {
	return func(c *Context) {
		c.stack = s
	}
}

// WithDefaults sets the defaults provider.
func WithDefaults(p DefaultsProvider) ContextOption {
	return func(c *Context) {
		c.defaults = p
	}
}

// WithThemes sets the theme provider.
func WithThemes(p ThemeProvider) ContextOption {
	return func(c *Context) {
		c.themes = p
	}
}

// WithTheme sets the theme used by elements that do not select one.
func WithTheme(name string) ContextOption {
	return func(c *Context) {
		c.theme = name
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) {
		c.logger = l
	}
}

// Context renders elements. The renderer and providers are shared and
// read-only; the stack holds begin/end state and should be scoped to one
// document.
type Context struct {
	renderer *render.Renderer
	stack    *stack.Stack
	defaults DefaultsProvider
	themes   ThemeProvider
	theme    string
	logger   *slog.Logger
}

// NewContext creates a Context.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer == nil {
		c.renderer = render.Default()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.stack == nil {
		c.stack = stack.New(stack.WithRenderer(c.renderer), stack.WithLogger(c.logger))
	}
	return c
}

// Stack returns the context's begin/end stack.
func (c *Context) Stack() *stack.Stack { return c.stack }

// Renderer returns the context's renderer.
func (c *Context) Renderer() *render.Renderer { return c.renderer }

// Render renders e as a complete element, with its decorations and template
// applied.
func (c *Context) Render(e Element) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	for _, fn := range e.before {
		if !fn(e) {
			c.logger.Debug("render skipped by hook", "type", e.typ.ID)
			return "", nil
		}
	}

	attrs := c.resolve(e)
	body, err := c.body(e)
	if err != nil {
		return "", err
	}
	tag, err := c.renderer.Full(e.typ.Tag, body, attrs, false)
	if err != nil {
		return "", err
	}
	if e.typ.Doctype {
		tag = doctype + "\n" + tag
	}

	prefix, err := c.decorate(e.prefix)
	if err != nil {
		return "", err
	}
	suffix, err := c.decorate(e.suffix)
	if err != nil {
		return "", err
	}

	out := applyTemplate(e.template, prefix, tag, suffix)
	for _, fn := range e.after {
		out = fn(out)
	}
	return out, nil
}

// Begin opens e on the context's stack. Only block elements can be opened.
// The doctype and prefix of e are written before the opening tag. A failed
// Begin leaves the stack unchanged.
func (c *Context) Begin(e Element) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	prefix, err := c.decorate(e.prefix)
	if err != nil {
		return "", err
	}
	out, err := c.stack.Begin(c.classify(e.typ), c.resolve(e))
	if err != nil {
		return "", err
	}
	if prefix != "" {
		out = prefix + "\n" + out
	}
	if e.typ.Doctype {
		out = doctype + "\n" + out
	}
	return out, nil
}

// End closes the innermost open element, which must be of e's type. The
// suffix of e is written after the closing tag. A failed End leaves the
// stack unchanged.
func (c *Context) End(e Element) (string, error) {
	suffix, err := c.decorate(e.suffix)
	if err != nil {
		return "", err
	}
	out, err := c.stack.End(e.typ)
	if err != nil {
		return "", err
	}
	if suffix != "" {
		out += "\n" + suffix
	}
	return out, nil
}

// classify resolves a block kind through the context's catalog, so a type
// literal for an inline or void tag is refused as such.
func (c *Context) classify(t Type) Type {
	if t.Kind != render.KindBlock {
		return t
	}
	if _, kind, err := c.renderer.Kind(t.Tag); err == nil {
		t.Kind = kind
	}
	return t
}

// resolve merges provider attributes under the element's own.
func (c *Context) resolve(e Element) attr.Map {
	var m attr.Map
	if c.defaults != nil {
		m = m.Merge(c.defaults.Defaults(e.typ.ID))
	}
	name := e.theme
	if name == "" {
		name = c.theme
	}
	if c.themes != nil && name != "" {
		m = m.Merge(c.themes.Theme(name, e.typ.ID))
	}
	m = m.Merge(e.attrs)
	for _, k := range e.unset {
		m = m.Unset(k)
	}
	return m
}

// body assembles the element content followed by generated children.
func (c *Context) body(e Element) (string, error) {
	var parts []string
	if e.content != "" {
		parts = append(parts, e.content)
	}
	if e.caption != "" {
		s, err := c.renderer.Full("caption", e.caption, attr.Map{}, true)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(e.head) > 0 {
		row, err := c.row("th", e.head)
		if err != nil {
			return "", err
		}
		s, err := c.renderer.Full("thead", row, attr.Map{}, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(e.rows) > 0 {
		rows := make([]string, 0, len(e.rows))
		for _, cells := range e.rows {
			row, err := c.row("td", cells)
			if err != nil {
				return "", err
			}
			rows = append(rows, row)
		}
		s, err := c.renderer.Full("tbody", strings.Join(rows, "\n"), attr.Map{}, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	for _, item := range e.items {
		s, err := c.renderer.Full("li", item, attr.Map{}, true)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n"), nil
}

func (c *Context) row(cell string, cells []string) (string, error) {
	out := make([]string, 0, len(cells))
	for _, text := range cells {
		s, err := c.renderer.Full(cell, text, attr.Map{}, true)
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}
	return c.renderer.Full("tr", strings.Join(out, "\n"), attr.Map{}, false)
}

func (c *Context) decorate(d decoration) (string, error) {
	if d.tag == "" {
		return d.text, nil
	}
	return c.renderer.Full(d.tag, d.text, d.attrs, true)
}

// applyTemplate substitutes the tokens and drops lines left empty.
func applyTemplate(template, prefix, tag, suffix string) string {
	r := strings.NewReplacer("{prefix}", prefix, "{tag}", tag, "{suffix}", suffix)
	lines := strings.Split(template, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = r.Replace(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
