package render

import (
	"log/slog"
	"strings"

	"github.com/vango-dev/tagkit/pkg/attr"
)

// Shape names the kind of string a render call produced.
type Shape string

const (
	ShapeVoid  Shape = "void"
	ShapeOpen  Shape = "open"
	ShapeClose Shape = "close"
	ShapeFull  Shape = "full"
)

// Observer is notified after every render call. err is nil on success.
type Observer interface {
	ObserveRender(shape Shape, tag string, err error)
}

// RendererConfig configures the tag renderer.
type RendererConfig struct {
	// Catalog classifies tag names. Defaults to DefaultCatalog().
	Catalog Catalog

	// Logger receives debug output for unknown tag names.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Observer, if set, is notified after every render call.
	Observer Observer
}

// Renderer renders tags. It holds no mutable state and is safe for
// concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Catalog == nil {
		config.Catalog = defaultCatalog
	}
	return &Renderer{config: config}
}

// Kind validates tag and returns its canonical name and kind.
func (r *Renderer) Kind(tag string) (string, Kind, error) {
	name, err := CanonicalName(tag)
	if err != nil {
		return "", KindBlock, err
	}
	return name, r.config.Catalog.Kind(name), nil
}

// Void renders <tag attrs> with no content and no closing tag.
func (r *Renderer) Void(tag string, attrs attr.Map) (out string, err error) {
	defer r.observe(ShapeVoid, tag, &err)

	name, _, err := r.Kind(tag)
	if err != nil {
		return "", err
	}
	return r.openTag(name, attrs)
}

// Open renders <tag attrs> for a block element whose closing tag follows
// later. Inline and void elements cannot be opened.
func (r *Renderer) Open(tag string, attrs attr.Map) (out string, err error) {
	defer r.observe(ShapeOpen, tag, &err)

	name, err := r.pairable(tag)
	if err != nil {
		return "", err
	}
	return r.openTag(name, attrs)
}

// Close renders </tag>. Same restrictions as Open.
func (r *Renderer) Close(tag string) (out string, err error) {
	defer r.observe(ShapeClose, tag, &err)

	name, err := r.pairable(tag)
	if err != nil {
		return "", err
	}
	return "</" + name + ">", nil
}

// Full renders a complete element. Void elements ignore content. Inline
// elements are written on one line; block elements put non-empty content on
// its own line between the opening and closing tags. When encode is true the
// content is escaped first.
func (r *Renderer) Full(tag, content string, attrs attr.Map, encode bool) (out string, err error) {
	defer r.observe(ShapeFull, tag, &err)

	name, kind, err := r.Kind(tag)
	if err != nil {
		return "", err
	}
	open, err := r.openTag(name, attrs)
	if err != nil {
		return "", err
	}

	if encode {
		content = EscapeText(content)
	}
	closing := "</" + name + ">"

	var b strings.Builder
	switch kind {
	case KindVoid:
		return open, nil
	case KindInline:
		b.Grow(len(open) + len(content) + len(closing))
		b.WriteString(open)
		b.WriteString(content)
		b.WriteString(closing)
	case KindBlock:
		b.Grow(len(open) + len(content) + len(closing) + 2)
		b.WriteString(open)
		if content != "" {
			b.WriteByte('\n')
			b.WriteString(content)
			b.WriteByte('\n')
		}
		b.WriteString(closing)
	}
	return b.String(), nil
}

// pairable validates tag for Open/Close.
func (r *Renderer) pairable(tag string) (string, error) {
	name, kind, err := r.Kind(tag)
	if err != nil {
		return "", err
	}
	if !kind.Pairable() {
		return "", newNotPairable(name, kind)
	}
	return name, nil
}

// openTag renders "<name attrs>".
func (r *Renderer) openTag(name string, attrs attr.Map) (string, error) {
	encoded, err := attrs.Encode()
	if err != nil {
		return "", err
	}
	if !IsKnown(name) {
		r.logger().Debug("rendering unknown tag as custom element", "tag", name)
	}
	return "<" + name + encoded + ">", nil
}

func (r *Renderer) logger() *slog.Logger {
	if r.config.Logger != nil {
		return r.config.Logger
	}
	return slog.Default()
}

func (r *Renderer) observe(shape Shape, tag string, errp *error) {
	if r.config.Observer != nil {
		r.config.Observer.ObserveRender(shape, tag, *errp)
	}
}
