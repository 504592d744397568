package render

import "github.com/vango-dev/tagkit/pkg/attr"

// std renders with the built-in catalog. It has no mutable state.
var std = NewRenderer(RendererConfig{})

// Default returns the renderer used by the package-level functions.
func Default() *Renderer {
	return std
}

// Create renders a complete element. See Renderer.Full.
func Create(tag, content string, attrs attr.Map, encode bool) (string, error) {
	return std.Full(tag, content, attrs, encode)
}

// Begin renders the opening tag of a block element. See Renderer.Open.
func Begin(tag string, attrs attr.Map) (string, error) {
	return std.Open(tag, attrs)
}

// End renders the closing tag of a block element. See Renderer.Close.
func End(tag string) (string, error) {
	return std.Close(tag)
}

// Void renders a void element. See Renderer.Void.
func Void(tag string, attrs attr.Map) (string, error) {
	return std.Void(tag, attrs)
}
