// Package tagkit renders HTML tags from Go.
//
// This is the recommended import for one-off rendering:
//
//	import "github.com/vango-dev/tagkit"
//
// Usage:
//
//	html, err := tagkit.CreateTag("div", "Hello", map[string]any{"class": "box"}, true)
//	open, err := tagkit.BeginTag("section", nil)
//	closing, err := tagkit.EndTag("section")
//
// CreateTag, BeginTag and EndTag are stateless. To pair begin and end calls
// by element type, use pkg/element with a Context, or pkg/stack directly.
package tagkit

import (
	"github.com/vango-dev/tagkit/pkg/attr"
	"github.com/vango-dev/tagkit/pkg/render"
)

// Version is the library version.
const Version = "0.1.0"

// =============================================================================
// Rendering
// =============================================================================

// CreateTag renders a complete element. Void elements ignore content, inline
// elements render on one line and block elements put non-empty content on
// its own line. Content is escaped when encode is true. Attribute keys are
// rendered in sorted order; use render.Create with an attr.Map to control
// the order.
func CreateTag(tag, content string, attributes map[string]any, encode bool) (string, error) {
	return render.Create(tag, content, attr.FromMap(attributes), encode)
}

// BeginTag renders the opening tag of a block element. Inline and void
// elements are rejected with ErrInvalidTag.
func BeginTag(tag string, attributes map[string]any) (string, error) {
	return render.Begin(tag, attr.FromMap(attributes))
}

// EndTag renders the closing tag of a block element.
func EndTag(tag string) (string, error) {
	return render.End(tag)
}

// =============================================================================
// Errors
// =============================================================================

// Error kinds, for use with errors.Is.
var (
	ErrInvalidTag             = render.ErrInvalidTag
	ErrTagDoesNotSupportBegin = render.ErrTagDoesNotSupportBegin
	ErrUnexpectedEndCall      = render.ErrUnexpectedEndCall
	ErrTagClassMismatch       = render.ErrTagClassMismatch
	ErrInvalidAttributeValue  = render.ErrInvalidAttributeValue
	ErrAbstractInstantiation  = render.ErrAbstractInstantiation
)
