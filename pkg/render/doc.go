// Package render turns a tag name, optional content and an attribute map into
// HTML strings.
//
// Four shapes cover every legal way of writing an element:
//
//   - Void renders a tag with no content and no closing tag: <img src="a.png">
//   - Open and Close render the two halves of a block element separately, so
//     arbitrary output can be written in between
//   - Full renders a complete element in one call
//
// Every tag name is validated and, when it is a known HTML element,
// canonicalised to lower case. Unknown names (custom elements) are kept as
// written and treated as block elements.
//
// # Basic Usage
//
//	html, err := render.Create("div", "Hi", attr.New(attr.Class("c")), false)
//	// html == "<div class=\"c\">\nHi\n</div>"
//
// # Tag kinds
//
// A Catalog classifies tags as block, inline or void. Only block elements may
// be opened and closed separately; inline and void elements must be rendered
// in one call. DefaultCatalog returns the built-in classification, which can
// be copied and extended.
//
// # Security
//
// Attribute values are always escaped. Content is inserted verbatim unless
// Full is asked to encode it; callers are responsible for raw content.
package render
