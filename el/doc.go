// Package el provides a dot-importable DSL for tagkit.
//
// It re-exports the element constructors from pkg/element and the attribute
// helpers from pkg/attr.
//
// Typical usage:
//
//	import . "github.com/vango-dev/tagkit/el"
//
//	ctx := NewContext()
//	out, err := Div().With(ID("main"), Class("box")).Content("Hello").Render(ctx)
//
// Attribute helpers whose names collide with element setters carry a suffix:
// TitleAttr, TypeAttr and ContentAttr.
package el
