// This file re-exports element and attribute utilities for the el package.
package el

import (
	"github.com/vango-dev/tagkit/pkg/attr"
	"github.com/vango-dev/tagkit/pkg/element"
)

func Define(id, tag string) ElementType {
	return element.Define(id, tag)
}
func New(t ElementType) (Element, error) {
	return element.New(t)
}
func Must(t ElementType) Element {
	return element.Must(t)
}
func NewContext(opts ...ContextOption) *Context {
	return element.NewContext(opts...)
}
func AttrList(attrs ...Attr) Attrs {
	return attr.New(attrs...)
}
func AttrMap(m map[string]any) Attrs {
	return attr.FromMap(m)
}
func Lazy(fn func() string) attr.Lazy {
	return attr.Lazy(fn)
}
