package el

import (
	"github.com/vango-dev/tagkit/pkg/attr"
	"github.com/vango-dev/tagkit/pkg/element"
)

// Type aliases for the element and attribute primitives used by the DSL.
type Element = element.Element
type ElementType = element.Type
type Context = element.Context
type ContextOption = element.ContextOption
type Attr = attr.Attr
type Attrs = attr.Map
