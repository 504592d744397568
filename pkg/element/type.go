package element

import (
	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/render"
)

// Type identifies an element type. ID is the identity used by the begin/end
// stack and by defaults and theme lookups, so types that share a tag name
// are still told apart.
type Type struct {
	ID  string
	Tag string

	// Kind marks the tag inline or void. The zero value, KindBlock, defers
	// to the catalog, so a literal Type for <span> is still inline.
	Kind render.Kind

	// Doctype renders <!DOCTYPE html> before the element.
	Doctype bool
}

// Define creates a Type for tag, classified by the built-in catalog. An
// invalid tag is kept as-is and reported when an element is created.
func Define(id, tag string) Type {
	name, kind, err := render.Default().Kind(tag)
	if err != nil {
		return Type{ID: id, Tag: tag}
	}
	return Type{ID: id, Tag: name, Kind: kind}
}

// TypeID implements stack.Descriptor.
func (t Type) TypeID() string { return t.ID }

// TagName implements stack.Descriptor.
func (t Type) TagName() string { return t.Tag }

// TagKind implements stack.Descriptor.
func (t Type) TagKind() render.Kind { return t.Kind }

// validate reports whether elements can be created from t.
func (t Type) validate() error {
	if t.Tag == "" {
		id := t.ID
		if id == "" {
			id = "element type"
		}
		return errors.Newf(errors.CodeAbstractInstantiation,
			"Cannot create an element from %s: no tag is bound.", id).
			WithSuggestion("Create the type with Define(id, tag).")
	}
	if _, err := render.CanonicalName(t.Tag); err != nil {
		return err
	}
	return nil
}
