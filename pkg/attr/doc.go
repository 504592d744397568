// Package attr provides the ordered attribute map used by every tagkit
// renderer, and the encoder that turns it into an HTML attribute string.
//
// A Map is a value: Set, Merge and Unset return a modified copy and never
// touch the receiver, so maps can be shared between elements freely.
//
//	m := attr.New(attr.ID("main"), attr.Class("box"))
//	m = m.Set("data", attr.New(attr.A("role", "dialog")))
//	s, err := m.Encode()
//	// s == ` id="main" class="box" data-role="dialog"`
//
// # Values
//
// Permitted value kinds are booleans, strings, numbers, fmt.Stringer,
// deferred computations (func() string or Lazy, evaluated at encode time),
// string lists and nested maps (Map or map[string]any). A nil value always
// unsets the attribute. Anything else fails with an InvalidAttributeValue
// error when the map is encoded.
//
// # Booleans
//
// true renders the bare attribute name and false omits it. Attributes in the
// aria-* and data-* namespaces are enumerated rather than boolean, so their
// booleans render as "true" and "false".
package attr
