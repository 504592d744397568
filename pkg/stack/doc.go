// Package stack pairs begin and end calls for block elements.
//
// A Stack records every element opened with Begin until the matching End.
// Open sessions form a single LIFO: End must close the innermost open element,
// and closing anything else is an error naming both element types. The same
// element type may be opened again while already open; each Begin needs its
// own End.
//
// Stacks are explicit values. Create one per render pass (or per request) and
// pass it to every call site that opens or closes elements:
//
//	st := stack.New()
//	open, _ := st.Begin(page, attr.Map{})
//	// ... write arbitrary content ...
//	closing, _ := st.End(page)
//
// A Stack is safe for concurrent use, but interleaving calls from unrelated
// goroutines on one Stack makes the pairing meaningless.
package stack
