// Package element provides immutable, fluent HTML element values.
//
// An Element is a value: every setter returns a modified copy and leaves the
// receiver untouched, so a partially configured element can be reused as a
// template for others.
//
//	card := element.Div().Class("card")
//	a := card.ID("first").Content("<escaped>")
//	b := card.ID("second").HTML("<b>raw</b>")
//
// Elements are rendered through an explicit Context holding the renderer, the
// begin/end stack and the optional defaults and theme providers:
//
//	ctx := element.NewContext(element.WithThemes(registry), element.WithTheme("dark"))
//	html, err := a.Render(ctx)
//
// # Templates
//
// The rendered tag is placed into a template with the tokens {prefix}, {tag}
// and {suffix}. The default template is "{prefix}\n{tag}\n{suffix}"; template
// lines that end up empty are dropped.
//
// # Begin and end
//
// Block elements can be opened and closed separately, with any output in
// between. The Context's stack pairs the calls by element type:
//
//	open, _ := element.Div().Class("page").Begin(ctx)
//	// ...
//	closing, _ := element.Div().End(ctx)
package element
