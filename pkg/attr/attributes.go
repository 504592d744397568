package attr

import "strings"

// A creates an Attr with the given key and value.
func A(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return A("id", id) }

// Class sets the class attribute from one or more class names.
func Class(classes ...string) Attr { return A("class", classes) }

// Style sets the style attribute. Use a Map for per-property declarations.
func Style(style any) Attr { return A("style", style) }

// Title sets the title attribute.
func Title(title string) Attr { return A("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return A("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return A("dir", dir) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key string, value any) Attr { return A("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return A("role", role) }

// Aria creates an aria-* attribute.
// Example: Aria("label", "Close") → aria-label="Close"
func Aria(key string, value any) Attr { return A("aria-"+key, value) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return A("tabindex", index) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return A("hidden", true) }

// Link and media attributes

// Href sets the href attribute.
func Href(url string) Attr { return A("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return A("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return A("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return A("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return A("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return A("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return A("height", h) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return A("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return A("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return A("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return A("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) Attr { return A("for", id) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return A("disabled", true) }

// Required sets the required attribute.
func Required() Attr { return A("required", true) }

// Checked sets the checked attribute.
func Checked() Attr { return A("checked", true) }

// Meta attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return A("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return A("content", content) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return A("colspan", n) }

// Scope sets the scope attribute.
func Scope(scope string) Attr { return A("scope", scope) }

// Conditional attributes

// If returns a when condition holds and an empty attribute otherwise.
func If(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges class values given as string, []string or map[string]bool.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		result = append(result, classList(c)...)
	}
	return A("class", strings.Join(result, " "))
}
