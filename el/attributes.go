// This file re-exports attribute helpers for the el package.
package el

import "github.com/vango-dev/tagkit/pkg/attr"

func AttrOf(key string, value any) Attr {
	return attr.A(key, value)
}
func ID(id string) Attr {
	return attr.ID(id)
}
func Class(classes ...string) Attr {
	return attr.Class(classes...)
}
func Style(style any) Attr {
	return attr.Style(style)
}
func TitleAttr(title string) Attr {
	return attr.Title(title)
}
func Lang(lang string) Attr {
	return attr.Lang(lang)
}
func Dir(dir string) Attr {
	return attr.Dir(dir)
}
func Data(key string, value any) Attr {
	return attr.Data(key, value)
}
func Role(role string) Attr {
	return attr.Role(role)
}
func Aria(key string, value any) Attr {
	return attr.Aria(key, value)
}
func TabIndex(index int) Attr {
	return attr.TabIndex(index)
}
func Hidden() Attr {
	return attr.Hidden()
}
func Href(url string) Attr {
	return attr.Href(url)
}
func Target(target string) Attr {
	return attr.Target(target)
}
func Rel(rel string) Attr {
	return attr.Rel(rel)
}
func Src(url string) Attr {
	return attr.Src(url)
}
func Alt(text string) Attr {
	return attr.Alt(text)
}
func Width(w int) Attr {
	return attr.Width(w)
}
func Height(h int) Attr {
	return attr.Height(h)
}
func Name(name string) Attr {
	return attr.Name(name)
}
func Value(value any) Attr {
	return attr.Value(value)
}
func TypeAttr(t string) Attr {
	return attr.Type(t)
}
func Placeholder(text string) Attr {
	return attr.Placeholder(text)
}
func For(id string) Attr {
	return attr.For(id)
}
func Disabled() Attr {
	return attr.Disabled()
}
func Required() Attr {
	return attr.Required()
}
func Checked() Attr {
	return attr.Checked()
}
func Charset(charset string) Attr {
	return attr.Charset(charset)
}
func ContentAttr(content string) Attr {
	return attr.Content(content)
}
func Colspan(n int) Attr {
	return attr.Colspan(n)
}
func Scope(scope string) Attr {
	return attr.Scope(scope)
}
func If(condition bool, a Attr) Attr {
	return attr.If(condition, a)
}
func Classes(classes ...any) Attr {
	return attr.Classes(classes...)
}
