// This file re-exports element constructors for the el package.
package el

import "github.com/vango-dev/tagkit/pkg/element"

func Div() Element {
	return element.Div()
}
func Section() Element {
	return element.Section()
}
func Article() Element {
	return element.Article()
}
func Header() Element {
	return element.Header()
}
func Footer() Element {
	return element.Footer()
}
func Main() Element {
	return element.Main()
}
func Nav() Element {
	return element.Nav()
}
func Aside() Element {
	return element.Aside()
}
func P() Element {
	return element.P()
}
func H1() Element {
	return element.H1()
}
func H2() Element {
	return element.H2()
}
func H3() Element {
	return element.H3()
}
func H4() Element {
	return element.H4()
}
func H5() Element {
	return element.H5()
}
func H6() Element {
	return element.H6()
}
func Form() Element {
	return element.Form()
}
func Span() Element {
	return element.Span()
}
func A() Element {
	return element.A()
}
func Strong() Element {
	return element.Strong()
}
func Em() Element {
	return element.Em()
}
func Code() Element {
	return element.Code()
}
func Small() Element {
	return element.Small()
}
func Label() Element {
	return element.Label()
}
func Button() Element {
	return element.Button()
}
func Img() Element {
	return element.Img()
}
func Input() Element {
	return element.Input()
}
func Br() Element {
	return element.Br()
}
func Hr() Element {
	return element.Hr()
}
func Meta() Element {
	return element.Meta()
}
func Link() Element {
	return element.Link()
}
func Ul() Element {
	return element.Ul()
}
func Ol() Element {
	return element.Ol()
}
func Li() Element {
	return element.Li()
}
func Table() Element {
	return element.Table()
}
func Thead() Element {
	return element.Thead()
}
func Tbody() Element {
	return element.Tbody()
}
func Tr() Element {
	return element.Tr()
}
func Td() Element {
	return element.Td()
}
func Th() Element {
	return element.Th()
}
func Html() Element {
	return element.Html()
}
func Head() Element {
	return element.Head()
}
func Body() Element {
	return element.Body()
}
