package element

import "github.com/vango-dev/tagkit/pkg/render"

// Built-in element types. Their IDs are the tag names.
var (
	DivType     = Define("div", "div")
	SectionType = Define("section", "section")
	ArticleType = Define("article", "article")
	HeaderType  = Define("header", "header")
	FooterType  = Define("footer", "footer")
	MainType    = Define("main", "main")
	NavType     = Define("nav", "nav")
	AsideType   = Define("aside", "aside")
	PType       = Define("p", "p")
	H1Type      = Define("h1", "h1")
	H2Type      = Define("h2", "h2")
	H3Type      = Define("h3", "h3")
	H4Type      = Define("h4", "h4")
	H5Type      = Define("h5", "h5")
	H6Type      = Define("h6", "h6")
	FormType    = Define("form", "form")
	SpanType    = Define("span", "span")
	AType       = Define("a", "a")
	StrongType  = Define("strong", "strong")
	EmType      = Define("em", "em")
	CodeType    = Define("code", "code")
	SmallType   = Define("small", "small")
	LabelType   = Define("label", "label")
	ButtonType  = Define("button", "button")
	ImgType     = Define("img", "img")
	InputType   = Define("input", "input")
	BrType      = Define("br", "br")
	HrType      = Define("hr", "hr")
	MetaType    = Define("meta", "meta")
	LinkType    = Define("link", "link")
	UlType      = Define("ul", "ul")
	OlType      = Define("ol", "ol")
	LiType      = Define("li", "li")
	TableType   = Define("table", "table")
	TheadType   = Define("thead", "thead")
	TbodyType   = Define("tbody", "tbody")
	TrType      = Define("tr", "tr")
	TdType      = Define("td", "td")
	ThType      = Define("th", "th")
	HtmlType    = Type{ID: "html", Tag: "html", Kind: render.KindBlock, Doctype: true}
	HeadType    = Define("head", "head")
	BodyType    = Define("body", "body")
)

// Sectioning and text blocks

// Div returns an empty <div> element.
func Div() Element { return Must(DivType) }

// Section returns an empty <section> element.
func Section() Element { return Must(SectionType) }

// Article returns an empty <article> element.
func Article() Element { return Must(ArticleType) }

// Header returns an empty <header> element.
func Header() Element { return Must(HeaderType) }

// Footer returns an empty <footer> element.
func Footer() Element { return Must(FooterType) }

// Main returns an empty <main> element.
func Main() Element { return Must(MainType) }

// Nav returns an empty <nav> element.
func Nav() Element { return Must(NavType) }

// Aside returns an empty <aside> element.
func Aside() Element { return Must(AsideType) }

// P returns an empty <p> element.
func P() Element { return Must(PType) }

// H1 returns an empty <h1> element.
func H1() Element { return Must(H1Type) }

// H2 returns an empty <h2> element.
func H2() Element { return Must(H2Type) }

// H3 returns an empty <h3> element.
func H3() Element { return Must(H3Type) }

// H4 returns an empty <h4> element.
func H4() Element { return Must(H4Type) }

// H5 returns an empty <h5> element.
func H5() Element { return Must(H5Type) }

// H6 returns an empty <h6> element.
func H6() Element { return Must(H6Type) }

// Form returns an empty <form> element.
func Form() Element { return Must(FormType) }

// Inline elements

// Span returns an empty <span> element.
func Span() Element { return Must(SpanType) }

// A returns an empty <a> element.
func A() Element { return Must(AType) }

// Strong returns an empty <strong> element.
func Strong() Element { return Must(StrongType) }

// Em returns an empty <em> element.
func Em() Element { return Must(EmType) }

// Code returns an empty <code> element.
func Code() Element { return Must(CodeType) }

// Small returns an empty <small> element.
func Small() Element { return Must(SmallType) }

// Label returns an empty <label> element.
func Label() Element { return Must(LabelType) }

// Button returns an empty <button> element.
func Button() Element { return Must(ButtonType) }

// Void elements

// Img returns an empty <img> element.
func Img() Element { return Must(ImgType) }

// Input returns an empty <input> element.
func Input() Element { return Must(InputType) }

// Br returns an empty <br> element.
func Br() Element { return Must(BrType) }

// Hr returns an empty <hr> element.
func Hr() Element { return Must(HrType) }

// Meta returns an empty <meta> element.
func Meta() Element { return Must(MetaType) }

// Link returns an empty <link> element.
func Link() Element { return Must(LinkType) }

// Lists and tables

// Ul returns an empty <ul> element.
func Ul() Element { return Must(UlType) }

// Ol returns an empty <ol> element.
func Ol() Element { return Must(OlType) }

// Li returns an empty <li> element.
func Li() Element { return Must(LiType) }

// Table returns an empty <table> element.
func Table() Element { return Must(TableType) }

// Thead returns an empty <thead> element.
func Thead() Element { return Must(TheadType) }

// Tbody returns an empty <tbody> element.
func Tbody() Element { return Must(TbodyType) }

// Tr returns an empty <tr> element.
func Tr() Element { return Must(TrType) }

// Td returns an empty <td> element.
func Td() Element { return Must(TdType) }

// Th returns an empty <th> element.
func Th() Element { return Must(ThType) }

// Document

// Html returns an empty <html> element rendered with a doctype.
func Html() Element { return Must(HtmlType) }

// Head returns an empty <head> element.
func Head() Element { return Must(HeadType) }

// Body returns an empty <body> element.
func Body() Element { return Must(BodyType) }
