package element

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/vango-dev/tagkit/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		code string
	}{
		{name: "no tag", typ: Type{ID: "Widget"}, code: errors.CodeAbstractInstantiation},
		{name: "zero type", typ: Type{}, code: errors.CodeAbstractInstantiation},
		{name: "invalid tag", typ: Type{ID: "Bad", Tag: "1div"}, code: errors.CodeInvalidTag},
		{name: "valid", typ: Define("Card", "div")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.typ)
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("New() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestNewDefaultsID(t *testing.T) {
	e, err := New(Type{Tag: "section"})
	if err != nil {
		t.Fatal(err)
	}
	if e.Type().ID != "section" {
		t.Errorf("Type().ID = %q, want %q", e.Type().ID, "section")
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic for a type without a tag")
		}
	}()
	Must(Type{ID: "Abstract"})
}

func TestSettersReturnCopies(t *testing.T) {
	base := Div()
	a := base.Class("a").Content("one")
	b := a.Class("b").Content("two")

	if base.Attrs().Len() != 0 || base.GetContent() != "" {
		t.Errorf("base was modified: %v %q", base.Attrs().ToMap(), base.GetContent())
	}
	if v, _ := a.Attrs().Get("class"); strings.Join(v.([]string), " ") != "a" {
		t.Errorf("a class = %v, want [a]", v)
	}
	if v, _ := b.Attrs().Get("class"); strings.Join(v.([]string), " ") != "a b" {
		t.Errorf("b class = %v, want [a b]", v)
	}
	if a.GetContent() != "one" || b.GetContent() != "onetwo" {
		t.Errorf("content = %q, %q", a.GetContent(), b.GetContent())
	}
}

func TestSliceFieldsNotShared(t *testing.T) {
	base := Ul().Items("a")
	x := base.Items("x")
	y := base.Items("y")

	ctx := NewContext()
	gotX, _ := ctx.Render(x)
	gotY, _ := ctx.Render(y)
	if strings.Contains(gotX, "y") || strings.Contains(gotY, "x") {
		t.Errorf("items leaked between copies:\n%s\n%s", gotX, gotY)
	}
}

func TestAttrNilUnsets(t *testing.T) {
	e := Div().ID("a").Attr("id", nil)
	if e.Attrs().Has("id") {
		t.Error("Attr(id, nil) left id set")
	}
}

func TestMarkdown(t *testing.T) {
	e := Div().Markdown("# Title\n\nSome *text*.")
	if e.Err() != nil {
		t.Fatal(e.Err())
	}
	want := "<h1 id=\"title\">Title</h1>\n<p>Some <em>text</em>.</p>"
	if got := e.GetContent(); got != want {
		t.Errorf("Markdown() content = %q, want %q", got, want)
	}
}

func TestNodes(t *testing.T) {
	e := P().Nodes(g.Text("a < b"), nil, g.Raw("<br>"))
	if got, want := e.GetContent(), "a &lt; b<br>"; got != want {
		t.Errorf("Nodes() content = %q, want %q", got, want)
	}
}
