package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/tagkit/pkg/attr"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		content string
		attrs   attr.Map
		encode  bool
		want    string
	}{
		{
			name:    "block with attribute",
			tag:     "div",
			content: "Hi",
			attrs:   attr.New(attr.Class("c")),
			want:    "<div class=\"c\">\nHi\n</div>",
		},
		{
			name: "block without content",
			tag:  "section",
			want: "<section></section>",
		},
		{
			name:    "inline stays on one line",
			tag:     "span",
			content: "x",
			want:    "<span>x</span>",
		},
		{
			name:    "void ignores content",
			tag:     "img",
			content: "ignored",
			attrs:   attr.New(attr.Src("a.png"), attr.Alt("")),
			want:    `<img src="a.png" alt="">`,
		},
		{
			name:    "content encoded",
			tag:     "p",
			content: "<b>x</b> & y",
			encode:  true,
			want:    "<p>\n&lt;b&gt;x&lt;/b&gt; &amp; y\n</p>",
		},
		{
			name:    "content raw",
			tag:     "p",
			content: "<b>x</b>",
			want:    "<p>\n<b>x</b>\n</p>",
		},
		{
			name: "known tag canonicalised",
			tag:  "DIV",
			want: "<div></div>",
		},
		{
			name:    "custom element kept verbatim",
			tag:     "my-Widget",
			content: "c",
			want:    "<my-Widget>\nc\n</my-Widget>",
		},
		{
			name:  "boolean attributes",
			tag:   "input",
			attrs: attr.New(attr.Type("checkbox"), attr.Checked(), attr.A("disabled", false)),
			want:  `<input type="checkbox" checked>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Create(tt.tag, tt.content, tt.attrs, tt.encode)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Create() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateEmptyTag(t *testing.T) {
	_, err := Create("", "x", attr.Map{}, false)
	if !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("Create(\"\") error = %v, want ErrInvalidTag", err)
	}
	if !strings.Contains(err.Error(), "Tag name cannot be empty.") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestInvalidTagNames(t *testing.T) {
	for _, tag := range []string{"1div", "-x", "di v", "a>b", "<p"} {
		t.Run(tag, func(t *testing.T) {
			if _, err := Create(tag, "", attr.Map{}, false); !errors.Is(err, ErrInvalidTag) {
				t.Errorf("Create(%q) error = %v, want ErrInvalidTag", tag, err)
			}
		})
	}
}

func TestBeginEndInline(t *testing.T) {
	for _, tag := range []string{"br", "span", "img"} {
		t.Run(tag, func(t *testing.T) {
			_, err := Begin(tag, attr.Map{})
			if !errors.Is(err, ErrInvalidTag) {
				t.Fatalf("Begin(%q) error = %v, want ErrInvalidTag", tag, err)
			}
			if !strings.Contains(err.Error(), "Inline elements cannot be used with begin/end syntax.") {
				t.Errorf("Begin(%q) error = %q", tag, err.Error())
			}

			_, err = End(tag)
			if !errors.Is(err, ErrInvalidTag) {
				t.Fatalf("End(%q) error = %v, want ErrInvalidTag", tag, err)
			}
		})
	}
}

func TestBeginEndEmpty(t *testing.T) {
	if _, err := Begin("", attr.Map{}); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("Begin(\"\") error = %v", err)
	}
	if _, err := End(""); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("End(\"\") error = %v", err)
	}
}

func TestOpenContentCloseMatchesFull(t *testing.T) {
	attrs := attr.New(attr.ID("main"), attr.Class("a", "b"), attr.Data("x", 1))

	for _, content := range []string{"", "text", "<p>nested</p>\nline two"} {
		open, err := Begin("main", attrs)
		if err != nil {
			t.Fatal(err)
		}
		closing, err := End("main")
		if err != nil {
			t.Fatal(err)
		}
		full, err := Create("main", content, attrs, false)
		if err != nil {
			t.Fatal(err)
		}

		body := content
		if content != "" {
			body = "\n" + content + "\n"
		}
		if got := open + body + closing; got != full {
			t.Errorf("open+content+close = %q, full = %q", got, full)
		}
	}
}

func TestVoidIdempotent(t *testing.T) {
	attrs := attr.New(attr.Name("q"), attr.A("title", attr.Lazy(func() string { return "t" })))
	first, err := Void("input", attrs)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := Void("input", attrs)
	if first != second {
		t.Errorf("Void() not idempotent: %q vs %q", first, second)
	}
	if first != `<input name="q" title="t">` {
		t.Errorf("Void() = %q", first)
	}
}

func TestVoidEmptyTag(t *testing.T) {
	if _, err := Void("", attr.Map{}); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("Void(\"\") error = %v", err)
	}
}

func TestInvalidAttributePropagates(t *testing.T) {
	_, err := Create("div", "", attr.New(attr.A("x", struct{}{})), false)
	if !errors.Is(err, ErrInvalidAttributeValue) {
		t.Errorf("error = %v, want ErrInvalidAttributeValue", err)
	}
}

func TestCustomCatalog(t *testing.T) {
	cat := DefaultCatalog()
	cat["x-chip"] = KindInline
	r := NewRenderer(RendererConfig{Catalog: cat})

	got, err := r.Full("x-chip", "a", attr.Map{}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<x-chip>a</x-chip>" {
		t.Errorf("Full() = %q", got)
	}
	if _, err := r.Open("x-chip", attr.Map{}); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("Open() error = %v, want ErrInvalidTag", err)
	}

	// The built-in catalog is unaffected.
	if _, err := Begin("x-chip", attr.Map{}); err != nil {
		t.Errorf("Begin() error = %v", err)
	}
}

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) ObserveRender(shape Shape, tag string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	o.calls = append(o.calls, string(shape)+":"+tag+":"+status)
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	r := NewRenderer(RendererConfig{Observer: obs})

	r.Open("div", attr.Map{})
	r.Close("span")
	r.Full("p", "x", attr.Map{}, false)
	r.Void("hr", attr.Map{})

	want := []string{"open:div:ok", "close:span:error", "full:p:ok", "void:hr:ok"}
	if strings.Join(obs.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", obs.calls, want)
	}
}

func TestRenderRequest(t *testing.T) {
	r := Default()
	got, err := r.RenderAll([]Request{
		{Tag: "h1", Content: "Title <1>", Encode: true},
		{Tag: "a", Content: "x", Attributes: map[string]any{"href": "/", "class": "nav"}},
		{Tag: "img", Attributes: map[string]any{"width": float64(10)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "<h1>\nTitle &lt;1&gt;\n</h1>\n<a class=\"nav\" href=\"/\">x</a>\n<img width=\"10\">"
	if got != want {
		t.Errorf("RenderAll() = %q, want %q", got, want)
	}

	if _, err := r.RenderAll([]Request{{Tag: "p"}, {Tag: ""}}); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("RenderAll() error = %v, want ErrInvalidTag", err)
	}
}
