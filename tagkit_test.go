package tagkit

import (
	"errors"
	"testing"
)

func TestCreateTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		content string
		attrs   map[string]any
		encode  bool
		want    string
	}{
		{"block", "div", "Hi", map[string]any{"class": "c", "id": "x"}, false, "<div class=\"c\" id=\"x\">\nHi\n</div>"},
		{"inline encoded", "em", "a&b", nil, true, "<em>a&amp;b</em>"},
		{"void", "br", "ignored", nil, false, "<br>"},
		{"boolean attributes", "input", "", map[string]any{"disabled": true, "readonly": false}, false, "<input disabled>"},
		{"nil attribute skipped", "p", "", map[string]any{"title": nil}, false, "<p></p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreateTag(tt.tag, tt.content, tt.attrs, tt.encode)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("CreateTag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBeginEndTag(t *testing.T) {
	open, err := BeginTag("section", map[string]any{"id": "s"})
	if err != nil {
		t.Fatal(err)
	}
	closing, err := EndTag("section")
	if err != nil {
		t.Fatal(err)
	}
	if open != `<section id="s">` || closing != "</section>" {
		t.Errorf("BeginTag/EndTag = %q %q", open, closing)
	}

	for _, tag := range []string{"span", "br"} {
		if _, err := BeginTag(tag, nil); !errors.Is(err, ErrInvalidTag) {
			t.Errorf("BeginTag(%q) error = %v, want ErrInvalidTag", tag, err)
		}
		if _, err := EndTag(tag); !errors.Is(err, ErrInvalidTag) {
			t.Errorf("EndTag(%q) error = %v, want ErrInvalidTag", tag, err)
		}
	}
}

func TestCreateTagInvalid(t *testing.T) {
	if _, err := CreateTag("", "x", nil, false); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("CreateTag(\"\") error = %v, want ErrInvalidTag", err)
	}
	if _, err := CreateTag("div", "", map[string]any{"x": struct{}{}}, false); !errors.Is(err, ErrInvalidAttributeValue) {
		t.Errorf("CreateTag() error = %v, want ErrInvalidAttributeValue", err)
	}
}
