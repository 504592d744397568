package render

import "testing"

func TestKind(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
	}{
		{"div", KindBlock},
		{"table", KindBlock},
		{"span", KindInline},
		{"a", KindInline},
		{"br", KindVoid},
		{"img", KindVoid},
		{"wbr", KindVoid},
		{"Input", KindVoid},
		{"my-element", KindBlock},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			_, got, err := r.Kind(tt.tag)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Kind(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindBlock.String() != "block" || KindInline.String() != "inline" || KindVoid.String() != "void" {
		t.Error("unexpected Kind strings")
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", Kind(9).String())
	}
}

func TestPairable(t *testing.T) {
	if !KindBlock.Pairable() {
		t.Error("block should be pairable")
	}
	if KindInline.Pairable() || KindVoid.Pairable() || Kind(9).Pairable() {
		t.Error("only block should be pairable")
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"div", "div"},
		{"DIV", "div"},
		{"TextArea", "textarea"},
		{"x-Card", "x-Card"},
		{"svg:rect", "svg:rect"},
	}
	for _, tt := range tests {
		got, err := CanonicalName(tt.in)
		if err != nil {
			t.Fatalf("CanonicalName(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultCatalogIsCopy(t *testing.T) {
	a := DefaultCatalog()
	a["div"] = KindVoid
	if DefaultCatalog().Kind("div") != KindBlock {
		t.Error("DefaultCatalog should return an independent copy")
	}
}
