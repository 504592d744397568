package attr

import (
	"reflect"
	"testing"
)

func TestNewPreservesOrder(t *testing.T) {
	m := New(ID("a"), Class("b"), Title("c"))
	want := []string{"id", "class", "title"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestNewSkipsEmptyAndUnsets(t *testing.T) {
	m := New(ID("a"), Attr{}, A("id", nil), Title("t"))
	if m.Has("id") {
		t.Error("nil value should unset id")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestSetIsCopyOnWrite(t *testing.T) {
	base := New(ID("a"))
	next := base.Set("title", "t")

	if base.Has("title") {
		t.Error("Set must not modify the receiver")
	}
	if !next.Has("title") || !next.Has("id") {
		t.Error("Set should keep existing keys and add the new one")
	}
}

func TestSetKeepsPosition(t *testing.T) {
	m := New(ID("a"), Title("t")).Set("id", "b")
	if got := m.Keys(); got[0] != "id" {
		t.Errorf("Keys() = %v, re-set key should keep its position", got)
	}
	if v, _ := m.Get("id"); v != "b" {
		t.Errorf("Get(id) = %v, want b", v)
	}
}

func TestSetNilUnsets(t *testing.T) {
	m := New(ID("a"), Title("t"), Lang("en"))
	m = m.Set("title", nil)

	if m.Has("title") {
		t.Error("title should be unset")
	}
	if got, want := m.Keys(), []string{"id", "lang"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	// Unsetting a missing key is a no-op.
	if got := m.Unset("missing").Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	m := FromMap(map[string]any{"z": "1", "a": "2", "m": nil})
	if got, want := m.Keys(), []string{"a", "z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestMerge(t *testing.T) {
	base := New(Class("card"), ID("x"), Title("old"))
	patch := New(Class("card", "active"), Title("new"), Lang("en"))

	got := base.Merge(patch)

	classes, _ := got.Get("class")
	if want := []string{"card", "active"}; !reflect.DeepEqual(classes, want) {
		t.Errorf("class = %v, want %v", classes, want)
	}
	if v, _ := got.Get("title"); v != "new" {
		t.Errorf("title = %v, want new", v)
	}
	if got, want := got.Keys(), []string{"class", "id", "title", "lang"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := base.Get("title"); v != "old" {
		t.Error("Merge must not modify the receiver")
	}
}

func TestMergeNilRemoves(t *testing.T) {
	got := New(Class("a"), ID("x")).Merge(New(A("id", "y")).With(A("class", "b")))
	if v, _ := got.Get("id"); v != "y" {
		t.Errorf("id = %v", v)
	}

	var patch Map
	patch.put("class", "ignored")
	patch.values["class"] = nil
	got = New(Class("a")).Merge(patch)
	if got.Has("class") {
		t.Error("nil patch value should unset class")
	}
}

func TestZeroValue(t *testing.T) {
	var m Map
	if m.Len() != 0 || m.Has("id") {
		t.Error("zero Map should be empty")
	}
	s, err := m.Encode()
	if err != nil || s != "" {
		t.Errorf("Encode() = %q, %v", s, err)
	}
	if m.Set("id", "a").Len() != 1 {
		t.Error("Set on zero Map should work")
	}
}

func TestEachAndToMap(t *testing.T) {
	m := New(ID("a"), Title("b"))
	var order []string
	m.Each(func(k string, _ any) { order = append(order, k) })
	if !reflect.DeepEqual(order, []string{"id", "title"}) {
		t.Errorf("Each order = %v", order)
	}
	if got := m.ToMap(); got["id"] != "a" || got["title"] != "b" {
		t.Errorf("ToMap() = %v", got)
	}
}

func TestClasses(t *testing.T) {
	a := Classes("a b", []string{"c"}, map[string]bool{"d": true, "e": false})
	if a.Value != "a b c d" {
		t.Errorf("Classes() = %q", a.Value)
	}
}

func TestIf(t *testing.T) {
	if !If(false, ID("x")).IsEmpty() {
		t.Error("If(false) should be empty")
	}
	if If(true, ID("x")).Key != "id" {
		t.Error("If(true) should return the attribute")
	}
}

func TestMergeDeferredClass(t *testing.T) {
	calls := 0
	dyn := Lazy(func() string {
		calls++
		return "dyn base"
	})

	tests := []struct {
		name  string
		base  Map
		patch Map
		want  string
	}{
		{"deferred patch", New(Class("base")), New(A("class", dyn)), ` class="base dyn"`},
		{"deferred base", New(A("class", dyn)), New(Class("own")), ` class="dyn base own"`},
		{"func patch", New(Class("base")), New(A("class", func() string { return "fn" })), ` class="base fn"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := tt.base.Merge(tt.patch)
			got, err := merged.Encode()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}

	calls = 0
	New(Class("base")).Merge(New(A("class", dyn)))
	if calls != 0 {
		t.Errorf("Merge evaluated the deferred class %d times, want 0", calls)
	}
}

func TestClassMapTruthiness(t *testing.T) {
	m := New(A("class", map[string]any{
		"on":    true,
		"text":  "yes",
		"off":   false,
		"empty": "",
		"zero":  0,
		"one":   1,
	}))
	got, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if want := ` class="on text"`; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}
