package render

import "testing"

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"tags", "<b>x</b>", "&lt;b&gt;x&lt;/b&gt;"},
		{"double quote", `say "hello"`, "say &#34;hello&#34;"},
		{"single quote", "it's fine", "it&#39;s fine"},
		{"unicode preserved", "Hello 世界 🌍", "Hello 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.input); got != tt.expected {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
