package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "invalid tag",
			code:    CodeInvalidTag,
			wantMsg: "Invalid tag",
			wantCat: CategoryRender,
		},
		{
			name:    "unexpected end",
			code:    CodeUnexpectedEndCall,
			wantMsg: "Unexpected end call",
			wantCat: CategoryStack,
		},
		{
			name:    "theme load",
			code:    CodeThemeLoad,
			wantMsg: "Theme file could not be loaded",
			wantCat: CategoryTheme,
		},
		{
			name:    "unknown error code",
			code:    "T999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidTag, "Tag name %q is invalid.", "1div")
	if err.Message != `Tag name "1div" is invalid.` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryRender {
		t.Errorf("Category = %q, want %q", err.Category, CategoryRender)
	}
	if err.Detail == "" {
		t.Error("Detail should come from the registry")
	}
}

func TestError_Error(t *testing.T) {
	err := Newf(CodeInvalidTag, "Tag name cannot be empty.")
	if got, want := err.Error(), "T001: Tag name cannot be empty."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &Error{Message: "plain"}
	if plain.Error() != "plain" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "plain")
	}

	wrapped := New(CodeThemeLoad).Wrap(fmt.Errorf("disk on fire"))
	if got, want := wrapped.Error(), "T010: Theme file could not be loaded: disk on fire"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("rendering: %w", Newf(CodeTagClassMismatch, "cannot end a while b is open"))

	if !stderrors.Is(err, New(CodeTagClassMismatch)) {
		t.Error("errors.Is should match by code through wrapping")
	}
	if stderrors.Is(err, New(CodeUnexpectedEndCall)) {
		t.Error("errors.Is should not match a different code")
	}
	if (&Error{}).Is(&Error{}) {
		t.Error("empty codes should never match")
	}
}

func TestError_Wrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	outer := New(CodePublish).Wrap(inner)

	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is should reach the wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodePublish) != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	coded := New(CodeInvalidTag)
	if FromError(fmt.Errorf("x: %w", coded), CodePublish) != coded {
		t.Error("FromError should return the coded error as-is")
	}

	std := fmt.Errorf("boom")
	result := FromError(std, CodePublish)
	if result.Wrapped != std || result.Code != CodePublish {
		t.Error("standard error should be wrapped under the given code")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(fmt.Errorf("a: %w", New(CodeMarkdown))); got != CodeMarkdown {
		t.Errorf("CodeOf() = %q, want %q", got, CodeMarkdown)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("CodeOf() = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := Newf(CodeTagClassMismatch, "Cannot end div while span is open.").
		WithSuggestion("Call End for span first.")

	formatted := err.Format()

	for _, want := range []string{"ERROR T004:", "Cannot end div while span is open.", "Hint: Call End for span first.", "innermost"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := Newf(CodeInvalidTag, "Tag name cannot be empty.")
	if got, want := err.FormatCompact(), "T001: Tag name cannot be empty."; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, New(CodeConfigLoad))
	if !strings.Contains(buf.String(), "ERROR T020:") {
		t.Errorf("Fprint() = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, fmt.Errorf("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("Fprint() = %q", buf.String())
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Fatal("GetAllCodes() should return codes")
	}
	if codes[0] != CodeInvalidTag {
		t.Errorf("codes[0] = %q, want %q", codes[0], CodeInvalidTag)
	}
}

func TestRegister(t *testing.T) {
	Register("T900", ErrorTemplate{Category: CategoryCLI, Message: "custom"})
	defer delete(registry, "T900")

	tmpl, ok := GetTemplate("T900")
	if !ok || tmpl.Message != "custom" {
		t.Errorf("GetTemplate() = %+v, %v", tmpl, ok)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaaa bbbb cccc", 9)
	if len(lines) != 2 || lines[0] != "aaaa bbbb" || lines[1] != "cccc" {
		t.Errorf("wrapText() = %q", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}
