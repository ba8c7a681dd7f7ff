package markdown

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello_world", `Hello\_world`},
		{"Test*bold*", `Test\*bold\*`},
		{"Link[text]", `Link\[text\]`},
		{"a.b!c", `a\.b\!c`},
		{"кириллица без спецсимволов", "кириллица без спецсимволов"},
	}
	for _, tt := range tests {
		if got := EscapeText(tt.input); got != tt.want {
			t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEscapeURL(t *testing.T) {
	if got := EscapeURL("https://example.com"); got != "https://example.com" {
		t.Errorf("EscapeURL() = %q", got)
	}
	if got := EscapeURL("https://example.com/a)"); got != `https://example.com/a\)` {
		t.Errorf("EscapeURL() = %q", got)
	}
}

func TestBoldAndItalic(t *testing.T) {
	if got := Bold("special_chars"); got != `*special\_chars*` {
		t.Errorf("Bold() = %q", got)
	}
	if got := Italic("x"); got != "_x_" {
		t.Errorf("Italic() = %q", got)
	}
}

func TestCode(t *testing.T) {
	if got := Code("a`b"); got != "`a\\`b`" {
		t.Errorf("Code() = %q", got)
	}
}

func TestLink(t *testing.T) {
	got := Link("Text_with_underscores", "https://example.com/a)")
	want := `[Text\_with\_underscores](https://example.com/a\))`
	if got != want {
		t.Errorf("Link() = %q, want %q", got, want)
	}
}

func TestQuote(t *testing.T) {
	got := Quote("line one\nline two")
	if got != "> line one\n> line two" {
		t.Errorf("Quote() = %q", got)
	}
}

func TestFormatArticleMessage(t *testing.T) {
	got := FormatArticleMessage("Test Article", "Test description", "https://example.com")
	if !strings.Contains(got, "📖 *Test Article*") {
		t.Errorf("missing title block: %q", got)
	}
	if !strings.Contains(got, "Test description") {
		t.Errorf("missing content: %q", got)
	}
	if !strings.Contains(got, "🔗 [Читать полностью](https://example.com)") {
		t.Errorf("missing link: %q", got)
	}
}

func TestFormatNoResults(t *testing.T) {
	got := FormatNoResults("golang", "русской")
	if !strings.Contains(got, "*Ничего не найдено*") || !strings.Contains(got, "golang") {
		t.Errorf("FormatNoResults() = %q", got)
	}
}

func TestFormatError(t *testing.T) {
	got := FormatError("Сервис недоступен.")
	if !strings.Contains(got, "*Ошибка*") || !strings.Contains(got, `Сервис недоступен\.`) {
		t.Errorf("FormatError() = %q", got)
	}
}
