package text

import (
	"strings"
	"testing"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips tags", `<span class="searchmatch">Go</span> is a language`, "Go is a language"},
		{"decodes entities", "Tom &amp; Jerry &mdash; cartoon", "Tom & Jerry — cartoon"},
		{"collapses whitespace", "a\n\n  b\t c", "a b c"},
		{"empty input", "", ""},
		{"nested markup", "<b><i>bold italic</i></b>", "bold italic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.input); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanDescription(t *testing.T) {
	got := CleanDescription("first line\nsecond\tline\r\n")
	if got != "first line second line" {
		t.Errorf("CleanDescription() = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"fits unchanged", "short text", 100, "short text"},
		{"cuts at word boundary", "this is a long text", 10, "this is a..."},
		{"no trailing partial word", "one two three four", 12, "one two..."},
		{"exact budget", "exactly ten", 11, "exactly ten"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateBoundedByBudgetPlusEllipsis(t *testing.T) {
	inputs := []string{
		strings.Repeat("word ", 100),
		strings.Repeat("слово ", 100),
		strings.Repeat("x", 500),
	}
	for _, input := range inputs {
		for _, max := range []int{10, 50, 200} {
			if got := Truncate(input, max); len(got) > max+len(Ellipsis) {
				t.Errorf("Truncate(len=%d, %d) produced %d bytes", len(input), max, len(got))
			}
		}
	}
}

func TestTruncateRuneSafety(t *testing.T) {
	// Cyrillic runes are two bytes; a naive byte slice would split one.
	input := strings.Repeat("ё", 100)
	got := Truncate(input, 15)
	if !strings.HasPrefix(got, "ё") {
		t.Fatalf("truncation broke a rune: %q", got)
	}
	for _, r := range got {
		if r == '�' {
			t.Fatalf("truncation produced replacement rune: %q", got)
		}
	}
}

func TestFirstSentence(t *testing.T) {
	got := FirstSentence("Go is a language. It compiles fast.", 100)
	if got != "Go is a language." {
		t.Errorf("FirstSentence() = %q", got)
	}

	long := strings.Repeat("word ", 50) + "."
	got = FirstSentence(long, 30)
	if len(got) > 30+len(Ellipsis) {
		t.Errorf("FirstSentence() exceeded budget: %d bytes", len(got))
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("FirstSentence() should mark the truncation: %q", got)
	}
}

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"go language", "go language"},
		{`go "lang" <script>`, "go lang script"},
		{"охотское море!", "охотское море"},
		{"a-b_c", "a-b_c"},
	}
	for _, tt := range tests {
		if got := SanitizeQuery(tt.input); got != tt.want {
			t.Errorf("SanitizeQuery(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("  \t\n") {
		t.Error("whitespace-only string should be blank")
	}
	if IsBlank(" x ") {
		t.Error("non-empty string should not be blank")
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "Hello"},
		{"привет", "Привет"},
		{"", ""},
		{"Already", "Already"},
	}
	for _, tt := range tests {
		if got := CapitalizeFirst(tt.input); got != tt.want {
			t.Errorf("CapitalizeFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
