// Package text provides sanitization helpers for upstream snippets and
// descriptions.
package text

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every HTML element, leaving text content only.
var stripPolicy = bluemonday.StrictPolicy()

var whitespaceRe = regexp.MustCompile(`\s+`)

// Ellipsis is appended to word-boundary truncated text.
const Ellipsis = "..."

// CleanHTML strips markup, decodes HTML entities and collapses runs of
// whitespace into single spaces.
func CleanHTML(s string) string {
	// bluemonday re-escapes text content, so entities are decoded after
	// stripping to cover both original and re-escaped forms.
	cleaned := stripPolicy.Sanitize(s)
	cleaned = html.UnescapeString(cleaned)
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// CleanDescription cleans markup and flattens line breaks; used for
// linked-data descriptions which must render as a single line.
func CleanDescription(s string) string {
	cleaned := CleanHTML(s)
	replacer := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")
	cleaned = replacer.Replace(cleaned)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))
}

// NormalizeWhitespace collapses whitespace runs and trims the ends.
func NormalizeWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Truncate shortens s to max bytes at a word boundary and appends an
// ellipsis, so output may run up to max plus the marker. Strings already
// within the budget are returned unchanged.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	// Cut on a rune boundary first, then back off to the last space so a
	// word is never split.
	truncated := cutRunes(s, max)
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace >= 0 {
		truncated = truncated[:lastSpace]
	}

	return truncated + Ellipsis
}

// cutRunes returns the longest prefix of s holding complete runes whose
// byte length does not exceed max.
func cutRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// FirstSentence returns the first sentence of s when it fits within max,
// otherwise a word-boundary truncation of the cleaned text.
func FirstSentence(s string, max int) string {
	cleaned := CleanDescription(s)

	if end := strings.IndexAny(cleaned, ".!?"); end >= 0 {
		sentence := cleaned[:end+1]
		if len(sentence) <= max {
			return strings.TrimSpace(sentence)
		}
	}

	return Truncate(cleaned, max)
}

// SanitizeQuery drops characters that have no business in a search query,
// keeping letters, digits, whitespace, hyphens and underscores.
func SanitizeQuery(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range query {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CapitalizeFirst upper-cases the first letter of s.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
