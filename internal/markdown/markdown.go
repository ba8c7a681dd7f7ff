// Package markdown renders messenger-flavoured markdown (MarkdownV2
// escaping rules) for article messages.
package markdown

import (
	"fmt"
	"strings"
)

// Separator is a horizontal rule for message sections.
const Separator = "────────────────"

// escapeSet holds the characters MarkdownV2 requires escaped in text.
const escapeSet = `_*[]()~` + "`" + `>#+-=|{}.!`

// EscapeText escapes markdown control characters in text content.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune(escapeSet, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeURL escapes the characters that break a markdown link target.
func EscapeURL(url string) string {
	var b strings.Builder
	b.Grow(len(url))
	for _, r := range url {
		if r == ')' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Bold wraps escaped text in bold markers.
func Bold(s string) string {
	return "*" + EscapeText(s) + "*"
}

// Italic wraps escaped text in italic markers.
func Italic(s string) string {
	return "_" + EscapeText(s) + "_"
}

// Code wraps text in inline code markers, escaping backticks only.
func Code(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "\\`") + "`"
}

// Link renders an inline link with both parts escaped.
func Link(text, url string) string {
	return "[" + EscapeText(text) + "](" + EscapeURL(url) + ")"
}

// ListItem renders a bulleted line.
func ListItem(s string) string {
	return "• " + EscapeText(s)
}

// Quote renders each line of s as a quoted line.
func Quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "> " + EscapeText(line)
	}
	return strings.Join(lines, "\n")
}

// FormatArticleMessage renders the message body for one article: bold
// title, content and a read-more link.
func FormatArticleMessage(title, content, url string) string {
	return fmt.Sprintf("📖 %s\n\n%s\n\n🔗 %s",
		Bold(title), EscapeText(content), Link("Читать полностью", url))
}

// FormatNoResults renders the empty-result message for a query in the
// named language edition.
func FormatNoResults(query, languageName string) string {
	return fmt.Sprintf("🔍 %s\n\nПо запросу \"%s\" ничего не найдено в %s Википедии\n\n💡 Попробуйте изменить запрос",
		Bold("Ничего не найдено"), EscapeText(query), EscapeText(languageName))
}

// FormatError renders a user-facing error message.
func FormatError(message string) string {
	return fmt.Sprintf("⚠️ %s\n\n%s", Bold("Ошибка"), EscapeText(message))
}
