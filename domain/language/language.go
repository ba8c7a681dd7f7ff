// Package language provides the supported Wikipedia language catalog and
// query prefix resolution.
package language

import (
	"fmt"
	"net/url"
	"strings"
)

// Language describes one supported Wikipedia language edition.
type Language struct {
	code string
	name string
	flag string
}

// Code returns the ISO-style language code (e.g. "en").
func (l Language) Code() string { return l.code }

// Name returns the English display name.
func (l Language) Name() string { return l.name }

// Flag returns the flag glyph for quick-pick UI.
func (l Language) Flag() string { return l.flag }

// Host returns the language-specific API host.
func (l Language) Host() string {
	return l.code + ".wikipedia.org"
}

// APIURL returns the MediaWiki API endpoint for the language edition.
func (l Language) APIURL() string {
	return fmt.Sprintf("https://%s/w/api.php", l.Host())
}

// ArticleURL returns the canonical URL of an article by title.
func (l Language) ArticleURL(title string) string {
	return fmt.Sprintf("https://%s/wiki/%s", l.Host(), url.PathEscape(title))
}

// IsZero reports whether the language is the zero value.
func (l Language) IsZero() bool { return l.code == "" }

func (l Language) String() string { return l.code }

var catalog = []Language{
	{"ru", "Russian", "\U0001F1F7\U0001F1FA"},
	{"uk", "Ukrainian", "\U0001F1FA\U0001F1E6"},
	{"en", "English", "\U0001F1FA\U0001F1F8"},
	{"de", "German", "\U0001F1E9\U0001F1EA"},
	{"fr", "French", "\U0001F1EB\U0001F1F7"},
	{"es", "Spanish", "\U0001F1EA\U0001F1F8"},
	{"it", "Italian", "\U0001F1EE\U0001F1F9"},
	{"pt", "Portuguese", "\U0001F1F5\U0001F1F9"},
	{"pl", "Polish", "\U0001F1F5\U0001F1F1"},
	{"ja", "Japanese", "\U0001F1EF\U0001F1F5"},
	{"zh", "Chinese", "\U0001F1E8\U0001F1F3"},
	{"ko", "Korean", "\U0001F1F0\U0001F1F7"},
	{"ar", "Arabic", "\U0001F1F8\U0001F1E6"},
	{"he", "Hebrew", "\U0001F1EE\U0001F1F1"},
	{"tr", "Turkish", "\U0001F1F9\U0001F1F7"},
	{"nl", "Dutch", "\U0001F1F3\U0001F1F1"},
	{"sv", "Swedish", "\U0001F1F8\U0001F1EA"},
	{"no", "Norwegian", "\U0001F1F3\U0001F1F4"},
	{"da", "Danish", "\U0001F1E9\U0001F1F0"},
	{"fi", "Finnish", "\U0001F1EB\U0001F1EE"},
	{"cs", "Czech", "\U0001F1E8\U0001F1FF"},
	{"bg", "Bulgarian", "\U0001F1E7\U0001F1EC"},
	{"hr", "Croatian", "\U0001F1ED\U0001F1F7"},
	{"sr", "Serbian", "\U0001F1F7\U0001F1F8"},
	{"sk", "Slovak", "\U0001F1F8\U0001F1F0"},
	{"sl", "Slovenian", "\U0001F1F8\U0001F1EE"},
	{"hu", "Hungarian", "\U0001F1ED\U0001F1FA"},
	{"ro", "Romanian", "\U0001F1F7\U0001F1F4"},
	{"el", "Greek", "\U0001F1EC\U0001F1F7"},
	{"lv", "Latvian", "\U0001F1F1\U0001F1FB"},
	{"lt", "Lithuanian", "\U0001F1F1\U0001F1F9"},
	{"et", "Estonian", "\U0001F1EA\U0001F1EA"},
	{"ca", "Catalan", "\U0001F3F4"},
	{"eu", "Basque", "\U0001F3F4"},
	{"gl", "Galician", "\U0001F3F4"},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, len(catalog))
	for _, l := range catalog {
		m[l.code] = l
	}
	return m
}()

// Default returns the fallback language used when a query carries no
// recognized prefix.
func Default() Language {
	return byCode["ru"]
}

// FromCode looks up a language by its code, case-insensitively.
func FromCode(code string) (Language, bool) {
	l, ok := byCode[strings.ToLower(code)]
	return l, ok
}

// All returns every supported language in catalog order.
func All() []Language {
	result := make([]Language, len(catalog))
	copy(result, catalog)
	return result
}

// Popular returns the subset of languages offered in quick-pick UI.
func Popular() []Language {
	codes := []string{"ru", "uk", "en", "de", "fr", "es"}
	result := make([]Language, len(codes))
	for i, c := range codes {
		result[i] = byCode[c]
	}
	return result
}

// maxPrefixLen bounds the language prefix length ("gsw:" style codes are
// the longest the catalog will ever hold).
const maxPrefixLen = 4

// Resolve parses an optional language prefix from a raw query.
//
// A prefix is 1-4 characters followed by ':' at the very start of the
// input. When the prefix matches a known code, Resolve returns that
// language and the trimmed remainder; otherwise it returns the default
// language and the query unchanged.
func Resolve(rawQuery string) (Language, string) {
	return ResolveWith(rawQuery, Default())
}

// ResolveWith is Resolve with an explicit fallback language.
func ResolveWith(rawQuery string, fallback Language) (Language, string) {
	if colon := strings.Index(rawQuery, ":"); colon > 0 && colon <= maxPrefixLen {
		if l, ok := FromCode(rawQuery[:colon]); ok {
			return l, strings.TrimSpace(rawQuery[colon+1:])
		}
	}
	return fallback, rawQuery
}
