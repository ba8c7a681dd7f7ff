package service

import (
	"github.com/wikiseek/wikiseek/domain/article"
	"github.com/wikiseek/wikiseek/domain/language"
)

// Result is the outcome of one pipeline query: the resolved language,
// the effective query and the ranked articles. Immutable once created.
type Result struct {
	lang     language.Language
	query    string
	articles []article.Enriched
}

// NewResult creates a Result.
func NewResult(lang language.Language, query string, articles []article.Enriched) Result {
	copied := make([]article.Enriched, len(articles))
	copy(copied, articles)
	return Result{lang: lang, query: query, articles: copied}
}

// Language returns the language the query was served in.
func (r Result) Language() language.Language { return r.lang }

// Query returns the effective query after prefix resolution and
// sanitization.
func (r Result) Query() string { return r.query }

// Articles returns the ranked articles.
func (r Result) Articles() []article.Enriched {
	out := make([]article.Enriched, len(r.articles))
	copy(out, r.articles)
	return out
}

// IsEmpty reports whether the result carries no articles.
func (r Result) IsEmpty() bool { return len(r.articles) == 0 }
