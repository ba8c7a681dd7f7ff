package article

import (
	"context"

	"github.com/wikiseek/wikiseek/domain/language"
)

// Searcher is the encyclopedia-side capability the enrichment service
// depends on. Implementations are safe for concurrent use.
type Searcher interface {
	// Search runs a full-text search and returns lightweight hits.
	Search(ctx context.Context, lang language.Language, query string, limit int) ([]SearchHit, error)

	// BatchInfo fetches enrichment data for the given page ids in one
	// request. The result is keyed by page id; pages the upstream
	// omitted are absent from the map.
	BatchInfo(ctx context.Context, lang language.Language, pageIDs []int64) (map[int64]EnrichmentInfo, error)

	// SearchAndEnrich runs the combined search-plus-detail request and
	// returns assembled articles, already ranked.
	SearchAndEnrich(ctx context.Context, lang language.Language, query string, limit int) ([]Enriched, error)

	// ArticleURL returns the canonical URL for a title on the given
	// language edition.
	ArticleURL(lang language.Language, title string) string
}

// Describer resolves short descriptions for linked-data ids.
// Implementations are safe for concurrent use.
type Describer interface {
	// Descriptions returns descriptions keyed by linked-data id, in the
	// given language only. Ids without a usable description are absent
	// from the map.
	Descriptions(ctx context.Context, lang language.Language, ids []string) (map[string]string, error)
}
