// Package service provides application layer services that orchestrate
// domain operations.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/wikiseek/wikiseek/domain/article"
	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/domain/wikierr"
	"github.com/wikiseek/wikiseek/internal/cache"
	"github.com/wikiseek/wikiseek/internal/log"
	"github.com/wikiseek/wikiseek/internal/text"
)

const (
	defaultMaxResults    = 50
	defaultCacheCapacity = 1000
	defaultCacheTTL      = 300 * time.Second
)

// Enrichment orchestrates the article pipeline: search, detail
// enrichment, description merging and ranking. The combined
// search-plus-detail path is tried first and falls back to the
// two-request baseline when it fails. Safe for concurrent use.
type Enrichment struct {
	searcher    article.Searcher
	describer   article.Describer
	logger      *log.Logger
	maxResults  int
	defaultLang language.Language

	unifiedCache *cache.Cache[[]article.Enriched]
	group        singleflight.Group

	cacheCapacity int
	cacheTTL      time.Duration
	cacheEnabled  bool
}

// EnrichmentOption configures the Enrichment service.
type EnrichmentOption func(*Enrichment)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) EnrichmentOption {
	return func(e *Enrichment) { e.logger = l }
}

// WithMaxResults caps the number of articles a query returns.
func WithMaxResults(n int) EnrichmentOption {
	return func(e *Enrichment) {
		if n > 0 {
			e.maxResults = n
		}
	}
}

// WithDefaultLanguage sets the language used when a query carries no
// prefix.
func WithDefaultLanguage(lang language.Language) EnrichmentOption {
	return func(e *Enrichment) {
		if !lang.IsZero() {
			e.defaultLang = lang
		}
	}
}

// WithCache configures the assembled-result cache. The cache gets a
// quarter of the given capacity; assembled results are the largest
// entries the pipeline stores.
func WithCache(capacity int, ttl time.Duration, enabled bool) EnrichmentOption {
	return func(e *Enrichment) {
		e.cacheCapacity = capacity
		e.cacheTTL = ttl
		e.cacheEnabled = enabled
	}
}

// NewEnrichment creates the pipeline service.
func NewEnrichment(searcher article.Searcher, describer article.Describer, opts ...EnrichmentOption) *Enrichment {
	e := &Enrichment{
		searcher:      searcher,
		describer:     describer,
		logger:        log.Discard(),
		maxResults:    defaultMaxResults,
		defaultLang:   language.Default(),
		cacheCapacity: defaultCacheCapacity,
		cacheTTL:      defaultCacheTTL,
		cacheEnabled:  true,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.unifiedCache = cache.New[[]article.Enriched](e.cacheCapacity/4, e.cacheTTL, e.cacheEnabled)

	return e
}

// EnrichedArticles runs the two-request baseline: a search followed by a
// batched detail fetch. Hits keep their search order as the relevance
// rank; hits without a page id are dropped. A failure of either request
// fails the call.
func (e *Enrichment) EnrichedArticles(ctx context.Context, lang language.Language, query string, limit int) ([]article.Enriched, error) {
	hits, err := e.searcher.Search(ctx, lang, query, limit)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, wikierr.NoResults(query)
	}

	ids := make([]int64, 0, len(hits))
	for _, hit := range hits {
		if id, ok := hit.PageID(); ok {
			ids = append(ids, id)
		}
	}

	info, err := e.searcher.BatchInfo(ctx, lang, ids)
	if err != nil {
		return nil, err
	}

	articles := make([]article.Enriched, 0, len(hits))
	for _, hit := range hits {
		id, ok := hit.PageID()
		if !ok {
			continue
		}

		var infoPtr *article.EnrichmentInfo
		if enrichment, found := info[id]; found {
			infoPtr = &enrichment
		}

		a := article.NewEnriched(hit, infoPtr, e.searcher.ArticleURL(lang, hit.Title())).
			WithRelevanceIndex(len(articles))
		articles = append(articles, a)
	}

	if len(articles) == 0 {
		return nil, wikierr.NoResults(query)
	}

	article.SortByRelevance(articles)
	return articles, nil
}

// EnrichedArticlesOptimized serves assembled articles from cache, then
// from the combined search-plus-detail request, then from the baseline.
// A failed combined request is logged and never surfaced; only a failed
// baseline fails the call. Concurrent identical requests share one
// upstream fetch.
func (e *Enrichment) EnrichedArticlesOptimized(ctx context.Context, lang language.Language, query string, limit int) ([]article.Enriched, error) {
	key := cache.QueryKey("unified", lang.Code(), query)
	if articles, ok := e.unifiedCache.Get(key); ok {
		e.logger.DebugContext(ctx, "result cache hit", "key", key)
		return copyArticles(articles), nil
	}

	result, err, _ := e.group.Do(key, func() (any, error) {
		articles, err := e.searcher.SearchAndEnrich(ctx, lang, query, limit)
		if err == nil {
			// Only a unified success populates the cache; a fallback
			// result must not mask the optimized path for a full TTL.
			e.unifiedCache.Add(key, copyArticles(articles))
			return articles, nil
		}

		e.logger.WarnContext(ctx, "combined request failed, using baseline",
			"lang", lang.Code(), "query", query, "error", err)
		return e.EnrichedArticles(ctx, lang, query, limit)
	})
	if err != nil {
		return nil, err
	}

	articles, ok := result.([]article.Enriched)
	if !ok {
		return nil, wikierr.Internal("unexpected result type", nil)
	}
	return copyArticles(articles), nil
}

// Query resolves the language prefix, runs the pipeline and merges
// linked-data descriptions into the articles. Description failures are
// logged and the articles returned without them.
func (e *Enrichment) Query(ctx context.Context, rawQuery string) (Result, error) {
	lang, query := language.ResolveWith(rawQuery, e.defaultLang)
	query = text.SanitizeQuery(query)
	if query == "" {
		return Result{}, wikierr.NoResults(rawQuery)
	}

	articles, err := e.EnrichedArticlesOptimized(ctx, lang, query, e.maxResults)
	if err != nil {
		return Result{}, err
	}

	articles = e.mergeDescriptions(ctx, lang, articles)

	e.logger.InfoContext(ctx, "query served",
		"lang", lang.Code(), "query", query, "articles", len(articles))

	return NewResult(lang, query, articles), nil
}

// mergeDescriptions attaches linked-data descriptions to articles that
// carry a cross-reference id.
func (e *Enrichment) mergeDescriptions(ctx context.Context, lang language.Language, articles []article.Enriched) []article.Enriched {
	seen := make(map[string]struct{}, len(articles))
	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		id := a.WikidataID()
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return articles
	}

	descriptions, err := e.describer.Descriptions(ctx, lang, ids)
	if err != nil {
		e.logger.WarnContext(ctx, "description fetch failed", "error", err)
		return articles
	}

	for i, a := range articles {
		if desc, ok := descriptions[a.WikidataID()]; ok && desc != "" {
			articles[i] = a.WithDescription(desc)
		}
	}
	return articles
}

func copyArticles(articles []article.Enriched) []article.Enriched {
	out := make([]article.Enriched, len(articles))
	copy(out, articles)
	return out
}
