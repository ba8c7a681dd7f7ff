package wikipedia

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/wikiseek/wikiseek/domain/article"
	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/domain/wikierr"
	"github.com/wikiseek/wikiseek/internal/text"
)

// snippetBudget bounds snippets derived from extracts on the combined
// request.
const snippetBudget = 200

// fallbackSearchCap bounds the hit count of the snippet fallback search.
const fallbackSearchCap = 50

// SearchAndEnrich runs the combined search-plus-detail request: one call
// returns hits together with their enrichment data. Snippets are derived
// from extracts; pages without an extract get theirs from a single
// follow-up search over the affected titles. Results come back ranked.
func (c *Client) SearchAndEnrich(ctx context.Context, lang language.Language, query string, limit int) ([]article.Enriched, error) {
	query = text.NormalizeWhitespace(query)
	if query == "" {
		return nil, wikierr.NoResults(query)
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("generator", "search")
	params.Set("gsrsearch", query)
	params.Set("gsrlimit", strconv.Itoa(limit))
	params.Set("prop", detailProps)
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exchars", strconv.Itoa(unifiedExtractChars))
	params.Set("pithumbsize", strconv.Itoa(thumbnailSize))
	params.Set("cllimit", strconv.Itoa(categoriesLimit))
	params.Set("coprop", "lat|lon")

	var resp detailResponse
	if err := c.doGet(ctx, lang, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, wikierr.UnexpectedResponse("wikipedia error: " + resp.Error.Info)
	}
	if len(resp.Query.Pages) == 0 {
		return nil, wikierr.NoResults(query)
	}

	articles := make([]article.Enriched, 0, len(resp.Query.Pages))
	var missing []string

	for _, page := range resp.Query.Pages {
		if page.PageID == 0 {
			continue
		}

		snippet := ""
		if extract := strings.TrimSpace(page.Extract); extract != "" {
			snippet = text.Truncate(extract, snippetBudget)
		} else {
			missing = append(missing, page.Title)
		}

		hit := article.NewSearchHit(page.Title, snippet).WithPageID(page.PageID)
		info := page.enrichment()
		a := article.NewEnriched(hit, &info, lang.ArticleURL(page.Title))
		if page.Index > 0 {
			a = a.WithRelevanceIndex(page.Index)
		}
		articles = append(articles, a)
	}

	if len(articles) == 0 {
		return nil, wikierr.NoResults(query)
	}

	if len(missing) > 0 {
		articles = c.fillSnippets(ctx, lang, articles, missing)
	}

	article.SortByRelevance(articles)

	c.logger.DebugContext(ctx, "unified search completed",
		"lang", lang.Code(), "query", query, "articles", len(articles))

	return articles, nil
}

// fillSnippets runs one search over the titles that came back without an
// extract and copies matching snippets onto the articles. Titles the
// search does not cover fall back to the bare title. Failures here only
// degrade snippets, they never fail the request.
func (c *Client) fillSnippets(ctx context.Context, lang language.Language, articles []article.Enriched, titles []string) []article.Enriched {
	limit := 2 * len(titles)
	if limit > fallbackSearchCap {
		limit = fallbackSearchCap
	}

	snippets := make(map[string]string, len(titles))
	hits, err := c.Search(ctx, lang, strings.Join(titles, " OR "), limit)
	if err != nil {
		c.logger.WarnContext(ctx, "snippet fallback search failed", "error", err)
	} else {
		for _, hit := range hits {
			snippets[strings.ToLower(hit.Title())] = hit.Snippet()
		}
	}

	for i, a := range articles {
		hit := a.Hit()
		if hit.Snippet() != "" {
			continue
		}
		snippet, ok := snippets[strings.ToLower(hit.Title())]
		if !ok || snippet == "" {
			snippet = hit.Title()
		}

		replacement := article.NewSearchHit(hit.Title(), snippet)
		if id, present := hit.PageID(); present {
			replacement = replacement.WithPageID(id)
		}

		rebuilt := article.NewEnriched(replacement, infoPtr(a), a.URL())
		if idx, ranked := a.RelevanceIndex(); ranked {
			rebuilt = rebuilt.WithRelevanceIndex(idx)
		}
		articles[i] = rebuilt
	}

	return articles
}

func infoPtr(a article.Enriched) *article.EnrichmentInfo {
	if info, ok := a.Info(); ok {
		return &info
	}
	return nil
}
