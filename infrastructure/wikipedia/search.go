package wikipedia

import (
	"context"
	"net/url"
	"strconv"

	"github.com/wikiseek/wikiseek/domain/article"
	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/domain/wikierr"
	"github.com/wikiseek/wikiseek/internal/cache"
	"github.com/wikiseek/wikiseek/internal/text"
)

// searchResponse is the list=search response payload.
type searchResponse struct {
	Query struct {
		SearchInfo struct {
			TotalHits int `json:"totalhits"`
		} `json:"searchinfo"`
		Search []searchResult `json:"search"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

// searchResult is one full-text search hit on the wire.
type searchResult struct {
	PageID    int64  `json:"pageid"`
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	Size      int    `json:"size"`
	WordCount int    `json:"wordcount"`
	Timestamp string `json:"timestamp"`
}

// Search runs a full-text search on the given language edition. Blank
// queries fail before any network call. Results are cached per language
// and lower-cased query.
func (c *Client) Search(ctx context.Context, lang language.Language, query string, limit int) ([]article.SearchHit, error) {
	query = text.NormalizeWhitespace(query)
	if query == "" {
		return nil, wikierr.NoResults(query)
	}

	key := cache.QueryKey("search", lang.Code(), query)
	if hits, ok := c.searchCache.Get(key); ok {
		c.logger.DebugContext(ctx, "search cache hit", "key", key)
		return copyHits(hits), nil
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", searchProps)

	var resp searchResponse
	if err := c.doGet(ctx, lang, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, wikierr.UnexpectedResponse("wikipedia error: " + resp.Error.Info)
	}

	hits := make([]article.SearchHit, 0, len(resp.Query.Search))
	for _, r := range resp.Query.Search {
		hit := article.NewSearchHit(r.Title, text.CleanHTML(r.Snippet)).
			WithPageID(r.PageID).
			WithStats(r.Size, r.WordCount, r.Timestamp)
		hits = append(hits, hit)
	}

	c.logger.DebugContext(ctx, "search completed",
		"lang", lang.Code(), "query", query, "hits", len(hits),
		"total", resp.Query.SearchInfo.TotalHits)

	c.searchCache.Add(key, copyHits(hits))
	return hits, nil
}

func copyHits(hits []article.SearchHit) []article.SearchHit {
	out := make([]article.SearchHit, len(hits))
	copy(out, hits)
	return out
}
