package wikipedia

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/wikiseek/wikiseek/domain/article"
	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/domain/wikierr"
	"github.com/wikiseek/wikiseek/internal/cache"
)

// detailResponse is the prop=extracts|pageimages|... response payload,
// shared by the batch and the generator request.
type detailResponse struct {
	Query struct {
		Pages map[string]detailPage `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

// detailPage is one enriched page on the wire. Index is only present on
// generator responses and carries the search rank.
type detailPage struct {
	PageID    int64  `json:"pageid"`
	Title     string `json:"title"`
	Index     int    `json:"index"`
	Extract   string `json:"extract"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	PageProps *struct {
		WikibaseItem string `json:"wikibase_item"`
	} `json:"pageprops"`
	Coordinates []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coordinates"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
}

// enrichment converts a wire page into the domain enrichment value.
func (p detailPage) enrichment() article.EnrichmentInfo {
	var imageURL string
	if p.Thumbnail != nil {
		imageURL = p.Thumbnail.Source
	}

	var wikidataID string
	if p.PageProps != nil {
		wikidataID = p.PageProps.WikibaseItem
	}

	var coords *article.Coordinates
	if len(p.Coordinates) > 0 {
		coords = &article.Coordinates{Lat: p.Coordinates[0].Lat, Lon: p.Coordinates[0].Lon}
	}

	categories := make([]string, 0, len(p.Categories))
	for _, cat := range p.Categories {
		// Category titles arrive namespace-qualified ("Category:X",
		// "Категория:X"); keep the bare name.
		name := cat.Title
		if i := strings.Index(name, ":"); i >= 0 {
			name = name[i+1:]
		}
		if name != "" {
			categories = append(categories, name)
		}
	}

	return article.NewEnrichmentInfo(imageURL, strings.TrimSpace(p.Extract), wikidataID, coords, categories)
}

// BatchInfo fetches enrichment data for the given page ids in a single
// request. Pages the upstream omitted are absent from the result. The
// response is cached by the sorted id set.
func (c *Client) BatchInfo(ctx context.Context, lang language.Language, pageIDs []int64) (map[int64]article.EnrichmentInfo, error) {
	if len(pageIDs) == 0 {
		return map[int64]article.EnrichmentInfo{}, nil
	}

	key := cache.IDKey("batch", lang.Code(), pageIDs)
	if info, ok := c.batchCache.Get(key); ok {
		c.logger.DebugContext(ctx, "batch cache hit", "key", key)
		return copyInfo(info), nil
	}

	ids := make([]string, len(pageIDs))
	for i, id := range pageIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("pageids", strings.Join(ids, "|"))
	params.Set("prop", detailProps)
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
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

	info := make(map[int64]article.EnrichmentInfo, len(resp.Query.Pages))
	for _, page := range resp.Query.Pages {
		if page.PageID == 0 {
			continue
		}
		info[page.PageID] = page.enrichment()
	}

	c.logger.DebugContext(ctx, "batch info fetched",
		"lang", lang.Code(), "requested", len(pageIDs), "returned", len(info))

	c.batchCache.Add(key, copyInfo(info))
	return info, nil
}

func copyInfo(info map[int64]article.EnrichmentInfo) map[int64]article.EnrichmentInfo {
	out := make(map[int64]article.EnrichmentInfo, len(info))
	for id, e := range info {
		out[id] = e
	}
	return out
}
