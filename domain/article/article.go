// Package article provides the article data model for the enrichment
// pipeline: search hits, per-page enrichment data and the assembled
// enriched article, together with the ranking rules applied to them.
package article

import (
	"fmt"

	"github.com/wikiseek/wikiseek/internal/text"
)

// SearchHit is one lightweight full-text search result. Immutable once
// created.
type SearchHit struct {
	title     string
	snippet   string
	pageID    int64
	hasPageID bool
	size      int
	wordCount int
	timestamp string
}

// NewSearchHit creates a SearchHit without a document id.
func NewSearchHit(title, snippet string) SearchHit {
	return SearchHit{title: title, snippet: snippet}
}

// WithPageID returns a copy of the hit carrying a document id.
func (h SearchHit) WithPageID(id int64) SearchHit {
	h.pageID = id
	h.hasPageID = true
	return h
}

// WithStats returns a copy of the hit carrying size, word count and
// timestamp metadata.
func (h SearchHit) WithStats(size, wordCount int, timestamp string) SearchHit {
	h.size = size
	h.wordCount = wordCount
	h.timestamp = timestamp
	return h
}

// Title returns the article title.
func (h SearchHit) Title() string { return h.title }

// Snippet returns the HTML-cleaned search snippet.
func (h SearchHit) Snippet() string { return h.snippet }

// PageID returns the document id and whether one is present.
func (h SearchHit) PageID() (int64, bool) { return h.pageID, h.hasPageID }

// Size returns the article byte size reported by the search endpoint.
func (h SearchHit) Size() int { return h.size }

// WordCount returns the article word count, zero when unknown.
func (h SearchHit) WordCount() int { return h.wordCount }

// Timestamp returns the last-edit timestamp string.
func (h SearchHit) Timestamp() string { return h.timestamp }

// Coordinates is a geographic point attached to an article.
type Coordinates struct {
	Lat float64
	Lon float64
}

// EnrichmentInfo carries the per-page detail data fetched in a batch:
// lead extract, thumbnail, linked-data id, coordinates and categories.
// Immutable once created; keyed by document id.
type EnrichmentInfo struct {
	imageURL    string
	extract     string
	wikidataID  string
	coordinates *Coordinates
	categories  []string
}

// NewEnrichmentInfo creates an EnrichmentInfo. Empty strings stand for
// absent fields; coordinates may be nil.
func NewEnrichmentInfo(imageURL, extract, wikidataID string, coordinates *Coordinates, categories []string) EnrichmentInfo {
	cats := make([]string, len(categories))
	copy(cats, categories)
	var coords *Coordinates
	if coordinates != nil {
		c := *coordinates
		coords = &c
	}
	return EnrichmentInfo{
		imageURL:    imageURL,
		extract:     extract,
		wikidataID:  wikidataID,
		coordinates: coords,
		categories:  cats,
	}
}

// ImageURL returns the thumbnail URL, empty when none.
func (e EnrichmentInfo) ImageURL() string { return e.imageURL }

// Extract returns the plain-text lead extract, empty when none.
func (e EnrichmentInfo) Extract() string { return e.extract }

// WikidataID returns the linked-data cross-reference id, empty when none.
func (e EnrichmentInfo) WikidataID() string { return e.wikidataID }

// Coordinates returns the article coordinates and whether any are set.
func (e EnrichmentInfo) Coordinates() (Coordinates, bool) {
	if e.coordinates == nil {
		return Coordinates{}, false
	}
	return *e.coordinates, true
}

// Categories returns the article categories in upstream order.
func (e EnrichmentInfo) Categories() []string {
	result := make([]string, len(e.categories))
	copy(result, e.categories)
	return result
}

// noIndex marks an article without an upstream relevance index.
const noIndex = -1

// Enriched is a fully assembled article: the search hit, its batch
// enrichment, an optional linked-data description and the canonical URL.
// The relevance index is set only when the upstream supplied a rank
// (lower is better); unranked articles fall back to heuristic scoring.
type Enriched struct {
	hit            SearchHit
	info           *EnrichmentInfo
	description    string
	url            string
	relevanceIndex int
}

// NewEnriched assembles an enriched article. info may be nil when the
// batch carried no data for the page.
func NewEnriched(hit SearchHit, info *EnrichmentInfo, url string) Enriched {
	var copied *EnrichmentInfo
	if info != nil {
		c := *info
		copied = &c
	}
	return Enriched{
		hit:            hit,
		info:           copied,
		url:            url,
		relevanceIndex: noIndex,
	}
}

// WithRelevanceIndex returns a copy carrying an upstream relevance index.
func (a Enriched) WithRelevanceIndex(index int) Enriched {
	a.relevanceIndex = index
	return a
}

// WithDescription returns a copy carrying a linked-data description.
// This is the only mutation an article sees after assembly.
func (a Enriched) WithDescription(description string) Enriched {
	a.description = description
	return a
}

// Hit returns the underlying search hit.
func (a Enriched) Hit() SearchHit { return a.hit }

// Info returns the batch enrichment and whether any was attached.
func (a Enriched) Info() (EnrichmentInfo, bool) {
	if a.info == nil {
		return EnrichmentInfo{}, false
	}
	return *a.info, true
}

// Description returns the linked-data description, empty when none.
func (a Enriched) Description() string { return a.description }

// URL returns the canonical article URL. Never empty.
func (a Enriched) URL() string { return a.url }

// RelevanceIndex returns the upstream rank and whether one was supplied.
func (a Enriched) RelevanceIndex() (int, bool) {
	return a.relevanceIndex, a.relevanceIndex != noIndex
}

// ImageURL returns the thumbnail URL, empty when none.
func (a Enriched) ImageURL() string {
	if a.info == nil {
		return ""
	}
	return a.info.imageURL
}

// WikidataID returns the cross-reference id, empty when none.
func (a Enriched) WikidataID() string {
	if a.info == nil {
		return ""
	}
	return a.info.wikidataID
}

// WordCount returns the word count from the search hit, zero when
// unknown (the unified path never populates it).
func (a Enriched) WordCount() int { return a.hit.wordCount }

// BestDescription picks the short display description: lead extract,
// then search snippet, then a placeholder naming the title. The first
// non-blank candidate wins, truncated at a word boundary.
func (a Enriched) BestDescription(max int) string {
	candidates := []func() string{
		func() string {
			if a.info != nil {
				return a.info.extract
			}
			return ""
		},
		func() string { return a.hit.snippet },
	}
	for _, candidate := range candidates {
		if s := candidate(); !text.IsBlank(s) {
			return text.Truncate(s, max)
		}
	}
	return fmt.Sprintf("Wikipedia article: %s", a.hit.title)
}

// BestContent picks the message body text: lead extract when non-blank,
// otherwise the search snippet, truncated at a word boundary.
func (a Enriched) BestContent(max int) string {
	if a.info != nil && !text.IsBlank(a.info.extract) {
		return text.Truncate(a.info.extract, max)
	}
	return text.Truncate(a.hit.snippet, max)
}
