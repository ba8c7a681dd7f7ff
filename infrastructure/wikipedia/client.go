// Package wikipedia provides the MediaWiki API client used by the
// article pipeline: full-text search, batched page detail fetches and
// the combined search-plus-detail request.
package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/wikiseek/wikiseek/domain/article"
	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/domain/wikierr"
	"github.com/wikiseek/wikiseek/internal/cache"
	"github.com/wikiseek/wikiseek/internal/log"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "wikiseek/1.0 (https://github.com/wikiseek/wikiseek)"

	defaultCacheCapacity = 1000
	defaultCacheTTL      = 300 * time.Second

	// searchProps are the metadata fields requested per search hit.
	searchProps = "snippet|titlesnippet|size|wordcount|timestamp"

	// detailProps are the page properties fetched during enrichment.
	detailProps = "extracts|pageimages|pageprops|coordinates|categories"

	thumbnailSize   = 300
	categoriesLimit = 10

	// unifiedExtractChars bounds the extract length on the combined
	// search-plus-detail request.
	unifiedExtractChars = 400
)

// Client talks to the MediaWiki API of a language edition. Search and
// batch detail responses are cached per language. Safe for concurrent
// use.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	baseURL     string
	logger      *log.Logger
	searchCache *cache.Cache[[]article.SearchHit]
	batchCache  *cache.Cache[map[int64]article.EnrichmentInfo]

	cacheCapacity int
	cacheTTL      time.Duration
	cacheEnabled  bool
}

// Option is a functional option for Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(w *Client) { w.httpClient = c }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(w *Client) { w.httpClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(w *Client) { w.userAgent = ua }
}

// WithBaseURL overrides the per-language API endpoint (for testing or
// proxies).
func WithBaseURL(url string) Option {
	return func(w *Client) { w.baseURL = url }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(w *Client) { w.logger = l }
}

// WithCache configures the response caches. The search cache gets the
// full capacity, the batch cache half of it.
func WithCache(capacity int, ttl time.Duration, enabled bool) Option {
	return func(w *Client) {
		w.cacheCapacity = capacity
		w.cacheTTL = ttl
		w.cacheEnabled = enabled
	}
}

// NewClient creates a MediaWiki API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: defaultTimeout},
		userAgent:     defaultUserAgent,
		logger:        log.Discard(),
		cacheCapacity: defaultCacheCapacity,
		cacheTTL:      defaultCacheTTL,
		cacheEnabled:  true,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.searchCache = cache.New[[]article.SearchHit](c.cacheCapacity, c.cacheTTL, c.cacheEnabled)
	c.batchCache = cache.New[map[int64]article.EnrichmentInfo](c.cacheCapacity/2, c.cacheTTL, c.cacheEnabled)

	return c
}

// ArticleURL returns the canonical URL for a title on the given
// language edition.
func (c *Client) ArticleURL(lang language.Language, title string) string {
	return lang.ArticleURL(title)
}

func (c *Client) endpoint(lang language.Language) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return lang.APIURL()
}

// apiError is the error object MediaWiki embeds in a 200 response.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// doGet performs a GET against the language endpoint and decodes the
// JSON body into target. Transport, status and decode failures map to
// typed pipeline errors.
func (c *Client) doGet(ctx context.Context, lang language.Language, params url.Values, target any) error {
	params.Set("format", "json")

	reqURL := c.endpoint(lang) + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return wikierr.Internal("build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return wikierr.Timeout(err)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return wikierr.Timeout(err)
		}
		return wikierr.Network("wikipedia request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return wikierr.Network(fmt.Sprintf("wikipedia returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return wikierr.Parse("decode wikipedia response", err)
	}

	return nil
}
