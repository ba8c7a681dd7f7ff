// Package wikidata resolves short entity descriptions for the
// linked-data ids attached to articles.
package wikidata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/domain/wikierr"
	"github.com/wikiseek/wikiseek/internal/cache"
	"github.com/wikiseek/wikiseek/internal/log"
	"github.com/wikiseek/wikiseek/internal/text"
)

const (
	defaultBaseURL   = "https://www.wikidata.org/w/api.php"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "wikiseek/1.0 (https://github.com/wikiseek/wikiseek)"

	defaultCacheCapacity = 1000
	defaultCacheTTL      = 300 * time.Second
)

// Client talks to the Wikidata action API. Description responses are
// cached by language and sorted id set. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	logger     *log.Logger
	descCache  *cache.Cache[map[string]string]
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

// WithBaseURL overrides the API endpoint (for testing or proxies).
func WithBaseURL(url string) Option {
	return func(w *Client) { w.baseURL = url }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(w *Client) { w.logger = l }
}

// WithCache configures the description cache.
func WithCache(capacity int, ttl time.Duration, enabled bool) Option {
	return func(w *Client) {
		w.descCache = cache.New[map[string]string](capacity, ttl, enabled)
	}
}

// NewClient creates a Wikidata API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
		baseURL:    defaultBaseURL,
		logger:     log.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.descCache == nil {
		c.descCache = cache.New[map[string]string](defaultCacheCapacity, defaultCacheTTL, true)
	}

	return c
}

// entitiesResponse is the wbgetentities response payload.
type entitiesResponse struct {
	Entities map[string]struct {
		Descriptions map[string]struct {
			Language string `json:"language"`
			Value    string `json:"value"`
		} `json:"descriptions"`
	} `json:"entities"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Descriptions resolves short descriptions for the given entity ids in
// the given language only. Ids whose description is missing or cleans
// to empty are absent from the result.
func (c *Client) Descriptions(ctx context.Context, lang language.Language, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	key := cache.IDKey("wikidata", lang.Code(), ids)
	if descs, ok := c.descCache.Get(key); ok {
		c.logger.DebugContext(ctx, "description cache hit", "key", key)
		return copyDescriptions(descs), nil
	}

	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("format", "json")
	params.Set("ids", strings.Join(ids, "|"))
	params.Set("props", "descriptions")
	params.Set("languages", lang.Code())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, wikierr.Internal("build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, wikierr.Timeout(err)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, wikierr.Timeout(err)
		}
		return nil, wikierr.Network("wikidata request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, wikierr.Network(fmt.Sprintf("wikidata returned status %d", resp.StatusCode), nil)
	}

	var decoded entitiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, wikierr.Parse("decode wikidata response", err)
	}
	if decoded.Error != nil {
		return nil, wikierr.UnexpectedResponse("wikidata error: " + decoded.Error.Info)
	}

	descriptions := make(map[string]string, len(decoded.Entities))
	for id, entity := range decoded.Entities {
		desc, ok := entity.Descriptions[lang.Code()]
		if !ok {
			continue
		}
		// Clean before the blank check: markup-only values must be
		// dropped, not inserted as empty strings.
		cleaned := text.CleanDescription(desc.Value)
		if cleaned == "" {
			continue
		}
		descriptions[id] = cleaned
	}

	c.logger.DebugContext(ctx, "descriptions fetched",
		"lang", lang.Code(), "requested", len(ids), "resolved", len(descriptions))

	c.descCache.Add(key, copyDescriptions(descriptions))
	return descriptions, nil
}

func copyDescriptions(descs map[string]string) map[string]string {
	out := make(map[string]string, len(descs))
	for id, d := range descs {
		out[id] = d
	}
	return out
}
