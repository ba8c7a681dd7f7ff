package wikiseek

import (
	"net/http"
	"time"

	"github.com/wikiseek/wikiseek/internal/config"
	"github.com/wikiseek/wikiseek/internal/log"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	cfg              config.AppConfig
	logger           *log.Logger
	httpClient       *http.Client
	wikipediaBaseURL string
	wikidataBaseURL  string
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		cfg: config.NewAppConfig(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithConfig replaces the whole configuration. Options applied after
// this one override individual fields.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) { c.cfg = cfg }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

// WithHTTPClient sets the HTTP client shared by the upstream clients.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header for upstream requests.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) { c.cfg = c.cfg.WithUserAgent(ua) }
}

// WithTimeout sets the upstream HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.cfg = c.cfg.WithRequestTimeout(d) }
}

// WithMaxSearchResults caps the number of articles per query.
func WithMaxSearchResults(n int) Option {
	return func(c *clientConfig) { c.cfg = c.cfg.WithMaxSearchResults(n) }
}

// WithCache configures response caching.
func WithCache(capacity int, ttl time.Duration, enabled bool) Option {
	return func(c *clientConfig) {
		c.cfg = c.cfg.WithCacheMaxCapacity(capacity).WithCacheTTL(ttl).WithCacheEnabled(enabled)
	}
}

// WithDefaultLanguage sets the language code used when a query carries
// no prefix.
func WithDefaultLanguage(code string) Option {
	return func(c *clientConfig) { c.cfg = c.cfg.WithDefaultLanguage(code) }
}

// WithWikipediaBaseURL overrides the per-language MediaWiki endpoint
// (for testing or proxies).
func WithWikipediaBaseURL(url string) Option {
	return func(c *clientConfig) { c.wikipediaBaseURL = url }
}

// WithWikidataBaseURL overrides the Wikidata endpoint (for testing or
// proxies).
func WithWikidataBaseURL(url string) Option {
	return func(c *clientConfig) { c.wikidataBaseURL = url }
}
