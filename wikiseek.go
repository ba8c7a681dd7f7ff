// Package wikiseek provides a library for searching Wikipedia with
// enrichment: search hits are combined with page details (extracts,
// thumbnails, coordinates, categories), linked-data descriptions and a
// relevance ranking.
//
// Basic usage:
//
//	client, err := wikiseek.New(
//	    wikiseek.WithUserAgent("mybot/1.0"),
//	    wikiseek.WithMaxSearchResults(20),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Articles.Query(ctx, "en: sea of okhotsk")
//	for _, a := range result.Articles() {
//	    fmt.Println(a.Hit().Title(), a.URL())
//	}
package wikiseek

import (
	"github.com/wikiseek/wikiseek/application/service"
	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/infrastructure/wikidata"
	"github.com/wikiseek/wikiseek/infrastructure/wikipedia"
	"github.com/wikiseek/wikiseek/internal/config"
	"github.com/wikiseek/wikiseek/internal/log"
)

// Client is the main entry point for the wikiseek library.
//
// Access the pipeline via the Articles field:
//
//	client.Articles.Query(ctx, "en: golang")
type Client struct {
	// Articles runs the search-and-enrich pipeline.
	Articles *service.Enrichment

	wikipedia *wikipedia.Client
	wikidata  *wikidata.Client
	logger    *log.Logger
	cfg       config.AppConfig
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	cc := newClientConfig()

	for _, opt := range opts {
		opt(cc)
	}

	if err := cc.cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cc.logger
	if logger == nil {
		logger = log.Discard()
	}

	cfg := cc.cfg

	wikipediaOpts := []wikipedia.Option{
		wikipedia.WithTimeout(cfg.RequestTimeout()),
		wikipedia.WithUserAgent(cfg.UserAgent()),
		wikipedia.WithLogger(logger),
		wikipedia.WithCache(cfg.CacheMaxCapacity(), cfg.CacheTTL(), cfg.CacheEnabled()),
	}
	if cc.httpClient != nil {
		wikipediaOpts = append([]wikipedia.Option{wikipedia.WithHTTPClient(cc.httpClient)}, wikipediaOpts...)
	}
	if cc.wikipediaBaseURL != "" {
		wikipediaOpts = append(wikipediaOpts, wikipedia.WithBaseURL(cc.wikipediaBaseURL))
	}

	wikidataOpts := []wikidata.Option{
		wikidata.WithTimeout(cfg.RequestTimeout()),
		wikidata.WithUserAgent(cfg.UserAgent()),
		wikidata.WithLogger(logger),
		wikidata.WithCache(cfg.CacheMaxCapacity(), cfg.CacheTTL(), cfg.CacheEnabled()),
	}
	if cc.httpClient != nil {
		wikidataOpts = append([]wikidata.Option{wikidata.WithHTTPClient(cc.httpClient)}, wikidataOpts...)
	}
	if cc.wikidataBaseURL != "" {
		wikidataOpts = append(wikidataOpts, wikidata.WithBaseURL(cc.wikidataBaseURL))
	}

	wp := wikipedia.NewClient(wikipediaOpts...)
	wd := wikidata.NewClient(wikidataOpts...)

	defaultLang, ok := language.FromCode(cfg.DefaultLanguage())
	if !ok {
		defaultLang = language.Default()
	}

	articles := service.NewEnrichment(wp, wd,
		service.WithLogger(logger),
		service.WithMaxResults(cfg.MaxSearchResults()),
		service.WithDefaultLanguage(defaultLang),
		service.WithCache(cfg.CacheMaxCapacity(), cfg.CacheTTL(), cfg.CacheEnabled()),
	)

	return &Client{
		Articles:  articles,
		wikipedia: wp,
		wikidata:  wd,
		logger:    logger,
		cfg:       cfg,
	}, nil
}

// Logger returns the client logger.
func (c *Client) Logger() *log.Logger {
	return c.logger
}

// Config returns the effective configuration.
func (c *Client) Config() config.AppConfig {
	return c.cfg
}

// Wikipedia returns the underlying MediaWiki client.
func (c *Client) Wikipedia() *wikipedia.Client {
	return c.wikipedia
}

// Wikidata returns the underlying Wikidata client.
func (c *Client) Wikidata() *wikidata.Client {
	return c.wikidata
}
