// Package config provides application configuration.
package config

import (
	"fmt"
	"time"

	"github.com/wikiseek/wikiseek/domain/language"
)

// Default configuration values.
const (
	DefaultHost                 = "0.0.0.0"
	DefaultPort                 = 8080
	DefaultLogLevel             = "INFO"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultMaxSearchResults     = 50
	DefaultMaxDescriptionLength = 100
	DefaultMaxContentLength     = 300
	DefaultCacheMaxCapacity     = 1000
	DefaultCacheTTL             = 300 * time.Second
	DefaultUserAgent            = "wikiseek/1.0 (https://github.com/wikiseek/wikiseek)"
	DefaultLanguageCode         = "ru"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig is the immutable application configuration. Use the With*
// methods to derive adjusted copies.
type AppConfig struct {
	host      string
	port      int
	logLevel  string
	logFormat LogFormat

	requestTimeout       time.Duration
	maxSearchResults     int
	maxDescriptionLength int
	maxContentLength     int

	cacheMaxCapacity int
	cacheTTL         time.Duration
	cacheEnabled     bool

	userAgent       string
	defaultLanguage string
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		host:                 DefaultHost,
		port:                 DefaultPort,
		logLevel:             DefaultLogLevel,
		logFormat:            LogFormatPretty,
		requestTimeout:       DefaultRequestTimeout,
		maxSearchResults:     DefaultMaxSearchResults,
		maxDescriptionLength: DefaultMaxDescriptionLength,
		maxContentLength:     DefaultMaxContentLength,
		cacheMaxCapacity:     DefaultCacheMaxCapacity,
		cacheTTL:             DefaultCacheTTL,
		cacheEnabled:         true,
		userAgent:            DefaultUserAgent,
		defaultLanguage:      DefaultLanguageCode,
	}
}

// Host returns the server bind host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port listen address.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// RequestTimeout returns the upstream HTTP timeout.
func (c AppConfig) RequestTimeout() time.Duration { return c.requestTimeout }

// MaxSearchResults returns the search result cap.
func (c AppConfig) MaxSearchResults() int { return c.maxSearchResults }

// MaxDescriptionLength returns the display description byte budget.
func (c AppConfig) MaxDescriptionLength() int { return c.maxDescriptionLength }

// MaxContentLength returns the message body byte budget.
func (c AppConfig) MaxContentLength() int { return c.maxContentLength }

// CacheMaxCapacity returns the base cache capacity.
func (c AppConfig) CacheMaxCapacity() int { return c.cacheMaxCapacity }

// CacheTTL returns the cache entry lifetime.
func (c AppConfig) CacheTTL() time.Duration { return c.cacheTTL }

// CacheEnabled returns whether response caching is on.
func (c AppConfig) CacheEnabled() bool { return c.cacheEnabled }

// UserAgent returns the User-Agent header for upstream requests.
func (c AppConfig) UserAgent() string { return c.userAgent }

// DefaultLanguage returns the language code used without a query prefix.
func (c AppConfig) DefaultLanguage() string { return c.defaultLanguage }

// WithHost returns a copy with the host set.
func (c AppConfig) WithHost(host string) AppConfig {
	c.host = host
	return c
}

// WithPort returns a copy with the port set.
func (c AppConfig) WithPort(port int) AppConfig {
	c.port = port
	return c
}

// WithLogLevel returns a copy with the log level set.
func (c AppConfig) WithLogLevel(level string) AppConfig {
	c.logLevel = level
	return c
}

// WithLogFormat returns a copy with the log format set.
func (c AppConfig) WithLogFormat(format LogFormat) AppConfig {
	c.logFormat = format
	return c
}

// WithRequestTimeout returns a copy with the upstream timeout set.
func (c AppConfig) WithRequestTimeout(d time.Duration) AppConfig {
	c.requestTimeout = d
	return c
}

// WithMaxSearchResults returns a copy with the result cap set.
func (c AppConfig) WithMaxSearchResults(n int) AppConfig {
	c.maxSearchResults = n
	return c
}

// WithMaxDescriptionLength returns a copy with the description budget set.
func (c AppConfig) WithMaxDescriptionLength(n int) AppConfig {
	c.maxDescriptionLength = n
	return c
}

// WithMaxContentLength returns a copy with the content budget set.
func (c AppConfig) WithMaxContentLength(n int) AppConfig {
	c.maxContentLength = n
	return c
}

// WithCacheMaxCapacity returns a copy with the cache capacity set.
func (c AppConfig) WithCacheMaxCapacity(n int) AppConfig {
	c.cacheMaxCapacity = n
	return c
}

// WithCacheTTL returns a copy with the cache TTL set.
func (c AppConfig) WithCacheTTL(d time.Duration) AppConfig {
	c.cacheTTL = d
	return c
}

// WithCacheEnabled returns a copy with caching toggled.
func (c AppConfig) WithCacheEnabled(enabled bool) AppConfig {
	c.cacheEnabled = enabled
	return c
}

// WithUserAgent returns a copy with the User-Agent set.
func (c AppConfig) WithUserAgent(ua string) AppConfig {
	c.userAgent = ua
	return c
}

// WithDefaultLanguage returns a copy with the default language code set.
func (c AppConfig) WithDefaultLanguage(code string) AppConfig {
	c.defaultLanguage = code
	return c
}

// Validate checks the configuration for values the application cannot
// run with.
func (c AppConfig) Validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("port %d out of range", c.port)
	}
	if c.requestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.requestTimeout)
	}
	if c.maxSearchResults < 1 {
		return fmt.Errorf("max search results must be positive, got %d", c.maxSearchResults)
	}
	if c.maxDescriptionLength < 1 || c.maxContentLength < 1 {
		return fmt.Errorf("length budgets must be positive")
	}
	if c.cacheMaxCapacity < 1 {
		return fmt.Errorf("cache capacity must be positive, got %d", c.cacheMaxCapacity)
	}
	if _, ok := language.FromCode(c.defaultLanguage); !ok {
		return fmt.Errorf("unknown default language %q", c.defaultLanguage)
	}
	return nil
}
