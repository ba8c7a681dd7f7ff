package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration. Zero values mean
// "not set" and keep the application default.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT"`

	// RequestTimeoutSeconds is the upstream HTTP timeout in seconds.
	// Env: REQUEST_TIMEOUT (default: 30)
	RequestTimeoutSeconds float64 `envconfig:"REQUEST_TIMEOUT"`

	// MaxSearchResults caps the number of articles per query.
	// Env: MAX_SEARCH_RESULTS (default: 50)
	MaxSearchResults int `envconfig:"MAX_SEARCH_RESULTS"`

	// MaxDescriptionLength is the display description byte budget.
	// Env: MAX_DESCRIPTION_LENGTH (default: 100)
	MaxDescriptionLength int `envconfig:"MAX_DESCRIPTION_LENGTH"`

	// MaxContentLength is the message body byte budget.
	// Env: MAX_CONTENT_LENGTH (default: 300)
	MaxContentLength int `envconfig:"MAX_CONTENT_LENGTH"`

	// CacheMaxCapacity is the base cache capacity; derived caches take
	// fractions of it.
	// Env: CACHE_MAX_CAPACITY (default: 1000)
	CacheMaxCapacity int `envconfig:"CACHE_MAX_CAPACITY"`

	// CacheTTLSeconds is the cache entry lifetime in seconds.
	// Env: CACHE_TTL_SECONDS (default: 300)
	CacheTTLSeconds float64 `envconfig:"CACHE_TTL_SECONDS"`

	// CacheEnabled toggles response caching.
	// Env: CACHE_ENABLED (default: true)
	CacheEnabled *bool `envconfig:"CACHE_ENABLED"`

	// UserAgent is the User-Agent header sent upstream.
	// Env: USER_AGENT
	UserAgent string `envconfig:"USER_AGENT"`

	// DefaultLanguage is the language code used without a query prefix.
	// Env: DEFAULT_LANGUAGE (default: ru)
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix. For
// example, prefix "WIKISEEK" would require WIKISEEK_PORT instead of PORT.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig, applying set values over
// the defaults.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = cfg.WithHost(e.Host)
	}
	if e.Port != 0 {
		cfg = cfg.WithPort(e.Port)
	}
	if e.LogLevel != "" {
		cfg = cfg.WithLogLevel(e.LogLevel)
	}
	if e.LogFormat != "" {
		cfg = cfg.WithLogFormat(parseLogFormat(e.LogFormat))
	}
	if e.RequestTimeoutSeconds > 0 {
		cfg = cfg.WithRequestTimeout(secondsToDuration(e.RequestTimeoutSeconds))
	}
	if e.MaxSearchResults > 0 {
		cfg = cfg.WithMaxSearchResults(e.MaxSearchResults)
	}
	if e.MaxDescriptionLength > 0 {
		cfg = cfg.WithMaxDescriptionLength(e.MaxDescriptionLength)
	}
	if e.MaxContentLength > 0 {
		cfg = cfg.WithMaxContentLength(e.MaxContentLength)
	}
	if e.CacheMaxCapacity > 0 {
		cfg = cfg.WithCacheMaxCapacity(e.CacheMaxCapacity)
	}
	if e.CacheTTLSeconds > 0 {
		cfg = cfg.WithCacheTTL(secondsToDuration(e.CacheTTLSeconds))
	}
	if e.CacheEnabled != nil {
		cfg = cfg.WithCacheEnabled(*e.CacheEnabled)
	}
	if e.UserAgent != "" {
		cfg = cfg.WithUserAgent(e.UserAgent)
	}
	if e.DefaultLanguage != "" {
		cfg = cfg.WithDefaultLanguage(strings.ToLower(e.DefaultLanguage))
	}

	return cfg
}

func parseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
