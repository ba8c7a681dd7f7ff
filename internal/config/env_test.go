package config

import (
	"testing"
	"time"
)

func TestToAppConfigAppliesOverrides(t *testing.T) {
	enabled := false
	env := EnvConfig{
		Host:                  "127.0.0.1",
		Port:                  9090,
		LogLevel:              "debug",
		LogFormat:             "JSON",
		RequestTimeoutSeconds: 5,
		MaxSearchResults:      20,
		MaxDescriptionLength:  80,
		MaxContentLength:      200,
		CacheMaxCapacity:      100,
		CacheTTLSeconds:       60,
		CacheEnabled:          &enabled,
		UserAgent:             "custom/1.0",
		DefaultLanguage:       "EN",
	}

	cfg := env.ToAppConfig()

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %s", cfg.Addr())
	}
	if cfg.LogFormat() != LogFormatJSON {
		t.Errorf("LogFormat() = %s", cfg.LogFormat())
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Errorf("RequestTimeout() = %s", cfg.RequestTimeout())
	}
	if cfg.MaxSearchResults() != 20 {
		t.Errorf("MaxSearchResults() = %d", cfg.MaxSearchResults())
	}
	if cfg.CacheTTL() != time.Minute {
		t.Errorf("CacheTTL() = %s", cfg.CacheTTL())
	}
	if cfg.CacheEnabled() {
		t.Error("cache should be disabled by the override")
	}
	if cfg.UserAgent() != "custom/1.0" {
		t.Errorf("UserAgent() = %s", cfg.UserAgent())
	}
	if cfg.DefaultLanguage() != "en" {
		t.Errorf("DefaultLanguage() = %s", cfg.DefaultLanguage())
	}
}

func TestToAppConfigZeroValuesKeepDefaults(t *testing.T) {
	cfg := EnvConfig{}.ToAppConfig()

	if cfg.Port() != DefaultPort {
		t.Errorf("Port() = %d", cfg.Port())
	}
	if cfg.RequestTimeout() != DefaultRequestTimeout {
		t.Errorf("RequestTimeout() = %s", cfg.RequestTimeout())
	}
	if !cfg.CacheEnabled() {
		t.Error("unset CACHE_ENABLED should keep caching on")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8181")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("REQUEST_TIMEOUT", "2.5")

	env, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error: %v", err)
	}

	if env.Port != 8181 {
		t.Errorf("Port = %d", env.Port)
	}
	if env.CacheEnabled == nil || *env.CacheEnabled {
		t.Error("CACHE_ENABLED=false not picked up")
	}

	cfg := env.ToAppConfig()
	if cfg.RequestTimeout() != 2500*time.Millisecond {
		t.Errorf("RequestTimeout() = %s", cfg.RequestTimeout())
	}
}

func TestLoadFromEnvWithPrefix(t *testing.T) {
	t.Setenv("WIKISEEK_PORT", "8282")

	env, err := LoadFromEnvWithPrefix("WIKISEEK")
	if err != nil {
		t.Fatalf("LoadFromEnvWithPrefix() error: %v", err)
	}
	if env.Port != 8282 {
		t.Errorf("Port = %d", env.Port)
	}
}
