// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; Load layers an optional YAML file and env vars
//   on top of them.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CacheTTLHours bounds how long cached fetches and the derived
	// dataset stay fresh.
	CacheTTLHours int `koanf:"cache_ttl_hours"`

	// FetchPaceMS is the courtesy delay between provider calls.
	FetchPaceMS int `koanf:"fetch_pace_ms"`

	// RetryMaxAttempts caps provider retries after the first try.
	RetryMaxAttempts int `koanf:"retry_max_attempts"`

	// RetryInitialBackoffMS seeds the exponential backoff.
	RetryInitialBackoffMS int `koanf:"retry_initial_backoff_ms"`

	// ProviderBaseURL points at the stats provider, overridable for
	// testing against a local stub.
	ProviderBaseURL string `koanf:"provider_base_url"`

	// ProviderTimeoutMS bounds a single provider request.
	ProviderTimeoutMS int `koanf:"provider_timeout_ms"`

	// TopLimitMax caps GET /api/top?limit.
	TopLimitMax int `koanf:"top_limit_max"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":8080",
		CacheTTLHours:         7 * 24,
		FetchPaceMS:           350,
		RetryMaxAttempts:      3,
		RetryInitialBackoffMS: 500,
		ProviderBaseURL:       "",
		ProviderTimeoutMS:     30_000,
		TopLimitMax:           30,
	}
}

// CacheTTL returns the cache expiry as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// FetchPace returns the inter-fetch delay as a duration.
func (c *Config) FetchPace() time.Duration {
	return time.Duration(c.FetchPaceMS) * time.Millisecond
}

// RetryInitialBackoff returns the first backoff interval as a duration.
func (c *Config) RetryInitialBackoff() time.Duration {
	return time.Duration(c.RetryInitialBackoffMS) * time.Millisecond
}

// ProviderTimeout returns the per-request provider timeout as a duration.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutMS) * time.Millisecond
}
