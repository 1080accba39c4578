package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HOOP_CONFIG is set
//  3. env (prefix HOOP_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HOOP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: HOOP_ADDR, HOOP_CACHE_TTL_HOURS, ...
	// Keys map flat, preserving underscores to match the koanf tags.
	envProvider := env.Provider("HOOP_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "hoop_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.CacheTTLHours <= 0:
		return fmt.Errorf("%w: cache_ttl_hours must be positive", ErrInvalidConfig)
	case cfg.FetchPaceMS < 0:
		return fmt.Errorf("%w: fetch_pace_ms must not be negative", ErrInvalidConfig)
	case cfg.RetryMaxAttempts < 0:
		return fmt.Errorf("%w: retry_max_attempts must not be negative", ErrInvalidConfig)
	case cfg.TopLimitMax <= 0:
		return fmt.Errorf("%w: top_limit_max must be positive", ErrInvalidConfig)
	}
	return nil
}
