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

const (
	envPrefix     = "SPORTS_"
	envConfigFile = "SPORTS_CONFIG"
	maxPrecision  = 10
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SPORTS_CONFIG is set
//  3. env (prefix SPORTS_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// SPORTS_MIN_STARS -> min_stars; underscores are kept to match koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}
	// the file path itself is not a config key
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.MinStars < 0:
		return fmt.Errorf("%w: min_stars must not be negative", ErrInvalidConfig)
	case c.MaxStars < c.MinStars:
		return fmt.Errorf("%w: max_stars must be >= min_stars", ErrInvalidConfig)
	case c.AveragePrecision < 0 || c.AveragePrecision > maxPrecision:
		return fmt.Errorf("%w: average_precision must be within [0, %d]", ErrInvalidConfig, maxPrecision)
	}

	switch strings.ToLower(strings.TrimSpace(c.CategoryPolicy)) {
	case "reject", "overwrite":
	default:
		return fmt.Errorf("%w: category_policy must be reject or overwrite, got %q", ErrInvalidConfig, c.CategoryPolicy)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
