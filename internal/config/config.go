// Package config defines process configuration and its loading hooks.
//
// Conventions:
// - New(ctx) returns a Config populated with defaults.
// - Load(ctx) layers an optional YAML file and SPORTS_* env vars on top.
// - Errors returned to callers wrap this package's sentinel kinds.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// MinStars and MaxStars bound accepted rating values, inclusive.
	MinStars int `koanf:"min_stars"`
	MaxStars int `koanf:"max_stars"`

	// CategoryPolicy decides duplicate category names: reject or overwrite.
	CategoryPolicy string `koanf:"category_policy"`

	// AveragePrecision is the number of decimal places averages are rounded
	// to when products are grouped by rating.
	AveragePrecision int `koanf:"average_precision"`

	// MetricsDump logs every gathered metric after the demo run.
	MetricsDump bool `koanf:"metrics_dump"`
}

// New creates a Config with defaults. Context is accepted first by
// convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		MinStars:         0,
		MaxStars:         5,
		CategoryPolicy:   "reject",
		AveragePrecision: 2,
		MetricsDump:      false,
	}
}
