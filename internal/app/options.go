package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/sports/internal/adapters/repository"
	"github.com/okian/sports/internal/domain/rating"
	"github.com/okian/sports/pkg/logger"
	"github.com/okian/sports/pkg/metrics"
)

// CategoryPolicy decides what happens when a category name is defined twice.
type CategoryPolicy int

const (
	// CategoryReject fails the second definition with ErrDuplicateCategory.
	CategoryReject CategoryPolicy = iota
	// CategoryOverwrite replaces the links of the existing category.
	CategoryOverwrite
)

func (p CategoryPolicy) String() string {
	switch p {
	case CategoryOverwrite:
		return "overwrite"
	default:
		return "reject"
	}
}

// ParseCategoryPolicy accepts "reject" or "overwrite" (case-insensitive).
func ParseCategoryPolicy(s string) (CategoryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject":
		return CategoryReject, nil
	case "overwrite":
		return CategoryOverwrite, nil
	default:
		return CategoryReject, fmt.Errorf("unknown category policy: %q", s)
	}
}

// Option applies a configuration option to the Catalog.
type Option func(*Catalog)

// WithStore sets the backing store.
func WithStore(store repository.Store) Option {
	return func(c *Catalog) {
		if store != nil {
			c.store = store
		}
	}
}

// WithRatingPolicy sets the star range and rounding policy.
func WithRatingPolicy(p *rating.Policy) Option {
	return func(c *Catalog) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithCategoryPolicy sets how duplicate category names are handled.
func WithCategoryPolicy(p CategoryPolicy) Option {
	return func(c *Catalog) {
		c.categoryPolicy = p
	}
}

// WithLogger sets a custom logger for the catalog.
func WithLogger(l logger.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Catalog) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithClock sets the time source used to stamp ratings.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}
