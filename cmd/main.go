package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	service "github.com/okian/sports/internal/app"
	"github.com/okian/sports/internal/config"
	"github.com/okian/sports/internal/domain/rating"
	"github.com/okian/sports/internal/domain/types"
	"github.com/okian/sports/pkg/logger"
	"github.com/okian/sports/pkg/metrics"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Logs go to stderr so stdout only carries results.
	if err := logger.Init(logger.WithWriter(os.Stderr), logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := run(ctx, os.Stdout, cfg, log); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// run seeds a catalog built from cfg and writes the evaluations to w.
func run(ctx context.Context, w io.Writer, cfg *config.Config, log logger.Logger) error {
	policy, err := service.ParseCategoryPolicy(cfg.CategoryPolicy)
	if err != nil {
		return err
	}

	m := metrics.NewManager()
	catalog := service.New(
		service.WithLogger(log.Named("catalog")),
		service.WithMetrics(m),
		service.WithCategoryPolicy(policy),
		service.WithRatingPolicy(rating.NewPolicy(
			rating.WithStarRange(cfg.MinStars, cfg.MaxStars),
			rating.WithPrecision(cfg.AveragePrecision),
		)),
	)

	if err := seed(ctx, catalog); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	stats := catalog.Stats(ctx)
	log.Info(ctx, "catalog seeded",
		logger.Int("activities", stats.Activities),
		logger.Int("categories", stats.Categories),
		logger.Int("products", stats.Products),
		logger.Int("ratings", stats.Ratings),
	)

	lines := []string{
		"Average Stars of Nike Zoom: " + formatStars(catalog.StarsOfProduct(ctx, "Nike Zoom")),
		"Overall Average Stars: " + formatStars(catalog.AverageStars(ctx)),
		"Stars Per Activity: " + formatActivityStars(catalog.StarsPerActivity(ctx)),
		"Products Per Stars: " + formatStarsGroups(catalog.ProductsPerStars(ctx)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}

	if cfg.MetricsDump {
		samples, err := m.Snapshot()
		if err != nil {
			return err
		}
		for _, s := range samples {
			log.Info(ctx, "metric", logger.String("name", s.Name), logger.Float64("value", s.Value))
		}
	}
	return nil
}

// seed loads the sample portal: three activities, two categories, two
// products and three ratings.
func seed(ctx context.Context, c *service.Catalog) error {
	steps := []func() error{
		func() error { return c.DefineActivities(ctx, "Football", "Tennis", "Running") },
		func() error { return c.AddCategory(ctx, "Shoes", "Running", "Tennis") },
		func() error { return c.AddCategory(ctx, "Balls", "Football", "Tennis") },
		func() error { return c.AddProduct(ctx, "Nike Zoom", "Running", "Shoes") },
		func() error { return c.AddProduct(ctx, "Adidas Ball", "Football", "Balls") },
		func() error { return c.AddRating(ctx, "Nike Zoom", "Alice", 5, "Very comfortable") },
		func() error { return c.AddRating(ctx, "Nike Zoom", "Bob", 4, "Good shoes") },
		func() error { return c.AddRating(ctx, "Adidas Ball", "Charlie", 3, "Nice ball") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func formatStars(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatActivityStars(in []types.ActivityStars) string {
	parts := make([]string, len(in))
	for i, a := range in {
		parts[i] = a.Activity + "=" + formatStars(a.Average)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatStarsGroups(in []types.StarsGroup) string {
	parts := make([]string, len(in))
	for i, g := range in {
		parts[i] = formatStars(g.Average) + "=[" + strings.Join(g.Products, ", ") + "]"
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
