package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okian/sports/internal/domain/model"
	"github.com/okian/sports/internal/domain/rating"
	"github.com/okian/sports/internal/domain/types"
)

// Activities returns every defined activity, sorted.
func (c *Catalog) Activities(ctx context.Context) []string {
	defer c.observe("activities", time.Now())
	return c.store.Activities(ctx)
}

// CategoriesForActivity returns the sorted names of categories linked to activity.
func (c *Catalog) CategoriesForActivity(ctx context.Context, activity string) []string {
	defer c.observe("categories_for_activity", time.Now())

	out := []string{}
	for _, cat := range c.store.Categories(ctx) {
		if cat.Links(activity) {
			out = append(out, cat.Name)
		}
	}
	return out
}

// ProductsForCategory returns the sorted names of products in category.
func (c *Catalog) ProductsForCategory(ctx context.Context, category string) []string {
	defer c.observe("products_for_category", time.Now())
	return c.productNames(ctx, func(p model.Product) bool { return p.Category == category })
}

// ProductsForActivity returns the sorted names of products for activity.
func (c *Catalog) ProductsForActivity(ctx context.Context, activity string) []string {
	defer c.observe("products_for_activity", time.Now())
	return c.productNames(ctx, func(p model.Product) bool { return p.Activity == activity })
}

// Products returns the sorted names of products for activity whose category
// is one of categories.
func (c *Catalog) Products(ctx context.Context, activity string, categories ...string) []string {
	defer c.observe("products", time.Now())
	return c.productNames(ctx, func(p model.Product) bool {
		return p.Activity == activity && slices.Contains(categories, p.Category)
	})
}

// RatingsForProduct returns the product's ratings by descending stars.
// Equal stars keep insertion order. Unknown products yield an empty list.
func (c *Catalog) RatingsForProduct(ctx context.Context, product string) []model.Rating {
	defer c.observe("ratings_for_product", time.Now())

	p, err := c.store.Product(ctx, product)
	if err != nil {
		return []model.Rating{}
	}
	out := p.Ratings
	if out == nil {
		out = []model.Rating{}
	}
	slices.SortStableFunc(out, func(a, b model.Rating) int { return cmp.Compare(b.Stars, a.Stars) })
	return out
}

// StarsOfProduct returns the mean stars of a product; 0 when it has no
// ratings or does not exist.
func (c *Catalog) StarsOfProduct(ctx context.Context, product string) float64 {
	defer c.observe("stars_of_product", time.Now())

	p, err := c.store.Product(ctx, product)
	if err != nil {
		return 0
	}
	return rating.Mean(p.Stars())
}

// AverageStars returns the mean of every rating across all products.
func (c *Catalog) AverageStars(ctx context.Context) float64 {
	defer c.observe("average_stars", time.Now())

	var all []int
	for _, p := range c.store.Products(ctx) {
		all = append(all, p.Stars()...)
	}
	return rating.Mean(all)
}

// StarsPerActivity returns, for each activity with at least one rated
// product, the mean of its rated products' averages, ordered by activity.
func (c *Catalog) StarsPerActivity(ctx context.Context) []types.ActivityStars {
	defer c.observe("stars_per_activity", time.Now())

	perActivity := map[string][]float64{}
	for _, p := range c.store.Products(ctx) {
		if len(p.Ratings) == 0 {
			continue
		}
		perActivity[p.Activity] = append(perActivity[p.Activity], rating.Mean(p.Stars()))
	}

	out := make([]types.ActivityStars, 0, len(perActivity))
	for activity, averages := range perActivity {
		out = append(out, types.ActivityStars{Activity: activity, Average: rating.MeanOf(averages)})
	}
	slices.SortFunc(out, func(a, b types.ActivityStars) int { return cmp.Compare(a.Activity, b.Activity) })
	return out
}

// ProductsPerStars groups product names by their rounded average rating,
// highest average first. Unrated products fall in the 0 group.
func (c *Catalog) ProductsPerStars(ctx context.Context) []types.StarsGroup {
	defer c.observe("products_per_stars", time.Now())

	type group struct {
		average  decimal.Decimal
		products []string
	}
	groups := map[string]*group{}
	for _, p := range c.store.Products(ctx) {
		avg := c.policy.RoundedAverage(p.Stars())
		key := avg.String()
		g, ok := groups[key]
		if !ok {
			g = &group{average: avg}
			groups[key] = g
		}
		// products arrive sorted by name
		g.products = append(g.products, p.Name)
	}

	sorted := make([]*group, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	slices.SortFunc(sorted, func(a, b *group) int { return b.average.Cmp(a.average) })

	out := make([]types.StarsGroup, len(sorted))
	for i, g := range sorted {
		out[i] = types.StarsGroup{Average: g.average.InexactFloat64(), Products: g.products}
	}
	return out
}

func (c *Catalog) productNames(ctx context.Context, keep func(model.Product) bool) []string {
	out := []string{}
	for _, p := range c.store.Products(ctx) {
		if keep(p) {
			out = append(out, p.Name)
		}
	}
	return out
}

func (c *Catalog) observe(query string, start time.Time) {
	c.metrics.ObserveQuery(query, time.Since(start))
}
