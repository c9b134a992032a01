// Package service implements the sports catalog: activities, categories,
// products and their ratings, with the referential rules between them.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/sports/internal/adapters/repository"
	"github.com/okian/sports/internal/domain/model"
	"github.com/okian/sports/internal/domain/rating"
	"github.com/okian/sports/internal/domain/types"
	"github.com/okian/sports/pkg/logger"
	"github.com/okian/sports/pkg/metrics"
)

// Operation names used in errors, logs and metrics.
const (
	opDefineActivities = "define_activities"
	opAddCategory      = "add_category"
	opAddProduct       = "add_product"
	opAddRating        = "add_rating"
)

// Catalog owns the catalog entities and answers aggregate queries.
// Every mutation either applies fully or returns an error and leaves the
// catalog unchanged.
type Catalog struct {
	store          repository.Store
	policy         *rating.Policy
	categoryPolicy CategoryPolicy

	logger  logger.Logger
	metrics *metrics.Manager
	now     func() time.Time
}

// New constructs a Catalog backed by a fresh memory store, the default
// 0-5 star policy and the reject policy for duplicate categories.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		store:          repository.NewMemoryStore(),
		policy:         rating.NewPolicy(),
		categoryPolicy: CategoryReject,
		logger:         logger.Nop(),
		metrics:        metrics.Default(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefineActivities adds names to the activity set. Names already defined
// are kept; an empty list is rejected.
func (c *Catalog) DefineActivities(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return c.reject(ctx, opDefineActivities, ErrNoActivities, "", nil)
	}
	if err := c.store.AddActivities(ctx, names...); err != nil {
		return fmt.Errorf("catalog.%s: %w", opDefineActivities, err)
	}
	c.accept(ctx, opDefineActivities, logger.Strings("activities", names))
	return nil
}

// AddCategory defines a category linked to already defined activities.
func (c *Catalog) AddCategory(ctx context.Context, name string, activities ...string) error {
	for _, a := range activities {
		if !c.store.HasActivity(ctx, a) {
			return c.reject(ctx, opAddCategory, ErrUnknownActivity, a, nil)
		}
	}

	if c.categoryPolicy == CategoryReject {
		_, err := c.store.Category(ctx, name)
		switch {
		case err == nil:
			return c.reject(ctx, opAddCategory, ErrDuplicateCategory, name, nil)
		case !errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("catalog.%s: %w", opAddCategory, err)
		}
	}

	if err := c.store.PutCategory(ctx, model.NewCategory(name, activities...)); err != nil {
		return fmt.Errorf("catalog.%s: %w", opAddCategory, err)
	}
	c.accept(ctx, opAddCategory, logger.String("category", name), logger.Strings("activities", activities))
	return nil
}

// CountCategories returns the number of defined categories.
func (c *Catalog) CountCategories(ctx context.Context) int {
	return c.store.Count(ctx).Categories
}

// AddProduct creates a product with no ratings. The activity and category
// must exist and the category must be linked to the activity.
func (c *Catalog) AddProduct(ctx context.Context, name, activity, category string) error {
	if _, err := c.store.Product(ctx, name); err == nil {
		return c.reject(ctx, opAddProduct, ErrDuplicateProduct, name, nil)
	}
	if !c.store.HasActivity(ctx, activity) {
		return c.reject(ctx, opAddProduct, ErrUnknownActivity, activity, nil)
	}
	cat, err := c.store.Category(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.reject(ctx, opAddProduct, ErrUnknownCategory, category, nil)
		}
		return fmt.Errorf("catalog.%s: %w", opAddProduct, err)
	}
	if !cat.Links(activity) {
		return c.reject(ctx, opAddProduct, ErrNotLinked, activity+" -> "+category, nil)
	}

	p := model.Product{Name: name, Activity: activity, Category: category}
	if err := c.store.InsertProduct(ctx, p); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return c.reject(ctx, opAddProduct, ErrDuplicateProduct, name, err)
		}
		return fmt.Errorf("catalog.%s: %w", opAddProduct, err)
	}
	c.accept(ctx, opAddProduct,
		logger.String("product", name),
		logger.String("activity", activity),
		logger.String("category", category),
	)
	return nil
}

// AddRating appends a rating to an existing product.
func (c *Catalog) AddRating(ctx context.Context, product, user string, stars int, comment string) error {
	if err := c.policy.Validate(stars); err != nil {
		return c.reject(ctx, opAddRating, ErrStarsOutOfRange, strconv.Itoa(stars), err)
	}

	r := model.Rating{
		ID:        uuid.NewString(),
		User:      user,
		Stars:     stars,
		Comment:   comment,
		CreatedAt: c.now().UTC(),
	}
	if err := c.store.AppendRating(ctx, product, r); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.reject(ctx, opAddRating, ErrUnknownProduct, product, nil)
		}
		return fmt.Errorf("catalog.%s: %w", opAddRating, err)
	}
	c.metrics.ObserveRatingStars(stars)
	c.accept(ctx, opAddRating,
		logger.String("product", product),
		logger.String("user", user),
		logger.Int("stars", stars),
	)
	return nil
}

// Stats returns catalog size and refreshes the size gauges.
func (c *Catalog) Stats(ctx context.Context) types.Stats {
	n := c.store.Count(ctx)
	c.metrics.UpdateCatalogSize(n.Activities, n.Categories, n.Products, n.Ratings)
	return types.Stats{
		Activities: n.Activities,
		Categories: n.Categories,
		Products:   n.Products,
		Ratings:    n.Ratings,
	}
}

func (c *Catalog) accept(ctx context.Context, op string, fields ...logger.Field) {
	c.metrics.RecordOperation(op, metrics.OutcomeOK)
	c.Stats(ctx)
	c.logger.Debug(ctx, op, fields...)
}

func (c *Catalog) reject(ctx context.Context, op string, reason error, detail string, cause error) error {
	err := &ValidationError{Op: op, Reason: reason, Detail: detail, Err: cause}
	c.metrics.RecordOperation(op, metrics.OutcomeRejected)
	c.metrics.RecordValidationError(reason.Error())
	c.logger.Warn(ctx, "catalog mutation rejected",
		logger.String("op", op),
		logger.String("reason", reason.Error()),
		logger.String("detail", detail),
	)
	return err
}
