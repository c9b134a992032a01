// Package repository defines the catalog store interface and its in-memory implementation.
package repository

import (
	"context"

	"github.com/okian/sports/internal/domain/model"
)

// Counts reports the size of each stored collection.
type Counts struct {
	Activities int
	Categories int
	Products   int
	Ratings    int
}

// Store provides read/write access to the catalog collections.
// Reads return copies; callers may modify them freely.
type Store interface {
	// AddActivities unions names into the activity set.
	AddActivities(ctx context.Context, names ...string) error
	// HasActivity reports whether the activity is defined.
	HasActivity(ctx context.Context, name string) bool
	// Activities returns activity names sorted ascending.
	Activities(ctx context.Context) []string

	// PutCategory stores the category, replacing any category of the same name.
	PutCategory(ctx context.Context, c model.Category) error
	// Category returns the named category or ErrNotFound.
	Category(ctx context.Context, name string) (model.Category, error)
	// Categories returns all categories sorted by name.
	Categories(ctx context.Context) []model.Category

	// InsertProduct stores a new product. Returns ErrAlreadyExists on a name clash.
	InsertProduct(ctx context.Context, p model.Product) error
	// Product returns the named product or ErrNotFound.
	Product(ctx context.Context, name string) (model.Product, error)
	// Products returns all products sorted by name.
	Products(ctx context.Context) []model.Product
	// AppendRating adds r to the end of the product's ratings. Returns ErrNotFound
	// for an unknown product.
	AppendRating(ctx context.Context, product string, r model.Rating) error

	// Count returns the size of each collection.
	Count(ctx context.Context) Counts
}
