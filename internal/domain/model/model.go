// Package model contains domain models passed between layers.
package model

import (
	"slices"
	"strconv"
	"time"
)

// Category groups products and is linked to one or more activities.
type Category struct {
	Name       string
	Activities []string // sorted, unique
}

// NewCategory builds a Category with a sorted, de-duplicated link set.
func NewCategory(name string, activities ...string) Category {
	links := slices.Clone(activities)
	slices.Sort(links)
	return Category{Name: name, Activities: slices.Compact(links)}
}

// Links reports whether the category is linked to activity.
func (c Category) Links(activity string) bool {
	_, found := slices.BinarySearch(c.Activities, activity)
	return found
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	c.Activities = slices.Clone(c.Activities)
	return c
}

// Rating is an immutable user score attached to one product.
type Rating struct {
	ID        string
	User      string
	Stars     int
	Comment   string
	CreatedAt time.Time
}

// String renders the rating as "stars : comment".
func (r Rating) String() string {
	return strconv.Itoa(r.Stars) + " : " + r.Comment
}

// Product is a sellable item tied to one activity and one category.
// Ratings are kept in insertion order.
type Product struct {
	Name     string
	Activity string
	Category string
	Ratings  []Rating
}

// Stars returns the star values of the product's ratings in insertion order.
func (p Product) Stars() []int {
	out := make([]int, len(p.Ratings))
	for i, r := range p.Ratings {
		out[i] = r.Stars
	}
	return out
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	p.Ratings = slices.Clone(p.Ratings)
	return p
}
