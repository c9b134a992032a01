// Package rating defines the star policy and the averaging rules of the catalog.
package rating

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	defaultMinStars  = 0
	defaultMaxStars  = 5
	defaultPrecision = 2
	maxPrecision     = 10
)

// Policy validates star values and rounds averages for grouping.
type Policy struct {
	minStars  int
	maxStars  int
	precision int32
}

// NewPolicy creates a policy accepting 0 to 5 stars with two decimal places.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		minStars:  defaultMinStars,
		maxStars:  defaultMaxStars,
		precision: defaultPrecision,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Range returns the inclusive star bounds.
func (p *Policy) Range() (minStars, maxStars int) {
	return p.minStars, p.maxStars
}

// Precision returns the rounding precision in decimal places.
func (p *Policy) Precision() int {
	return int(p.precision)
}

// Validate reports whether stars fall inside the policy range.
func (p *Policy) Validate(stars int) error {
	if stars < p.minStars || stars > p.maxStars {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, stars, p.minStars, p.maxStars)
	}
	return nil
}

// RoundedAverage returns the mean of stars rounded half away from zero to
// the policy precision. Zero for no stars.
func (p *Policy) RoundedAverage(stars []int) decimal.Decimal {
	if len(stars) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, s := range stars {
		sum += s
	}
	return decimal.NewFromInt(int64(sum)).DivRound(decimal.NewFromInt(int64(len(stars))), p.precision)
}

// Mean returns the arithmetic mean of stars, or 0 for none.
func Mean(stars []int) float64 {
	if len(stars) == 0 {
		return 0
	}
	sum := 0
	for _, s := range stars {
		sum += s
	}
	return float64(sum) / float64(len(stars))
}

// MeanOf returns the arithmetic mean of values, or 0 for none.
func MeanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
