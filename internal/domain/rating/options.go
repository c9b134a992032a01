package rating

// Option applies a configuration option to the Policy.
type Option func(*Policy)

// WithStarRange sets the inclusive star bounds. Invalid ranges are ignored.
func WithStarRange(minStars, maxStars int) Option {
	return func(p *Policy) {
		if minStars >= 0 && maxStars >= minStars {
			p.minStars = minStars
			p.maxStars = maxStars
		}
	}
}

// WithPrecision sets the number of decimal places averages are rounded to
// when products are grouped by rating.
func WithPrecision(places int) Option {
	return func(p *Policy) {
		if places >= 0 && places <= maxPrecision {
			p.precision = int32(places)
		}
	}
}
