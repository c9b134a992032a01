// Package types contains the read shapes returned by catalog queries.
package types

// ActivityStars is the mean of per-product averages for one activity.
type ActivityStars struct {
	Activity string  `json:"activity"`
	Average  float64 `json:"average"`
}

// StarsGroup lists the products sharing one (rounded) average rating.
type StarsGroup struct {
	Average  float64  `json:"average"`
	Products []string `json:"products"`
}

// Stats summarizes catalog size.
type Stats struct {
	Activities int `json:"activities"`
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Ratings    int `json:"ratings"`
}
