package rating_test

import (
	"errors"
	"testing"

	"github.com/okian/sports/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPolicy(t *testing.T) {
	Convey("Given a default policy", t, func() {
		p := rating.NewPolicy()

		Convey("Then it accepts 0 to 5 stars", func() {
			minStars, maxStars := p.Range()
			So(minStars, ShouldEqual, 0)
			So(maxStars, ShouldEqual, 5)
			So(p.Precision(), ShouldEqual, 2)
			for stars := 0; stars <= 5; stars++ {
				So(p.Validate(stars), ShouldBeNil)
			}
		})

		Convey("Then values outside the range are rejected", func() {
			for _, stars := range []int{-1, 6, 100} {
				err := p.Validate(stars)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, rating.ErrOutOfRange), ShouldBeTrue)
			}
			So(p.Validate(6).Error(), ShouldContainSubstring, "6 not in [0, 5]")
		})
	})

	Convey("Given a policy requiring at least one star", t, func() {
		p := rating.NewPolicy(rating.WithStarRange(1, 5))

		Convey("Then zero stars are rejected", func() {
			So(errors.Is(p.Validate(0), rating.ErrOutOfRange), ShouldBeTrue)
			So(p.Validate(1), ShouldBeNil)
		})
	})

	Convey("Given invalid options", t, func() {
		p := rating.NewPolicy(
			rating.WithStarRange(4, 2),
			rating.WithStarRange(-1, 5),
			rating.WithPrecision(-1),
			rating.WithPrecision(42),
		)

		Convey("Then the defaults are kept", func() {
			minStars, maxStars := p.Range()
			So(minStars, ShouldEqual, 0)
			So(maxStars, ShouldEqual, 5)
			So(p.Precision(), ShouldEqual, 2)
		})
	})
}

func TestRoundedAverage(t *testing.T) {
	Convey("Given a policy with two decimal places", t, func() {
		p := rating.NewPolicy()

		Convey("When averaging exact ratios", func() {
			So(p.RoundedAverage([]int{5, 4}).String(), ShouldEqual, "4.5")
			So(p.RoundedAverage([]int{3}).String(), ShouldEqual, "3")
		})

		Convey("When averaging repeating ratios", func() {
			So(p.RoundedAverage([]int{5, 4, 4}).String(), ShouldEqual, "4.33")
			So(p.RoundedAverage([]int{5, 5, 4}).String(), ShouldEqual, "4.67")
		})

		Convey("When there are no stars", func() {
			So(p.RoundedAverage(nil).IsZero(), ShouldBeTrue)
		})
	})

	Convey("Given a policy rounding to whole stars", t, func() {
		p := rating.NewPolicy(rating.WithPrecision(0))

		Convey("Then halves round away from zero", func() {
			So(p.RoundedAverage([]int{5, 4}).String(), ShouldEqual, "5")
			So(p.RoundedAverage([]int{1, 1, 2}).String(), ShouldEqual, "1")
		})
	})
}

func TestMeans(t *testing.T) {
	Convey("Given star lists", t, func() {
		So(rating.Mean([]int{5, 4}), ShouldEqual, 4.5)
		So(rating.Mean([]int{5, 4, 3}), ShouldEqual, 4.0)
		So(rating.Mean(nil), ShouldEqual, 0.0)
	})

	Convey("Given per-product averages", t, func() {
		So(rating.MeanOf([]float64{4.5, 3.0}), ShouldEqual, 3.75)
		So(rating.MeanOf(nil), ShouldEqual, 0.0)
	})
}
