package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/okian/sports/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore_Activities(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		s := NewMemoryStore()

		So(s.Count(ctx), ShouldResemble, Counts{})
		So(s.Activities(ctx), ShouldBeEmpty)

		Convey("When activities are added twice", func() {
			So(s.AddActivities(ctx, "Tennis", "Football"), ShouldBeNil)
			So(s.AddActivities(ctx, "Running", "Tennis"), ShouldBeNil)

			Convey("Then the set is a sorted union", func() {
				So(s.Activities(ctx), ShouldResemble, []string{"Football", "Running", "Tennis"})
				So(s.Count(ctx).Activities, ShouldEqual, 3)
				So(s.HasActivity(ctx, "Running"), ShouldBeTrue)
				So(s.HasActivity(ctx, "running"), ShouldBeFalse)
			})
		})
	})
}

func TestMemoryStore_Categories(t *testing.T) {
	Convey("Given a store with one category", t, func() {
		ctx := context.Background()
		s := NewMemoryStore()
		So(s.PutCategory(ctx, model.NewCategory("Shoes", "Running", "Tennis")), ShouldBeNil)

		Convey("When it is read back", func() {
			c, err := s.Category(ctx, "Shoes")

			Convey("Then links are intact", func() {
				So(err, ShouldBeNil)
				So(c.Activities, ShouldResemble, []string{"Running", "Tennis"})
			})

			Convey("And mutating the copy does not leak into the store", func() {
				c.Activities[0] = "Football"
				again, _ := s.Category(ctx, "Shoes")
				So(again.Links("Running"), ShouldBeTrue)
			})
		})

		Convey("When an unknown category is read", func() {
			_, err := s.Category(ctx, "Balls")

			Convey("Then ErrNotFound is returned", func() {
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, `"Balls"`)
			})
		})

		Convey("When the same name is put again", func() {
			So(s.PutCategory(ctx, model.NewCategory("Shoes", "Football")), ShouldBeNil)
			So(s.PutCategory(ctx, model.NewCategory("Balls", "Football")), ShouldBeNil)

			Convey("Then it is replaced and listing is sorted", func() {
				cats := s.Categories(ctx)
				So(len(cats), ShouldEqual, 2)
				So(cats[0].Name, ShouldEqual, "Balls")
				So(cats[1].Activities, ShouldResemble, []string{"Football"})
			})
		})
	})
}

func TestMemoryStore_Products(t *testing.T) {
	Convey("Given a store with a product", t, func() {
		ctx := context.Background()
		s := NewMemoryStore(WithCapacity(4))
		So(s.InsertProduct(ctx, model.Product{Name: "Nike Zoom", Activity: "Running", Category: "Shoes"}), ShouldBeNil)

		Convey("When a product with the same name is inserted", func() {
			err := s.InsertProduct(ctx, model.Product{Name: "Nike Zoom", Activity: "Tennis", Category: "Shoes"})

			Convey("Then ErrAlreadyExists is returned and the original kept", func() {
				So(errors.Is(err, ErrAlreadyExists), ShouldBeTrue)
				p, _ := s.Product(ctx, "Nike Zoom")
				So(p.Activity, ShouldEqual, "Running")
			})
		})

		Convey("When ratings are appended", func() {
			So(s.AppendRating(ctx, "Nike Zoom", model.Rating{User: "Alice", Stars: 5}), ShouldBeNil)
			So(s.AppendRating(ctx, "Nike Zoom", model.Rating{User: "Bob", Stars: 4}), ShouldBeNil)

			Convey("Then they keep insertion order and are counted", func() {
				p, err := s.Product(ctx, "Nike Zoom")
				So(err, ShouldBeNil)
				So(p.Stars(), ShouldResemble, []int{5, 4})
				So(s.Count(ctx).Ratings, ShouldEqual, 2)
			})

			Convey("And a returned copy cannot alter stored ratings", func() {
				p, _ := s.Product(ctx, "Nike Zoom")
				p.Ratings[0].Stars = 0
				again, _ := s.Product(ctx, "Nike Zoom")
				So(again.Ratings[0].Stars, ShouldEqual, 5)
			})
		})

		Convey("When rating an unknown product", func() {
			err := s.AppendRating(ctx, "Ghost", model.Rating{Stars: 3})

			Convey("Then ErrNotFound is returned and nothing is counted", func() {
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
				So(s.Count(ctx).Ratings, ShouldEqual, 0)
			})
		})

		Convey("When listing products", func() {
			So(s.InsertProduct(ctx, model.Product{Name: "Adidas Ball", Activity: "Football", Category: "Balls"}), ShouldBeNil)
			products := s.Products(ctx)

			Convey("Then they are sorted by name", func() {
				So(len(products), ShouldEqual, 2)
				So(products[0].Name, ShouldEqual, "Adidas Ball")
				So(products[1].Name, ShouldEqual, "Nike Zoom")
				So(s.Count(ctx).Products, ShouldEqual, 2)
			})
		})

		Convey("When reading an unknown product", func() {
			_, err := s.Product(ctx, "Ghost")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	Convey("Given concurrent appends to one product", t, func() {
		ctx := context.Background()
		s := NewMemoryStore()
		So(s.InsertProduct(ctx, model.Product{Name: "Nike Zoom"}), ShouldBeNil)

		const n = 50
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(stars int) {
				defer wg.Done()
				_ = s.AppendRating(ctx, "Nike Zoom", model.Rating{Stars: stars % 6})
			}(i)
		}
		wg.Wait()

		Convey("Then every rating is stored", func() {
			p, _ := s.Product(ctx, "Nike Zoom")
			So(len(p.Ratings), ShouldEqual, n)
			So(s.Count(ctx).Ratings, ShouldEqual, n)
		})
	})
}
