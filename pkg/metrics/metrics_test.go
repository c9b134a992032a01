package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it gets a private registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
				So(manager.Registry(), ShouldNotPointTo, GetRegistry())
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("shop"),
				WithHistogramBuckets([]float64{0.1, 1, 10}),
				WithStarBuckets([]float64{1, 3, 5}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordOperation("add_product", OutcomeOK)

			Convey("Then metrics use the namespace on the given registry", func() {
				So(manager.Registry(), ShouldPointTo, registry)
				n, err := testutil.GatherAndCount(registry, "test_shop_operations_total")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When using the default manager", func() {
			So(Default(), ShouldNotBeNil)
			So(Default().Registry(), ShouldPointTo, GetRegistry())
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		m := NewManager()

		Convey("When recording operations", func() {
			m.RecordOperation("add_rating", OutcomeOK)
			m.RecordOperation("add_rating", OutcomeOK)
			m.RecordOperation("add_rating", OutcomeRejected)

			Convey("Then counters split by outcome", func() {
				So(testutil.ToFloat64(m.operations.WithLabelValues("add_rating", OutcomeOK)), ShouldEqual, 2)
				So(testutil.ToFloat64(m.operations.WithLabelValues("add_rating", OutcomeRejected)), ShouldEqual, 1)
			})
		})

		Convey("When recording validation errors", func() {
			m.RecordValidationError("unknown activity")

			Convey("Then the reason counter increments", func() {
				So(testutil.ToFloat64(m.validationErrors.WithLabelValues("unknown activity")), ShouldEqual, 1)
			})
		})

		Convey("When updating catalog size", func() {
			m.UpdateCatalogSize(3, 2, 2, 3)

			Convey("Then gauges hold the values", func() {
				So(testutil.ToFloat64(m.activities), ShouldEqual, 3)
				So(testutil.ToFloat64(m.categories), ShouldEqual, 2)
				So(testutil.ToFloat64(m.products), ShouldEqual, 2)
				So(testutil.ToFloat64(m.ratings), ShouldEqual, 3)
			})
		})

		Convey("When observing stars and queries", func() {
			m.ObserveRatingStars(5)
			m.ObserveRatingStars(4)
			m.ObserveQuery("stars_per_activity", 2*time.Millisecond)

			Convey("Then the snapshot reports histogram sample counts", func() {
				samples, err := m.Snapshot()
				So(err, ShouldBeNil)

				values := map[string]float64{}
				for _, s := range samples {
					values[s.Name] = s.Value
				}
				So(values["sports_catalog_rating_stars"], ShouldEqual, 2)
				So(values[`sports_catalog_query_duration_milliseconds{query="stars_per_activity"}`], ShouldEqual, 1)
				So(values["sports_catalog_activities"], ShouldEqual, 0)
			})
		})
	})
}

func TestSnapshotOrdering(t *testing.T) {
	Convey("Given a manager with several series", t, func() {
		m := NewManager()
		m.RecordOperation("define_activities", OutcomeOK)
		m.RecordOperation("add_category", OutcomeRejected)

		samples, err := m.Snapshot()
		So(err, ShouldBeNil)

		Convey("Then samples are sorted by series name", func() {
			for i := 1; i < len(samples); i++ {
				So(samples[i-1].Name <= samples[i].Name, ShouldBeTrue)
			}
		})
	})
}
