package benchlog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegressionSet(t *testing.T) {
	Convey("While using RegressionSet", t, func() {
		Convey("A new set holds the given names deduplicated", func() {
			set := NewRegressionSet("foo_bench", "bar_bench", "foo_bench")
			So(len(set), ShouldEqual, 2)
			So(set.Contains("foo_bench"), ShouldBeTrue)
			So(set.Contains("baz_bench"), ShouldBeFalse)
		})

		Convey("Names are returned sorted", func() {
			set := NewRegressionSet("zeta", "alpha", "mid")
			So(set.Names(), ShouldResemble, []string{"alpha", "mid", "zeta"})
		})

		Convey("Empty reports emptiness", func() {
			So(NewRegressionSet().Empty(), ShouldBeTrue)
			So(NewRegressionSet("one").Empty(), ShouldBeFalse)
		})

		Convey("Intersect returns common members only", func() {
			first := NewRegressionSet("foo_bench", "bar_bench")
			second := NewRegressionSet("bar_bench", "baz_bench")

			So(first.Intersect(second).Names(), ShouldResemble, []string{"bar_bench"})
		})

		Convey("Intersect of disjoint sets is empty", func() {
			first := NewRegressionSet("foo_bench")
			second := NewRegressionSet("bar_bench")

			So(first.Intersect(second).Empty(), ShouldBeTrue)
		})
	})
}
