package strictness_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/strictness"
)

func TestNormalize(t *testing.T) {
	Convey("Given the stat normalizer", t, func() {
		Convey("A zero value short-circuits regardless of strictness", func() {
			So(strictness.Normalize(0, 1.0, strictness.DefaultFactor), ShouldEqual, 0)
			So(strictness.Normalize(0, -1.0, 2.0), ShouldEqual, 0)
		})

		Convey("Full strictness with the default factor lifts a stat by 5%", func() {
			So(strictness.Normalize(0.500, 1.0, strictness.DefaultFactor), ShouldAlmostEqual, 0.525)
		})

		Convey("Full leniency with the default factor cuts a stat by 5%", func() {
			So(strictness.Normalize(0.500, -1.0, strictness.DefaultFactor), ShouldAlmostEqual, 0.475)
		})

		Convey("Zero strictness leaves the value unchanged", func() {
			So(strictness.Normalize(0.321, 0, strictness.DefaultFactor), ShouldAlmostEqual, 0.321)
		})

		Convey("The adjusted value is clamped to 1.000", func() {
			So(strictness.Normalize(0.990, 1.0, strictness.DefaultFactor), ShouldEqual, 1.0)
		})

		Convey("Intermediate strictness scales proportionally", func() {
			// 0.300 * (1 + 0.707*0.5*0.1)
			So(strictness.Normalize(0.300, 0.707, strictness.DefaultFactor), ShouldAlmostEqual, 0.310605)
		})
	})
}
