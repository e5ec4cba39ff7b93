package gate

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/perfgate/perfgate/pkg/benchlog"
)

func TestReport(t *testing.T) {
	Convey("While reporting a ConfirmationResult", t, func() {
		buffer := &bytes.Buffer{}

		Convey("NoRegression propagates the harness's own exit code", func() {
			exitCode := Report(buffer, noRegression(0))
			So(exitCode, ShouldEqual, 0)
			So(buffer.String(), ShouldContainSubstring, "No regression detected")
			So(buffer.String(), ShouldContainSubstring, "exited with code 0")
		})

		Convey("NoRegression with a non-zero harness code propagates it untouched", func() {
			exitCode := Report(buffer, noRegression(101))
			So(exitCode, ShouldEqual, 101)
			So(buffer.String(), ShouldContainSubstring, "exited with code 101")
		})

		Convey("ConfirmedRegression fails with exit code 1 and lists the names", func() {
			result := confirmedRegression(benchlog.NewRegressionSet("deriv", "cfold"))

			exitCode := Report(buffer, result)
			So(exitCode, ShouldEqual, 1)
			So(buffer.String(), ShouldContainSubstring, "confirmed across two independent measurement passes")
			So(buffer.String(), ShouldContainSubstring, "deriv")
			So(buffer.String(), ShouldContainSubstring, "cfold")
		})

		Convey("Fluke passes with exit code 0 and names the unreproduced benchmarks", func() {
			result := fluke(benchlog.NewRegressionSet("nqueens"))

			exitCode := Report(buffer, result)
			So(exitCode, ShouldEqual, 0)
			So(buffer.String(), ShouldContainSubstring, "did not reproduce")
			So(buffer.String(), ShouldContainSubstring, "nqueens")
			So(buffer.String(), ShouldContainSubstring, "measurement noise")
		})
	})
}
