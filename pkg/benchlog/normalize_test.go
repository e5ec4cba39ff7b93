package benchlog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStripEscapes(t *testing.T) {
	Convey("While normalizing harness output", t, func() {
		Convey("Text without escape sequences passes through untouched", func() {
			So(StripEscapes("plain text"), ShouldEqual, "plain text")
			So(StripEscapes(""), ShouldEqual, "")
		})

		Convey("Color sequences are removed and nothing else is altered", func() {
			colored := "\x1b[32mBenchmarking\x1b[0m \"nqueens\""
			So(StripEscapes(colored), ShouldEqual, "Benchmarking \"nqueens\"")
		})

		Convey("Cursor movement sequences are removed as well", func() {
			So(StripEscapes("left\x1b[2Kright"), ShouldEqual, "leftright")
			So(StripEscapes("\x1b[1;31mregressed\x1b[0m"), ShouldEqual, "regressed")
		})

		Convey("A lone ESC without bracket sequence is preserved", func() {
			So(StripEscapes("odd\x1bchar"), ShouldEqual, "odd\x1bchar")
		})

		Convey("Normalizing is idempotent", func() {
			colored := "\x1b[32mchange:\x1b[0m +5.3021% regressed"
			once := StripEscapes(colored)
			So(StripEscapes(once), ShouldEqual, once)
		})

		Convey("NormalizeLines keeps the line order", func() {
			lines := NormalizeLines([]string{"\x1b[1ma\x1b[0m", "b"})
			So(lines, ShouldResemble, []string{"a", "b"})
		})
	})
}
