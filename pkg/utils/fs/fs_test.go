package fs

import (
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReadTail(t *testing.T) {
	Convey("While using ReadTail", t, func() {
		filePath := path.Join(t.TempDir(), "output.txt")
		err := os.WriteFile(filePath, []byte("first\nsecond\nthird\nfourth\n"), 0644)
		So(err, ShouldBeNil)

		Convey("Last lines of the file should be returned", func() {
			tail, err := ReadTail(filePath, 2)
			So(err, ShouldBeNil)
			So(tail, ShouldEqual, "third\nfourth")
		})

		Convey("Asking for more lines than the file has returns the whole file", func() {
			tail, err := ReadTail(filePath, 10)
			So(err, ShouldBeNil)
			So(tail, ShouldEqual, "first\nsecond\nthird\nfourth")
		})

		Convey("Missing file yields an error", func() {
			_, err := ReadTail(path.Join(t.TempDir(), "nope.txt"), 2)
			So(err, ShouldNotBeNil)
		})
	})
}
