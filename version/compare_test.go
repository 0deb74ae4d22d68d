package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two version strings", t, func() {
		Convey("Equal versions should compare as 0", func() {
			result, err := Compare("1.2.3", "1.2.3")

			So(err, ShouldBeNil)
			So(result, ShouldEqual, 0)
		})

		Convey("A 'v' prefix should be ignored", func() {
			result, err := Compare("v1.2.3", "1.2.3")

			So(err, ShouldBeNil)
			So(result, ShouldEqual, 0)
		})

		Convey("A greater version should compare as 1", func() {
			for _, pair := range [][2]string{
				{"2.0.0", "1.9.9"},
				{"1.3.0", "1.2.9"},
				{"1.2.4", "1.2.3"},
			} {
				result, err := Compare(pair[0], pair[1])

				So(err, ShouldBeNil)
				So(result, ShouldEqual, 1)
			}
		})

		Convey("A lesser version should compare as -1", func() {
			result, err := Compare("0.9.0", "1.0.0")

			So(err, ShouldBeNil)
			So(result, ShouldEqual, -1)
		})

		Convey("Malformed versions should error", func() {
			_, err := Compare("kek", "1.0.0")

			So(err, ShouldNotBeNil)
		})
	})
}
