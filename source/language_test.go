package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseLanguage(t *testing.T) {
	Convey("ParseLanguage", t, func() {
		Convey("Should accept sub and dub", func() {
			lang, err := ParseLanguage("sub")
			So(err, ShouldBeNil)
			So(lang, ShouldEqual, Sub)

			lang, err = ParseLanguage("dub")
			So(err, ShouldBeNil)
			So(lang, ShouldEqual, Dub)
		})

		Convey("Should reject anything else", func() {
			for _, raw := range []string{"", "SUB", "Dub", "raw", "sub "} {
				_, err := ParseLanguage(raw)
				So(err, ShouldNotBeNil)
			}
		})
	})
}
