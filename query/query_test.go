package query

import (
	"testing"

	"github.com/anisan-cli/aniserve/config"
	"github.com/anisan-cli/aniserve/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	_ = config.Setup()
}

func TestRememberAndSuggest(t *testing.T) {
	Convey("Query history", t, func() {
		Convey("Should surface remembered queries as suggestions", func() {
			So(Remember("Naruto", 1), ShouldBeNil)
			So(Remember("naruto", 2), ShouldBeNil)
			So(Remember("One Piece", 1), ShouldBeNil)

			suggestions := SuggestMany("nar")
			So(suggestions, ShouldContain, "naruto")
		})

		Convey("Should rank popular queries first", func() {
			So(Remember("bleach", 5), ShouldBeNil)
			So(Remember("black clover", 1), ShouldBeNil)

			suggestions := SuggestMany("bl")
			So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 2)
			So(suggestions[0], ShouldEqual, "bleach")
		})

		Convey("Should ignore empty queries", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany("   "), ShouldNotContain, "")
		})
	})
}
