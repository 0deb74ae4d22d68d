package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When trying to get the allanime provider", t, func() {
		p, ok := Get("allanime")
		Convey("Then it should resolve to a working source", func() {
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, "AllAnime")

			src, err := p.CreateSource()
			So(err, ShouldBeNil)
			So(src.ID(), ShouldEqual, "allanime")
		})
	})
}
