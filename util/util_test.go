package util

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore", t, func() {
		So(func() {
			Ignore(func() error { return errors.New("discarded") })
		}, ShouldNotPanic)
	})
}
