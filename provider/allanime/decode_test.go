package allanime

import (
	"testing"

	"github.com/anisan-cli/aniserve/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDecodeSourceURL(t *testing.T) {
	Convey("decodeSourceURL", t, func() {
		Convey("Should decode obfuscated absolute urls", func() {
			decoded, err := decodeSourceURL("--504c4c484b0217175b5c56165d40595548545d16565d4c175d48091709080008481655480c")
			So(err, ShouldBeNil)
			So(decoded, ShouldEqual, "https://cdn.example.net/ep1/1080p.mp4")
		})

		Convey("Should decode obfuscated internal paths", func() {
			decoded, err := decodeSourceURL("--175948514e4c4f57175b54575b5307515c05595a5b090a0b")
			So(err, ShouldBeNil)
			So(decoded, ShouldEqual, "/apivtwo/clock?id=abc123")
		})

		Convey("Should pass through unobfuscated values", func() {
			decoded, err := decodeSourceURL("https://embed.example.com/e/xyz")
			So(err, ShouldBeNil)
			So(decoded, ShouldEqual, "https://embed.example.com/e/xyz")
		})

		Convey("Should fail on invalid hex", func() {
			_, err := decodeSourceURL("--zzzz")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseEpisodes(t *testing.T) {
	Convey("parseEpisodes", t, func() {
		Convey("Should keep positive integers and skip specials", func() {
			episodes := parseEpisodes([]string{"3", "2", "7.5", "1", "0"}, source.Sub)
			So(len(episodes), ShouldEqual, 3)
			for _, ep := range episodes {
				So(ep.Number, ShouldBeGreaterThan, 0)
				So(ep.Language, ShouldEqual, source.Sub)
			}
		})

		Convey("Should handle empty input", func() {
			So(parseEpisodes(nil, source.Dub), ShouldBeEmpty)
		})
	})
}
