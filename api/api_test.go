package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anisan-cli/aniserve/api"
	"github.com/anisan-cli/aniserve/config"
	"github.com/anisan-cli/aniserve/filesystem"
	"github.com/anisan-cli/aniserve/key"
	"github.com/anisan-cli/aniserve/server"
	"github.com/anisan-cli/aniserve/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
	viper.Set(key.MetadataFetchAnilist, false)
}

// mockSource is an in-memory provider that counts every call it receives.
type mockSource struct {
	calls    map[string]int
	animes   []*source.Anime
	infos    map[string]*source.Info
	episodes map[string][]*source.Episode
	videos   map[string][]*source.Video
}

func newMockSource() *mockSource {
	animes := make([]*source.Anime, 0, 7)
	for i := 1; i <= 7; i++ {
		animes = append(animes, &source.Anime{
			Name:      fmt.Sprintf("Naruto %d", i),
			ID:        fmt.Sprintf("naruto-%d", i),
			Languages: []source.Language{source.Sub},
		})
	}

	return &mockSource{
		calls:  make(map[string]int),
		animes: animes,
		infos: map[string]*source.Info{
			"naruto-1": {
				ID:       "naruto-1",
				Name:     "Naruto 1",
				Genres:   []string{"Action"},
				Synopsis: "A ninja story",
			},
		},
		episodes: map[string][]*source.Episode{
			"naruto-1": {
				{Number: 1, Language: source.Sub},
				{Number: 1, Language: source.Dub},
				{Number: 2, Language: source.Sub},
			},
		},
		videos: map[string][]*source.Video{
			"naruto-1/1/sub": {
				{URL: "https://cdn.example.net/1.mp4", Quality: "1080p", Language: source.Sub, Referer: "https://example.net"},
			},
		},
	}
}

func (m *mockSource) Name() string { return "Mock" }
func (m *mockSource) ID() string   { return "mock" }

func (m *mockSource) Search(ctx context.Context, query string) ([]*source.Anime, error) {
	m.calls["search"]++
	return m.animes, nil
}

func (m *mockSource) InfoOf(ctx context.Context, id string) (*source.Info, error) {
	m.calls["info"]++
	info, ok := m.infos[id]
	if !ok {
		return nil, fmt.Errorf("show %q: %w", id, source.ErrNotFound)
	}
	return info, nil
}

func (m *mockSource) EpisodesOf(ctx context.Context, id string) ([]*source.Episode, error) {
	m.calls["episodes"]++
	episodes, ok := m.episodes[id]
	if !ok {
		return nil, fmt.Errorf("show %q: %w", id, source.ErrNotFound)
	}
	return episodes, nil
}

func (m *mockSource) VideosOf(ctx context.Context, id string, episode int, lang source.Language) ([]*source.Video, error) {
	m.calls["videos"]++
	videos, ok := m.videos[fmt.Sprintf("%s/%d/%s", id, episode, lang)]
	if !ok {
		return nil, fmt.Errorf("episode %d of %q: %w", episode, id, source.ErrNotFound)
	}
	return videos, nil
}

func (m *mockSource) total() (n int) {
	for _, count := range m.calls {
		n += count
	}
	return
}

// mockBrowser extends mockSource with the popular listing capability.
type mockBrowser struct {
	*mockSource
}

func (m *mockBrowser) Popular(ctx context.Context, page, perPage int) ([]*source.Anime, bool, error) {
	m.calls["popular"]++
	if page > 1 {
		return nil, false, nil
	}
	if perPage > len(m.animes) {
		perPage = len(m.animes)
	}
	return m.animes[:perPage], true, nil
}

func serve(src source.Source, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, target, nil)
	server.New(api.New(src)).Handler().ServeHTTP(recorder, request)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %s", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	Convey("When /health is requested", t, func() {
		mock := newMockSource()
		recorder := serve(mock, "/health")

		Convey("It should return 200 with an ok status", func() {
			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(decode(t, recorder)["status"], ShouldEqual, "ok")

			Convey("Without touching the provider", func() {
				So(mock.total(), ShouldEqual, 0)
			})
		})
	})
}

func TestRoot(t *testing.T) {
	Convey("When / is requested", t, func() {
		mock := newMockSource()
		recorder := serve(mock, "/")

		Convey("It should describe the API without touching the provider", func() {
			So(recorder.Code, ShouldEqual, http.StatusOK)
			body := decode(t, recorder)
			So(body["provider"], ShouldEqual, "Mock")
			So(body["endpoints"], ShouldNotBeEmpty)
			So(mock.total(), ShouldEqual, 0)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a search request", t, func() {
		mock := newMockSource()

		Convey("With a missing query", func() {
			recorder := serve(mock, "/search")

			Convey("It should fail validation without a provider call", func() {
				So(recorder.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(decode(t, recorder)["error"], ShouldEqual, "validation_error")
				So(mock.total(), ShouldEqual, 0)
			})
		})

		Convey("With an out-of-range limit", func() {
			for _, limit := range []string{"0", "51", "-1", "kek"} {
				recorder := serve(mock, "/search?query=naruto&limit="+limit)
				So(recorder.Code, ShouldEqual, http.StatusUnprocessableEntity)
			}

			Convey("The provider should never be called", func() {
				So(mock.total(), ShouldEqual, 0)
			})
		})

		Convey("With query=naruto and limit=5", func() {
			recorder := serve(mock, "/search?query=naruto&limit=5")

			Convey("It should truncate results but report the full total", func() {
				So(recorder.Code, ShouldEqual, http.StatusOK)
				body := decode(t, recorder)
				So(body["total_results"], ShouldEqual, 7)
				So(len(body["results"].([]any)), ShouldEqual, 5)

				Convey("With exactly one provider call", func() {
					So(mock.calls["search"], ShouldEqual, 1)
				})
			})
		})

		Convey("Without an explicit limit", func() {
			recorder := serve(mock, "/search?query=naruto")

			Convey("It should return all results below the default limit", func() {
				So(recorder.Code, ShouldEqual, http.StatusOK)
				So(len(decode(t, recorder)["results"].([]any)), ShouldEqual, 7)
			})
		})
	})
}

func TestSuggestions(t *testing.T) {
	Convey("Given recorded search queries", t, func() {
		mock := newMockSource()
		So(serve(mock, "/search?query=naruto").Code, ShouldEqual, http.StatusOK)

		Convey("Suggestions for a prefix should include them", func() {
			recorder := serve(mock, "/search/suggestions?query=nar")

			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(decode(t, recorder)["suggestions"], ShouldContain, "naruto")
		})

		Convey("A missing query should fail validation", func() {
			So(serve(mock, "/search/suggestions").Code, ShouldEqual, http.StatusUnprocessableEntity)
		})
	})
}

func TestInfo(t *testing.T) {
	Convey("Given an info request", t, func() {
		mock := newMockSource()

		Convey("For a known identifier", func() {
			recorder := serve(mock, "/anime/naruto-1")

			Convey("It should return the show info", func() {
				So(recorder.Code, ShouldEqual, http.StatusOK)
				body := decode(t, recorder)
				So(body["identifier"], ShouldEqual, "naruto-1")
				So(body["name"], ShouldEqual, "Naruto 1")
			})
		})

		Convey("For an unknown identifier", func() {
			recorder := serve(mock, "/anime/kek")

			Convey("It should report not found", func() {
				So(recorder.Code, ShouldEqual, http.StatusNotFound)
				So(decode(t, recorder)["error"], ShouldEqual, "not_found")
			})
		})
	})
}

func TestEpisodes(t *testing.T) {
	Convey("Given an episodes request", t, func() {
		mock := newMockSource()

		Convey("Without a language filter", func() {
			recorder := serve(mock, "/anime/naruto-1/episodes")

			Convey("It should return every episode in provider order", func() {
				So(recorder.Code, ShouldEqual, http.StatusOK)
				So(len(decode(t, recorder)["episodes"].([]any)), ShouldEqual, 3)
			})
		})

		Convey("With language=dub", func() {
			recorder := serve(mock, "/anime/naruto-1/episodes?language=dub")

			Convey("It should keep only the matching episodes", func() {
				So(recorder.Code, ShouldEqual, http.StatusOK)
				episodes := decode(t, recorder)["episodes"].([]any)
				So(len(episodes), ShouldEqual, 1)
				So(episodes[0].(map[string]any)["language"], ShouldEqual, "dub")
			})
		})

		Convey("With an unsupported language", func() {
			recorder := serve(mock, "/anime/naruto-1/episodes?language=raw")

			Convey("It should fail validation without a provider call", func() {
				So(recorder.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(mock.total(), ShouldEqual, 0)
			})
		})

		Convey("For an unknown identifier", func() {
			So(serve(mock, "/anime/kek/episodes").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStream(t *testing.T) {
	Convey("Given a stream request", t, func() {
		mock := newMockSource()

		Convey("With a valid episode and language", func() {
			recorder := serve(mock, "/anime/naruto-1/episode/1/stream?language=sub")

			Convey("It should return the stream links", func() {
				So(recorder.Code, ShouldEqual, http.StatusOK)
				body := decode(t, recorder)
				So(body["episode"], ShouldEqual, 1)
				streams := body["streams"].([]any)
				So(len(streams), ShouldEqual, 1)
				So(streams[0].(map[string]any)["referer"], ShouldEqual, "https://example.net")
			})
		})

		Convey("Without a language", func() {
			recorder := serve(mock, "/anime/naruto-1/episode/1/stream")

			Convey("It should fail validation without a provider call", func() {
				So(recorder.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(mock.total(), ShouldEqual, 0)
			})
		})

		Convey("With a non-integer episode", func() {
			So(serve(mock, "/anime/naruto-1/episode/kek/stream?language=sub").Code, ShouldEqual, http.StatusUnprocessableEntity)
		})

		Convey("With a non-positive episode", func() {
			So(serve(mock, "/anime/naruto-1/episode/0/stream?language=sub").Code, ShouldEqual, http.StatusUnprocessableEntity)
		})

		Convey("For an unknown episode", func() {
			recorder := serve(mock, "/anime/naruto-1/episode/99/stream?language=sub")

			So(recorder.Code, ShouldEqual, http.StatusNotFound)
			So(decode(t, recorder)["error"], ShouldEqual, "not_found")
		})
	})
}

func TestPopular(t *testing.T) {
	Convey("Given a popular request", t, func() {
		Convey("Against a provider without listings support", func() {
			recorder := serve(newMockSource(), "/popular")

			Convey("It should report the capability as not implemented", func() {
				So(recorder.Code, ShouldEqual, http.StatusNotImplemented)
				So(decode(t, recorder)["error"], ShouldEqual, "not_implemented")
			})
		})

		Convey("Against a provider with listings support", func() {
			mock := &mockBrowser{newMockSource()}
			recorder := serve(mock, "/popular?limit=2")

			Convey("It should return the first page", func() {
				So(recorder.Code, ShouldEqual, http.StatusOK)
				body := decode(t, recorder)
				So(body["page"], ShouldEqual, 1)
				So(body["has_next"], ShouldBeTrue)
				So(len(body["data"].([]any)), ShouldEqual, 2)
			})
		})

		Convey("With an invalid page", func() {
			So(serve(&mockBrowser{newMockSource()}, "/popular?page=0").Code, ShouldEqual, http.StatusUnprocessableEntity)
		})
	})
}
