package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCorsMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	do := func(handler http.Handler, origin, method string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(method, "/health", nil)
		if origin != "" {
			request.Header.Set("Origin", origin)
		}
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	Convey("Given a wildcard policy", t, func() {
		handler := corsMiddleware([]string{"*"}, next)

		Convey("Any origin should be allowed", func() {
			recorder := do(handler, "https://example.com", http.MethodGet)

			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(recorder.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		})

		Convey("Preflight requests should short-circuit", func() {
			recorder := do(handler, "https://example.com", http.MethodOptions)

			So(recorder.Code, ShouldEqual, http.StatusNoContent)
			So(recorder.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "GET")
		})
	})

	Convey("Given an exact-match policy", t, func() {
		handler := corsMiddleware([]string{"https://app.example.com"}, next)

		Convey("The configured origin should be echoed back", func() {
			recorder := do(handler, "https://app.example.com", http.MethodGet)

			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(recorder.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://app.example.com")
			So(recorder.Header().Get("Vary"), ShouldEqual, "Origin")
		})

		Convey("Other origins should be rejected", func() {
			So(do(handler, "https://evil.example.com", http.MethodGet).Code, ShouldEqual, http.StatusForbidden)
		})

		Convey("Requests without an origin should pass through", func() {
			recorder := do(handler, "", http.MethodGet)

			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(recorder.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
		})
	})
}
