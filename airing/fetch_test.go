package airing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/nextairing/nextairing/network"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestFetcher(server *httptest.Server) *HTTPFetcher {
	u, _ := url.Parse(server.URL)
	return NewHTTPFetcher(network.NewClient(5*time.Second, "nextairing-test"), u.Scheme, u.Host)
}

func TestHTTPFetcher(t *testing.T) {
	Convey("Given an airing site", t, func() {
		var requested []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested = append(requested, r.URL.EscapedPath())
			switch r.URL.Path {
			case "/tv-shows/missing":
				http.NotFound(w, r)
			case "/tv-shows/latin1":
				w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
				_, _ = w.Write([]byte("Pok\xe9mon"))
			default:
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				_, _ = io.WriteString(w, page(fullItem))
			}
		}))
		defer server.Close()

		fetcher := newTestFetcher(server)

		Convey("URL puts the series under /tv-shows/", func() {
			So(NewHTTPFetcher(nil, "", "nextairing.com").URL("doctor-who"), ShouldEqual, "http://nextairing.com/tv-shows/doctor-who")
		})

		Convey("URL escapes the identifier", func() {
			So(fetcher.URL("a/../b c"), ShouldEndWith, "/tv-shows/a%2F..%2Fb%20c")
		})

		Convey("Fetch returns the page body", func() {
			body, err := fetcher.Fetch(context.Background(), "doctor-who")
			So(err, ShouldBeNil)

			data, err := io.ReadAll(body)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "Doctor Who")
			So(requested, ShouldResemble, []string{"/tv-shows/doctor-who"})
		})

		Convey("Fetch keeps an escaped identifier in one path segment", func() {
			_, err := fetcher.Fetch(context.Background(), "a/b")
			So(err, ShouldBeNil)
			So(requested, ShouldResemble, []string{"/tv-shows/a%2Fb"})
		})

		Convey("Fetch decodes the declared charset", func() {
			body, err := fetcher.Fetch(context.Background(), "latin1")
			So(err, ShouldBeNil)

			data, _ := io.ReadAll(body)
			So(string(data), ShouldEqual, "Pokémon")
		})

		Convey("A non-2xx status is a fetch error", func() {
			_, err := fetcher.Fetch(context.Background(), "missing")

			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Series, ShouldEqual, "missing")
			So(fetchErr.URL, ShouldEndWith, "/tv-shows/missing")
			So(err.Error(), ShouldContainSubstring, "404")
		})

		Convey("A cancelled context is a fetch error", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := fetcher.Fetch(ctx, "doctor-who")

			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable host", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		fetcher := newTestFetcher(server)
		server.Close()

		Convey("Fetch reports the transport failure", func() {
			_, err := fetcher.Fetch(context.Background(), "doctor-who")

			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Cause, ShouldNotBeNil)
			So(strings.HasPrefix(err.Error(), `fetch "doctor-who": `), ShouldBeTrue)
		})
	})
}
