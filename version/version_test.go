package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		So(first(Compare("1.0.0", "0.9.9")), ShouldEqual, 1)
		So(first(Compare("v0.3.1", "0.3.1")), ShouldEqual, 0)
		So(first(Compare("0.3.1", "0.10.0")), ShouldEqual, -1)

		_, err := Compare("latest", "0.3.1")
		So(err, ShouldNotBeNil)
	})
}

func first(v int, _ error) int {
	return v
}

func TestFetchLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/empty" {
				_, _ = w.Write([]byte(`{}`))
				return
			}
			_, _ = w.Write([]byte(`{"tag_name":"v1.2.3"}`))
		}))
		defer server.Close()

		client := resty.New()

		Convey("The tag is returned without its v prefix", func() {
			version, err := fetchLatest(context.Background(), client, server.URL+"/latest")
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "1.2.3")
		})

		Convey("An empty tag is an error", func() {
			_, err := fetchLatest(context.Background(), client, server.URL+"/empty")
			So(err, ShouldNotBeNil)
		})
	})
}
