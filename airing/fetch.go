package airing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/nextairing/nextairing/log"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves the listing page of a series.
type Fetcher interface {
	Fetch(ctx context.Context, series string) (io.Reader, error)
}

// HTTPFetcher fetches listing pages from an airing site over HTTP.
type HTTPFetcher struct {
	client *resty.Client
	scheme string
	host   string
}

// NewHTTPFetcher creates a fetcher for pages under <scheme>://<host>/tv-shows/.
func NewHTTPFetcher(client *resty.Client, scheme, host string) *HTTPFetcher {
	if scheme == "" {
		scheme = "http"
	}
	return &HTTPFetcher{
		client: client,
		scheme: scheme,
		host:   host,
	}
}

// URL returns the listing page address of a series.
// The identifier is escaped so that it always stays a single path segment.
func (f *HTTPFetcher) URL(series string) string {
	return fmt.Sprintf("%s://%s/tv-shows/%s", f.scheme, f.host, url.PathEscape(series))
}

// Fetch performs a GET for the series page and returns its body decoded to UTF-8.
// Every failure, including a non-2xx status, is a *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, series string) (io.Reader, error) {
	target := f.URL(series)
	fail := func(cause error) error {
		return &FetchError{Series: series, URL: target, Cause: cause}
	}

	log.Debugf("GET %s", target)
	resp, err := f.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		return nil, fail(err)
	}

	if !resp.IsSuccess() {
		return nil, fail(fmt.Errorf("unexpected status: %s", resp.Status()))
	}

	body, err := charset.NewReader(bytes.NewReader(resp.Body()), resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, fail(fmt.Errorf("decoding body: %w", err))
	}

	return body, nil
}
