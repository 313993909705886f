// Package network provides the HTTP client used to reach airing sites.
package network

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// NewClient creates a resty client on a tuned transport.
// A zero timeout leaves requests bounded only by their context.
func NewClient(timeout time.Duration, userAgent string) *resty.Client {
	client := resty.NewWithClient(&http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	})

	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return client
}

// newTransport clones the default transport with tighter idle and header timeouts.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
