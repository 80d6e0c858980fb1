// Package httpclient builds HTTP clients for the public OSM services.
package httpclient

import (
	"net/http"
	"time"
)

// HeadersTransport adds fixed headers (User-Agent, From) to every request.
type HeadersTransport struct {
	Transport http.RoundTripper
	Headers   map[string]string
}

// RoundTrip implements the http.RoundTripper interface.
func (t *HeadersTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}

	base := t.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// New returns a client with its own timeout that identifies itself with headers.
func New(timeout time.Duration, headers map[string]string) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &HeadersTransport{
			Transport: http.DefaultTransport,
			Headers:   headers,
		},
	}
}
