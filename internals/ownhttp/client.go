// Package ownhttp provides the http client used for all requests
package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// UserAgent is sent with every request
var UserAgent = "mcassets (https://github.com/minepkg/mcassets)"

// HostLimit is the number of requests per second sent to a single host
var HostLimit rate.Limit = 10

// New returns a http.Client setting the User-Agent header. Requests are
// throttled to HostLimit per host with bursts of 5.
func New() *http.Client {
	return NewWithLimiter(func() *rate.Limiter {
		return rate.NewLimiter(HostLimit, 5)
	})
}

// NewWithLimiter returns a http.Client setting the User-Agent header that
// waits for a per host limiter created by newLimiter before every request
func NewWithLimiter(newLimiter func() *rate.Limiter) *http.Client {
	return &http.Client{
		Transport: NewThrottleTransport(NewAddHeaderTransport(nil), newLimiter),
	}
}

// AddHeaderTransport sets the User-Agent header
type AddHeaderTransport struct {
	T http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return adt.T.RoundTrip(req)
}

// NewAddHeaderTransport wraps T (http.DefaultTransport if nil)
func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}
