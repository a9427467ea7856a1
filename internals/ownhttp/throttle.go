package ownhttp

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// ThrottleTransport rate limits requests per host. Mojang's meta and
// piston hosts each get their own limiter, so fetching a manifest does not
// slow down running jar downloads.
type ThrottleTransport struct {
	T          http.RoundTripper
	newLimiter func() *rate.Limiter

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := tt.limiter(req.URL.Host).Wait(req.Context()); err != nil {
		return nil, err
	}

	return tt.T.RoundTrip(req)
}

func (tt *ThrottleTransport) limiter(host string) *rate.Limiter {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	l, ok := tt.limiters[host]
	if !ok {
		l = tt.newLimiter()
		tt.limiters[host] = l
	}
	return l
}

// NewThrottleTransport wraps T (http.DefaultTransport if nil). newLimiter is
// called once for every host.
func NewThrottleTransport(T http.RoundTripper, newLimiter func() *rate.Limiter) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &ThrottleTransport{T: T, newLimiter: newLimiter, limiters: map[string]*rate.Limiter{}}
}
