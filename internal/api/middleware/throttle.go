package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Throttle enforces a server-wide token bucket of ratePerSec requests per
// second. Burst is set equal to the rate so no extra burst capacity is
// allowed beyond the configured per-second maximum. Over-limit requests are
// rejected with 429 rather than queued: probe callers want a fast answer,
// not a delayed one.
//
// ratePerSec <= 0 disables throttling entirely.
func Throttle(ratePerSec int) func(http.Handler) http.Handler {
	if ratePerSec <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
