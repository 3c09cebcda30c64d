package middleware

import (
	"net/http"

	"github.com/phrazzld/agenda-api/internal/api/shared"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRPS   = 100
	defaultRateLimitBurst = 20
)

// RateLimit returns middleware enforcing a process-wide token bucket of rps
// requests per second with the given burst. Non-positive values fall back to
// the defaults. Rejected requests get 429 with the standard error body.
func RateLimit(rps, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		rps = defaultRateLimitRPS
	}
	if burst <= 0 {
		burst = defaultRateLimitBurst
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				shared.RespondWithError(w, r, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
