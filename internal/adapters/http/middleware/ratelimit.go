package middleware

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/dto"
)

// RateLimit returns middleware that admits at most requestsPerSecond requests
// per second across the whole process, with the given burst. Rejected
// requests receive a 429 problem response with a Retry-After hint.
//
// A non-positive requestsPerSecond disables limiting and returns a
// pass-through middleware.
func RateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	retryAfter := strconv.Itoa(max(1, int(1/requestsPerSecond)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				dto.WriteStatusResponse(w, r, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
