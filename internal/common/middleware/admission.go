package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
)

// RateLimiter rejects requests above rps sustained throughput with a burst
// allowance. Rejected requests get a 429 with a Retry-After hint.
func RateLimiter(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Ctx(r.Context()).Warn().
					Str("remoteIP", r.RemoteAddr).
					Msg("request rejected by rate limiter")
				w.Header().Set("Retry-After", "1")
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", int(rps)))
				httpx.ErrTooManyRequests().Send(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ConcurrencyLimiter bounds the number of requests handled at once. A request
// arriving while all slots are busy waits up to queueWait for a slot, then is
// rejected with 429.
func ConcurrencyLimiter(maxInFlight int64, queueWait time.Duration) func(http.Handler) http.Handler {
	sem := semaphore.NewWeighted(maxInFlight)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if queueWait > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, queueWait)
				defer cancel()
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				log.Ctx(r.Context()).Warn().
					Str("remoteIP", r.RemoteAddr).
					Msg("request rejected by concurrency limiter")
				w.Header().Set("Retry-After", "1")
				httpx.ErrTooManyRequests().Send(w)
				return
			}
			defer sem.Release(1)
			next.ServeHTTP(w, r)
		})
	}
}
