package ratelimit

import (
	"net"
	"net/http"

	"github.com/RoyceAzure/rj/api"
)

// KeyFunc 從 request 取出限流 key
type KeyFunc func(r *http.Request) string

// ClientIPKey 需搭配 chi middleware.RealIP
func ClientIPKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// NewRateLimitMiddleware 超過限制回傳 429
func NewRateLimitMiddleware(limiter ILimiter, keyFunc KeyFunc) func(http.Handler) http.Handler {
	if limiter == nil {
		panic("NewRateLimitMiddleware: limiter cannot be nil")
	}
	if keyFunc == nil {
		keyFunc = ClientIPKey
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.Context(), keyFunc(r)) {
				w.Header().Set("Retry-After", "1")
				api.ErrorJSON(w, http.StatusTooManyRequests, nil, http.StatusText(http.StatusTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
