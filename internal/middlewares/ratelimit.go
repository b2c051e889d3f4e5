package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	c "api/internal/cache"

	"go.uber.org/zap"
)

// RateLimit enforces a per-client request budget through the cache. With
// no cache configured the limiter is a pass-through. The client identity
// is the remote IP, or the X-Forwarded-For origin when the request comes
// from a trusted proxy.
func RateLimit(cache c.ICache, trustedProxies []string, requestsPerMinute int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cache == nil {
				next.ServeHTTP(w, r)
				return
			}

			identity := clientIP(r, trustedProxies)
			retryAfter, err := cache.GetRateLimit(identity, requestsPerMinute)
			if err != nil {
				// A broken cache must not take the dashboard down.
				zap.L().Warn("Rate limit check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request, trustedProxies []string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if host == proxy {
			if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
				parts := strings.Split(forwarded, ",")
				return strings.TrimSpace(parts[0])
			}
		}
	}

	return host
}
