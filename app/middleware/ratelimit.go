package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"boardhub/global"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter in redis, keyed by client IP and
// window index. It fails open when redis is unreachable: throttling is a
// shield, not a correctness contract.
type RateLimiter struct {
	Rdb    *redis.Client
	Prefix string
	Window time.Duration
	Max    int64
}

func NewRateLimiter(rdb *redis.Client, prefix string, window time.Duration, max int64) *RateLimiter {
	return &RateLimiter{Rdb: rdb, Prefix: prefix, Window: window, Max: max}
}

func (l *RateLimiter) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.Rdb == nil {
			next.ServeHTTP(w, r)
			return
		}
		window := time.Now().Unix() / int64(l.Window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%s:%d", l.Prefix, clientIP(r), window)

		n, err := l.Rdb.Incr(r.Context(), key).Result()
		if err != nil {
			global.Logger.Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if n == 1 {
			l.Rdb.Expire(r.Context(), key, l.Window)
		}
		if n > l.Max {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many requests, please try again later"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
