package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"hrcore/internal/transport/http/api"
)

type rateWindow struct {
	start time.Time
	count int
}

type RateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*rateWindow
	perMinute int
}

func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{windows: make(map[string]*rateWindow), perMinute: perMinute}
}

// Allow applies a fixed one-minute window per client key.
func (l *RateLimiter) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	window, ok := l.windows[key]
	if !ok || now.Sub(window.start) >= time.Minute {
		l.windows[key] = &rateWindow{start: now, count: 1}
		l.prune(now)
		return true
	}
	if window.count >= l.perMinute {
		return false
	}
	window.count++
	return true
}

func (l *RateLimiter) prune(now time.Time) {
	for key, window := range l.windows {
		if now.Sub(window.start) >= 2*time.Minute {
			delete(l.windows, key)
		}
	}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientKey(r), time.Now()) {
			api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
