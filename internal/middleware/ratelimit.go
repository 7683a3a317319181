package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"neuralink-backend/internal/transport"
)

// RateLimiter is a fixed-window counter per client key.
type RateLimiter struct {
	limit     int
	window    time.Duration
	now       func() time.Time
	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

type bucket struct {
	count int
	reset time.Time
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (rl *RateLimiter) Allow(key string) Decision {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	b, ok := rl.buckets[key]
	if !ok || !now.Before(b.reset) {
		b = &bucket{reset: now.Add(rl.window)}
		rl.buckets[key] = b
	}

	if b.count >= rl.limit {
		return Decision{Allowed: false, Limit: rl.limit, Remaining: 0, Reset: b.reset}
	}

	b.count++
	return Decision{Allowed: true, Limit: rl.limit, Remaining: rl.limit - b.count, Reset: b.reset}
}

// sweep drops expired buckets at most once per window.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Before(rl.nextSweep) {
		return
	}
	for key, b := range rl.buckets {
		if !now.Before(b.reset) {
			delete(rl.buckets, key)
		}
	}
	rl.nextSweep = now.Add(rl.window)
}

// clientIP keys on the connection address, already resolved by ClientAddr
// when proxies are trusted. Request headers are never consulted here.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := rl.Allow(clientIP(r))

		resetIn := int(d.Reset.Sub(rl.now()).Round(time.Second) / time.Second)
		if resetIn < 0 {
			resetIn = 0
		}
		w.Header().Set("RateLimit-Limit", strconv.Itoa(d.Limit))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(d.Remaining))
		w.Header().Set("RateLimit-Reset", strconv.Itoa(resetIn))

		if !d.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(resetIn))
			transport.WriteError(w, http.StatusTooManyRequests, "Too Many Requests", "Too many requests, please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
