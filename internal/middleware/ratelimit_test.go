package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestLimiter(limit int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, window)
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiterFixedWindow(t *testing.T) {
	rl, clock := newTestLimiter(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		d := rl.Allow("1.2.3.4")
		require.True(t, d.Allowed, "request %d", i+1)
		require.Equal(t, 2-i, d.Remaining)
	}
	require.False(t, rl.Allow("1.2.3.4").Allowed)
	require.True(t, rl.Allow("5.6.7.8").Allowed)

	clock.t = clock.t.Add(15 * time.Minute)
	require.True(t, rl.Allow("1.2.3.4").Allowed)
}

func TestRateLimiterSweepsExpiredBuckets(t *testing.T) {
	rl, clock := newTestLimiter(1, time.Minute)
	rl.Allow("a")
	rl.Allow("b")
	require.Len(t, rl.buckets, 2)

	clock.t = clock.t.Add(2 * time.Minute)
	rl.Allow("c")
	require.Len(t, rl.buckets, 1)
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(1, 15*time.Minute)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "1", rec.Header().Get("RateLimit-Limit"))
	require.Equal(t, "0", rec.Header().Get("RateLimit-Remaining"))
	require.Equal(t, "900", rec.Header().Get("RateLimit-Reset"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "900", rec.Header().Get("Retry-After"))
	require.JSONEq(t, `{"error":"Too Many Requests","message":"Too many requests, please try again later."}`, rec.Body.String())
}

func TestClientIPIgnoresForwardedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	require.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	require.Equal(t, "10.0.0.1", clientIP(req))
}

func TestClientAddr(t *testing.T) {
	var seen string
	capture := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.RemoteAddr
	})

	cases := []struct {
		name    string
		hops    int
		headers []string
		want    string
	}{
		{"no trusted proxy keeps socket", 0, []string{"203.0.113.9"}, "192.0.2.1:1234"},
		{"one hop takes the appended entry", 1, []string{"6.6.6.6, 203.0.113.9"}, "203.0.113.9"},
		{"two hops", 2, []string{"6.6.6.6, 203.0.113.9, 10.0.0.2"}, "203.0.113.9"},
		{"repeated headers form one chain", 1, []string{"6.6.6.6", "203.0.113.9"}, "203.0.113.9"},
		{"more hops than entries takes leftmost", 3, []string{"203.0.113.9"}, "203.0.113.9"},
		{"garbage entry keeps socket", 1, []string{"not-an-ip"}, "192.0.2.1:1234"},
		{"no header keeps socket", 1, nil, "192.0.2.1:1234"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, h := range tc.headers {
				req.Header.Add("X-Forwarded-For", h)
			}
			ClientAddr(tc.hops)(capture).ServeHTTP(httptest.NewRecorder(), req)
			require.Equal(t, tc.want, seen)
		})
	}
}
