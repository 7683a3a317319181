package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientAddr rewrites r.RemoteAddr to the client address reported by the
// nearest trustedHops proxies. Each trusted proxy appends one entry to
// X-Forwarded-For, so the client is read from the right; entries left of it
// are client-supplied and ignored. With zero hops the socket address is kept.
func ClientAddr(trustedHops int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if trustedHops <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ip := forwardedClient(r.Header.Values("X-Forwarded-For"), trustedHops); ip != "" {
				r.RemoteAddr = ip
			}
			next.ServeHTTP(w, r)
		})
	}
}

func forwardedClient(headers []string, hops int) string {
	var chain []string
	for _, header := range headers {
		for _, part := range strings.Split(header, ",") {
			if part = strings.TrimSpace(part); part != "" {
				chain = append(chain, part)
			}
		}
	}
	if len(chain) == 0 {
		return ""
	}

	idx := len(chain) - hops
	if idx < 0 {
		idx = 0
	}
	ip := chain[idx]
	if net.ParseIP(ip) == nil {
		return ""
	}
	return ip
}
