// Package ratelimit provides fixed-window request limiting keyed by client IP.
package ratelimit

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/art-nursing/backend/internal/api/response"
)

// Config defines a fixed window: at most Limit requests per Interval.
type Config struct {
	Limit    int
	Interval time.Duration
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Middleware returns HTTP middleware that enforces the limiter per client IP.
// Limiter failures fail open so an unavailable backend cannot take down the
// public endpoints it guards.
func Middleware(limiter Limiter, cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Allow(r.Context(), ClientIP(r))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
				w.Header().Set("Retry-After", strconv.Itoa(int(cfg.Interval.Seconds())))
				response.TooManyRequests(w, "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the client IP address from the request
func ClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (common for proxies/load balancers)
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		// Take the first IP in the chain
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}

	// Check X-Real-IP header
	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	// Fall back to RemoteAddr, stripping the port
	addr := r.RemoteAddr
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i]
		}
		if addr[i] == ']' {
			// IPv6 address without port
			break
		}
	}
	return addr
}
