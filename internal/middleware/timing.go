package middleware

import (
	"context"
	"net/http"
	"time"
)

type timingKey struct{}

// Timing is a middleware that records the request start time in the context
func Timing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), timingKey{}, time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetResponseTimeMs returns the elapsed time in milliseconds since request start
func GetResponseTimeMs(ctx context.Context) int64 {
	if start, ok := ctx.Value(timingKey{}).(time.Time); ok {
		return time.Since(start).Milliseconds()
	}
	return 0
}
