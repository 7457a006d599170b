package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/art-nursing/backend/internal/api/response"
)

// Recoverer is a middleware that recovers from panics
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[%s] PANIC: %v\n%s", GetRequestID(r.Context()), rec, debug.Stack())
				response.InternalError(w, "An unexpected error occurred")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
