package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSWithOrigins returns a CORS middleware with specific allowed origins
func CORSWithOrigins(origins []string) func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "If-None-Match"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "Retry-After", "ETag"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
