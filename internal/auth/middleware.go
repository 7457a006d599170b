package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/models"
)

// Context keys for authentication
type contextKey string

const (
	// UserContextKey is the context key for the authenticated user
	UserContextKey contextKey = "user"
	// ClaimsContextKey is the context key for JWT claims
	ClaimsContextKey contextKey = "claims"
)

// Middleware holds dependencies for authentication middleware
type Middleware struct {
	jwtService *JWTService
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(jwtService *JWTService) *Middleware {
	return &Middleware{jwtService: jwtService}
}

// Authenticate middleware authenticates requests via a bearer JWT
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, claims, err := m.authenticate(r)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		ctx = context.WithValue(ctx, ClaimsContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth middleware sets user if authenticated but continues if not
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, claims, err := m.authenticate(r)
		if err == nil && user != nil {
			ctx := context.WithValue(r.Context(), UserContextKey, user)
			ctx = context.WithValue(ctx, ClaimsContextKey, claims)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRole returns middleware that requires the context user to hold one of
// the given roles. Runs after Authenticate.
func (m *Middleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUser(r.Context())
			if user == nil {
				writeAuthError(w, ErrInvalidToken)
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeJSON(w, http.StatusForbidden, map[string]interface{}{
				"error":   "forbidden",
				"message": "Your role does not allow access to this resource",
			})
		})
	}
}

// authenticate attempts to authenticate a request
func (m *Middleware) authenticate(r *http.Request) (*models.User, *Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil, ErrInvalidToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, nil, ErrInvalidToken
	}

	claims, err := m.jwtService.Validate(parts[1])
	if err != nil {
		return nil, nil, err
	}

	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	// Identity from claims only; handlers that need the full record load it
	user := &models.User{
		ID:    id,
		Email: claims.Email,
		Role:  claims.Role,
	}

	return user, claims, nil
}

// GetUser returns the authenticated user from context
func GetUser(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetUserID returns the authenticated user ID from context
func GetUserID(ctx context.Context) primitive.ObjectID {
	user := GetUser(ctx)
	if user == nil {
		return primitive.NilObjectID
	}
	return user.ID
}

// GetClaims returns the JWT claims from context
func GetClaims(ctx context.Context) *Claims {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// writeAuthError writes an authentication error response
func writeAuthError(w http.ResponseWriter, err error) {
	message := "Authentication required"

	switch err {
	case ErrExpiredToken:
		message = "Token has expired"
	case ErrInvalidToken:
		message = "Invalid authentication token"
	case ErrTokenNotYetValid:
		message = "Token is not yet valid"
	}

	writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
		"error":   "unauthorized",
		"message": message,
	})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
