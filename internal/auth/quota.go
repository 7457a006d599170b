package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
)

// UserStore is the subset of the user repository the quota gate needs.
// GetByID reports a missing record with an error matching repository.ErrNotFound.
// ConsumeFetch atomically increments the user's fetch counter if and only if it
// is still below limit, and reports whether the increment happened.
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ConsumeFetch(ctx context.Context, id primitive.ObjectID, limit int) (bool, error)
}

// QuotaGate enforces the fetch cap on metered endpoints.
// Users with an active subscription pass without touching the counter;
// everyone else spends one fetch per request until the cap is reached.
type QuotaGate struct {
	store UserStore
	limit int
	now   func() time.Time
}

// NewQuotaGate creates a quota gate with the given fetch limit
func NewQuotaGate(store UserStore, limit int) *QuotaGate {
	return &QuotaGate{
		store: store,
		limit: limit,
		now:   time.Now,
	}
}

// Middleware returns the gate as HTTP middleware. Runs after Authenticate.
func (g *QuotaGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := GetUser(r.Context())
		if ident == nil {
			writeAuthError(w, ErrInvalidToken)
			return
		}

		user, err := g.store.GetByID(r.Context(), ident.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]interface{}{
					"error":   "not_found",
					"message": "User not found",
				})
				return
			}
			log.Printf("[quota] failed to load user %s: %v", ident.ID.Hex(), err)
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":   "server_error",
				"message": "Failed to check access",
			})
			return
		}

		if !user.HasUnlimitedAccess(g.now()) {
			consumed, err := g.store.ConsumeFetch(r.Context(), user.ID, g.limit)
			if err != nil {
				log.Printf("[quota] failed to consume fetch for %s: %v", user.ID.Hex(), err)
				writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"error":   "server_error",
					"message": "Failed to check access",
				})
				return
			}
			if !consumed {
				writeJSON(w, http.StatusForbidden, map[string]interface{}{
					"error":   "fetch_limit_exceeded",
					"message": "Fetch limit exceeded. Subscribe for unlimited access.",
				})
				return
			}
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
