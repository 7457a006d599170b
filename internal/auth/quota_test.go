package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
)

// fakeUserStore backs the quota gate with an in-memory user map
type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func (s *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) ConsumeFetch(_ context.Context, id primitive.ObjectID, limit int) (bool, error) {
	u, ok := s.users[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	if u.FetchCount >= limit {
		return false, nil
	}
	u.FetchCount++
	return true, nil
}

func gateRequest(t *testing.T, gate *QuotaGate, userID primitive.ObjectID) *httptest.ResponseRecorder {
	t.Helper()

	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/results/abc", nil)
	ctx := context.WithValue(r.Context(), UserContextKey, &models.User{ID: userID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r.WithContext(ctx))
	return rec
}

func TestQuotaGateSubscribedUserIsUnlimited(t *testing.T) {
	id := primitive.NewObjectID()
	expiry := time.Now().Add(24 * time.Hour)
	store := &fakeUserStore{users: map[primitive.ObjectID]*models.User{
		id: {ID: id, SubscriptionExpiryDate: &expiry},
	}}
	gate := NewQuotaGate(store, 2)

	for i := 0; i < 10; i++ {
		rec := gateRequest(t, gate, id)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 0, store.users[id].FetchCount, "subscribed users must not spend fetches")
}

func TestQuotaGateExpiredSubscriptionIsCapped(t *testing.T) {
	id := primitive.NewObjectID()
	expiry := time.Now().Add(-time.Hour)
	store := &fakeUserStore{users: map[primitive.ObjectID]*models.User{
		id: {ID: id, SubscriptionExpiryDate: &expiry},
	}}
	gate := NewQuotaGate(store, 2)

	require.Equal(t, http.StatusOK, gateRequest(t, gate, id).Code)
	require.Equal(t, http.StatusOK, gateRequest(t, gate, id).Code)

	rec := gateRequest(t, gate, id)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "fetch_limit_exceeded")
}

func TestQuotaGateExactlyTwoFetchesWithoutSubscription(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeUserStore{users: map[primitive.ObjectID]*models.User{
		id: {ID: id},
	}}
	gate := NewQuotaGate(store, 2)

	require.Equal(t, http.StatusOK, gateRequest(t, gate, id).Code)
	require.Equal(t, http.StatusOK, gateRequest(t, gate, id).Code)
	assert.Equal(t, 2, store.users[id].FetchCount)

	for i := 0; i < 3; i++ {
		rec := gateRequest(t, gate, id)
		assert.Equal(t, http.StatusForbidden, rec.Code, "attempt %d past the cap", i+3)
	}
	assert.Equal(t, 2, store.users[id].FetchCount, "rejected attempts must not increment the counter")
}

func TestQuotaGateUnknownUserIs404(t *testing.T) {
	store := &fakeUserStore{users: map[primitive.ObjectID]*models.User{}}
	gate := NewQuotaGate(store, 2)

	rec := gateRequest(t, gate, primitive.NewObjectID())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuotaGateMissingIdentityIs401(t *testing.T) {
	gate := NewQuotaGate(&fakeUserStore{users: map[primitive.ObjectID]*models.User{}}, 2)

	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/results/abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHasUnlimitedAccess(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name   string
		expiry *time.Time
		want   bool
	}{
		{"no expiry set", nil, false},
		{"expiry in the future", &future, true},
		{"expiry in the past", &past, false},
		{"expiry exactly now", &now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &models.User{SubscriptionExpiryDate: tt.expiry}
			assert.Equal(t, tt.want, u.HasUnlimitedAccess(now))
		})
	}
}
