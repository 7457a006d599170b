package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/art-nursing/backend/internal/models"
)

func okHandler(t *testing.T, sawUser **models.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*sawUser = GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := testUser()
	token, err := svc.Generate(user)
	require.NoError(t, err)

	var seen *models.User
	handler := NewMiddleware(svc).Authenticate(okHandler(t, &seen))

	r := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
	assert.Equal(t, user.Email, seen.Email)
	assert.Equal(t, user.Role, seen.Role)
}

func TestAuthenticateRejectsBadRequests(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	token, err := svc.Generate(testUser())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic " + token},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer abc.def.ghi"},
	}

	var seen *models.User
	handler := NewMiddleware(svc).Authenticate(okHandler(t, &seen))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/user/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	m := NewMiddleware(svc)

	makeToken := func(role string) string {
		u := testUser()
		u.Role = role
		token, err := svc.Generate(u)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"admin allowed", models.RoleAdmin, []string{models.RoleAdmin}, http.StatusOK},
		{"editor allowed among several", models.RoleEditor, []string{models.RoleAdmin, models.RoleEditor}, http.StatusOK},
		{"plain user forbidden", models.RoleUser, []string{models.RoleAdmin, models.RoleEditor}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *models.User
			handler := m.Authenticate(m.RequireRole(tt.allowed...)(okHandler(t, &seen)))

			r := httptest.NewRequest(http.MethodGet, "/admin/blogs", nil)
			r.Header.Set("Authorization", "Bearer "+makeToken(tt.role))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestOptionalAuthContinuesWithoutToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	var seen *models.User
	handler := NewMiddleware(svc).OptionalAuth(okHandler(t, &seen))

	r := httptest.NewRequest(http.MethodGet, "/blogs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}
