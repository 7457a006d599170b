package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Email: "staff@example.edu",
		Role:  models.RoleEditor,
	}
}

func TestJWTGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := testUser()

	token, err := svc.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleEditor, claims.Role)
	assert.Equal(t, "art-nursing", claims.Issuer)
}

func TestJWTValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).Generate(testUser())
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestJWTValidateRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Hour)

	token, err := svc.Generate(testUser())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTRefreshValidToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := testUser()

	token, err := svc.Generate(user)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(token)
	require.NoError(t, err)

	claims, err := svc.Validate(refreshed)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
}

func TestJWTRefreshExpiredWithinGrace(t *testing.T) {
	// Token expired an hour ago, well inside the 7 day grace period
	expired := NewJWTService("test-secret", -time.Hour)
	token, err := expired.Generate(testUser())
	require.NoError(t, err)

	svc := NewJWTService("test-secret", time.Hour)
	refreshed, err := svc.Refresh(token)
	require.NoError(t, err)

	_, err = svc.Validate(refreshed)
	assert.NoError(t, err)
}

func TestJWTRefreshExpiredBeyondGrace(t *testing.T) {
	expired := NewJWTService("test-secret", -8*24*time.Hour)
	token, err := expired.Generate(testUser())
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", time.Hour).Refresh(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTRefreshRejectsInvalidToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, err := svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
