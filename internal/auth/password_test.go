package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse 1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse 1", hash)

	assert.True(t, CheckPassword("correct horse 1", hash))
	assert.False(t, CheckPassword("wrong horse 1", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	a, err := HashPassword("password123")
	require.NoError(t, err)
	b, err := HashPassword("password123")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, a, b)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "sturdy-pass1", nil},
		{"too short", "ab1", ErrPasswordTooShort},
		{"too long", strings.Repeat("a1", 40), ErrPasswordTooLong},
		{"no digit", "onlyletters", ErrPasswordNoDigit},
		{"no letter", "1234567890", ErrPasswordNoLetter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
