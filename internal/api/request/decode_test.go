package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin editor user"`
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestDecodeAndValidate(t *testing.T) {
	var dst sampleBody
	err := DecodeAndValidate(jsonRequest(`{"name":"Jo","email":"jo@example.edu"}`), &dst)
	require.NoError(t, err)
	assert.Equal(t, "Jo", dst.Name)
	assert.Equal(t, "jo@example.edu", dst.Email)
}

func TestDecodeAndValidateBadJSON(t *testing.T) {
	var dst sampleBody
	err := DecodeAndValidate(jsonRequest(`{not json`), &dst)
	assert.ErrorIs(t, err, ErrInvalidBody)
}

func TestDecodeAndValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"email":"jo@example.edu"}`, "field name is required"},
		{"bad email", `{"name":"Jo","email":"nope"}`, "field email must be a valid email address"},
		{"short name", `{"name":"J","email":"jo@example.edu"}`, "field name must be at least 2 characters"},
		{"bad role", `{"name":"Jo","email":"jo@example.edu","role":"root"}`, "field role must be one of: admin editor user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst sampleBody
			err := DecodeAndValidate(jsonRequest(tt.body), &dst)
			require.Error(t, err)
			assert.Contains(t, ValidationMessage(err), tt.want)
		})
	}
}

func TestQueryHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?limit=30&flag=true&name=x&bad=zz", nil)

	assert.Equal(t, 30, GetQueryInt(r, "limit", 20))
	assert.Equal(t, 20, GetQueryInt(r, "missing", 20))
	assert.Equal(t, 20, GetQueryInt(r, "bad", 20))

	assert.Equal(t, 25, GetQueryIntWithRange(r, "limit", 20, 1, 25))
	assert.Equal(t, 1, GetQueryIntWithRange(r, "missing", 0, 1, 25))

	assert.Equal(t, "x", GetQueryString(r, "name", "y"))
	assert.Equal(t, "y", GetQueryString(r, "missing", "y"))

	assert.True(t, GetQueryBool(r, "flag", false))
	assert.False(t, GetQueryBool(r, "missing", false))
	assert.False(t, GetQueryBool(r, "bad", false))
}
