package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validation failures short-circuit before the repository is touched, so the
// handler can run without a database here.
func TestCreateContactRejectsInvalidBody(t *testing.T) {
	h := NewContactHandler(nil)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `{oops`, "invalid request body"},
		{"missing name", `{"email":"a@b.edu","message":"hello there"}`, "field name is required"},
		{"missing email", `{"name":"Jo","message":"hello there"}`, "field email is required"},
		{"bad email", `{"name":"Jo","email":"nope","message":"hello there"}`, "field email must be a valid email address"},
		{"message too short", `{"name":"Jo","email":"a@b.edu","message":"hi"}`, "field message must be at least 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.CreateContact(rec, r)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.edu", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"plainstring", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidEmail(tt.email))
		})
	}
}
