package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/art-nursing/backend/internal/auth"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	userRepo   *repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userRepo *repository.UserRepository, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
	User      *UserResponse `json:"user"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID                     string     `json:"id"`
	Email                  string     `json:"email"`
	Role                   string     `json:"role"`
	SubscriptionExpiryDate *time.Time `json:"subscription_expiry_date,omitempty"`
	FetchCount             int        `json:"fetch_count"`
	CreatedAt              time.Time  `json:"created_at"`
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:                     user.ID.Hex(),
		Email:                  user.Email,
		Role:                   user.Role,
		SubscriptionExpiryDate: user.SubscriptionExpiryDate,
		FetchCount:             user.FetchCount,
		CreatedAt:              user.CreatedAt,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if !isValidEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "invalid_email", "Invalid email address")
		return
	}

	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, "weak_password", err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to process registration")
		return
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}

	if err := h.userRepo.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "user_exists", "An account with this email already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to create account")
		return
	}

	token, err := h.jwtService.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Token:     token,
		ExpiresIn: int64(h.jwtService.GetExpiration().Seconds()),
		User:      toUserResponse(user),
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.userRepo.GetByEmail(r.Context(), email)
	if err != nil {
		// Don't reveal whether the email exists
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}

	token, err := h.jwtService.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Token:     token,
		ExpiresIn: int64(h.jwtService.GetExpiration().Seconds()),
		User:      toUserResponse(user),
	})
}

// RefreshToken refreshes a JWT token
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		writeError(w, http.StatusUnauthorized, "missing_token", "Authorization header required")
		return
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		writeError(w, http.StatusUnauthorized, "invalid_token", "Invalid authorization header format")
		return
	}

	newToken, err := h.jwtService.Refresh(parts[1])
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			writeError(w, http.StatusUnauthorized, "token_expired", "Token has expired and cannot be refreshed")
		case errors.Is(err, auth.ErrInvalidToken):
			writeError(w, http.StatusUnauthorized, "invalid_token", "Invalid token")
		default:
			writeError(w, http.StatusUnauthorized, "invalid_token", "Failed to refresh token")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":      newToken,
		"expires_in": int64(h.jwtService.GetExpiration().Seconds()),
	})
}

// GetCurrentUser returns the current authenticated user
// GET /api/v1/user/me
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUser(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	fullUser, err := h.userRepo.GetByID(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to fetch user data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": toUserResponse(fullUser),
	})
}

// isValidEmail validates an email address format
func isValidEmail(email string) bool {
	// Simple email regex - not perfect but good enough for basic validation
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}
