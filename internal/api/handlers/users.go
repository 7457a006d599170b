package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/api/request"
	"github.com/art-nursing/backend/internal/api/response"
	"github.com/art-nursing/backend/internal/auth"
	"github.com/art-nursing/backend/internal/repository"
)

// UserHandler handles admin user management endpoints
type UserHandler struct {
	userRepo *repository.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo *repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// UpdateRoleRequest changes a user's role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin editor user"`
}

// UpdateSubscriptionRequest sets or clears a user's subscription expiry.
// A null expiry revokes the subscription.
type UpdateSubscriptionRequest struct {
	SubscriptionExpiryDate *time.Time `json:"subscription_expiry_date"`
}

// ListUsers handles GET /api/v1/admin/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list users")
		return
	}

	result := make([]*UserResponse, len(users))
	for i := range users {
		result[i] = toUserResponse(&users[i])
	}

	response.Success(w, result)
}

// UpdateRole handles PUT /api/v1/admin/users/{id}/role
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req UpdateRoleRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	if err := h.userRepo.UpdateRole(r.Context(), id, req.Role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w, "Failed to update role")
		return
	}

	response.Message(w, "Role updated")
}

// UpdateSubscription handles PUT /api/v1/admin/users/{id}/subscription
func (h *UserHandler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req UpdateSubscriptionRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	if err := h.userRepo.UpdateSubscription(r.Context(), id, req.SubscriptionExpiryDate); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w, "Failed to update subscription")
		return
	}

	response.Message(w, "Subscription updated")
}

// ResetFetchCount handles POST /api/v1/admin/users/{id}/reset-fetches
func (h *UserHandler) ResetFetchCount(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.userRepo.ResetFetchCount(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w, "Failed to reset fetch count")
		return
	}

	response.Message(w, "Fetch count reset")
}

// DeleteUser handles DELETE /api/v1/admin/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	// An admin cannot delete their own account
	if current := auth.GetUser(r.Context()); current != nil && current.ID == id {
		response.BadRequest(w, "Cannot delete your own account")
		return
	}

	if err := h.userRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w, "Failed to delete user")
		return
	}

	response.Message(w, "User deleted")
}

// Usage reports the caller's fetch quota standing
// GET /api/v1/user/usage
func (h *UserHandler) Usage(fetchLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident := auth.GetUser(r.Context())
		if ident == nil {
			response.Unauthorized(w, "")
			return
		}

		user, err := h.userRepo.GetByID(r.Context(), ident.ID)
		if err != nil {
			response.InternalError(w, "Failed to fetch usage")
			return
		}

		unlimited := user.HasUnlimitedAccess(time.Now())
		remaining := 0
		if !unlimited {
			remaining = fetchLimit - user.FetchCount
			if remaining < 0 {
				remaining = 0
			}
		}

		response.Success(w, map[string]interface{}{
			"unlimited":                unlimited,
			"fetch_count":              user.FetchCount,
			"fetch_limit":              fetchLimit,
			"fetches_remaining":        remaining,
			"subscription_expiry_date": user.SubscriptionExpiryDate,
		})
	}
}
