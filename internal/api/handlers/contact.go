package handlers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/api/request"
	"github.com/art-nursing/backend/internal/api/response"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	contactRepo *repository.ContactRepository
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactRepo *repository.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

// CreateContactRequest is a public contact form submission
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,min=5,max=5000"`
}

// CreateContact handles POST /api/v1/contact
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactRepo.Create(r.Context(), contact); err != nil {
		response.InternalError(w, "Failed to submit message")
		return
	}

	response.JSON(w, http.StatusCreated, response.APIResponse{
		Message: "Message received. We will get back to you soon.",
	})
}

// ListContacts handles GET /api/v1/admin/contact
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	limit := request.GetQueryIntWithRange(r, "limit", 20, 1, 100)
	offset := request.GetQueryInt(r, "offset", 0)

	contacts, total, err := h.contactRepo.List(r.Context(), limit, offset)
	if err != nil {
		response.InternalError(w, "Failed to fetch messages")
		return
	}

	pagination := response.NewPagination(int(total), limit, offset)
	response.SuccessWithPagination(w, contacts, pagination, nil)
}

// DeleteContact handles DELETE /api/v1/admin/contact/{id}
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid message ID")
		return
	}

	if err := h.contactRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Message not found")
			return
		}
		response.InternalError(w, "Failed to delete message")
		return
	}

	response.Message(w, "Message deleted")
}
