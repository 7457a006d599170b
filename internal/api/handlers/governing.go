package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/api/request"
	"github.com/art-nursing/backend/internal/api/response"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
	"github.com/art-nursing/backend/internal/upload"
)

// GoverningHandler handles governing body endpoints
type GoverningHandler struct {
	governingRepo *repository.GoverningRepository
	uploads       *upload.Store
}

// NewGoverningHandler creates a new governing body handler
func NewGoverningHandler(governingRepo *repository.GoverningRepository, uploads *upload.Store) *GoverningHandler {
	return &GoverningHandler{
		governingRepo: governingRepo,
		uploads:       uploads,
	}
}

// ListMembers handles GET /api/v1/governing-body
func (h *GoverningHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.governingRepo.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch governing body")
		return
	}

	response.Success(w, members)
}

type governingForm struct {
	Name        string `validate:"required,min=2,max=100"`
	Designation string `validate:"required,max=100"`
}

// CreateMember handles POST /api/v1/admin/governing-body
func (h *GoverningHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	form := governingForm{
		Name:        r.FormValue("name"),
		Designation: r.FormValue("designation"),
	}
	if err := request.Validate(&form); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	order, _ := strconv.Atoi(r.FormValue("order"))

	member := &models.GoverningMember{
		Name:        form.Name,
		Designation: form.Designation,
		Order:       order,
	}

	photo, err := h.uploads.FromRequest(r, "photo", upload.Images)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if photo != nil {
		member.Photo = photo.Path
	}

	if err := h.governingRepo.Create(r.Context(), member); err != nil {
		if photo != nil {
			photo.Discard()
		}
		response.InternalError(w, "Failed to create member")
		return
	}

	response.Created(w, member)
}

// UpdateMember handles PUT /api/v1/admin/governing-body/{id}
func (h *GoverningHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	fields := bson.M{}
	if v := r.FormValue("name"); v != "" {
		fields["name"] = v
	}
	if v := r.FormValue("designation"); v != "" {
		fields["designation"] = v
	}
	if v := r.FormValue("order"); v != "" {
		order, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Field order must be an integer")
			return
		}
		fields["order"] = order
	}

	photo, err := h.uploads.FromRequest(r, "photo", upload.Images)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if photo != nil {
		fields["photo"] = photo.Path
	}

	if len(fields) == 0 {
		response.BadRequest(w, "No fields to update")
		return
	}

	if err := h.governingRepo.Update(r.Context(), id, fields); err != nil {
		if photo != nil {
			photo.Discard()
		}
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Member not found")
			return
		}
		response.InternalError(w, "Failed to update member")
		return
	}

	response.Message(w, "Member updated")
}

// DeleteMember handles DELETE /api/v1/admin/governing-body/{id}
func (h *GoverningHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	if err := h.governingRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Member not found")
			return
		}
		response.InternalError(w, "Failed to delete member")
		return
	}

	response.Message(w, "Member deleted")
}
