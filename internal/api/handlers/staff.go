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

// StaffHandler handles staff and faculty directory endpoints
type StaffHandler struct {
	staffRepo *repository.StaffRepository
	uploads   *upload.Store
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffRepo *repository.StaffRepository, uploads *upload.Store) *StaffHandler {
	return &StaffHandler{
		staffRepo: staffRepo,
		uploads:   uploads,
	}
}

// ListStaff handles GET /api/v1/staff
// Query params: department, teachers (true limits to teaching faculty)
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	opts := repository.StaffListOptions{
		Department:   request.GetQueryString(r, "department", ""),
		TeachersOnly: request.GetQueryBool(r, "teachers", false),
	}

	staff, err := h.staffRepo.List(r.Context(), opts)
	if err != nil {
		response.InternalError(w, "Failed to fetch staff")
		return
	}

	response.Success(w, staff)
}

// GetStaffMember handles GET /api/v1/staff/{id}
func (h *StaffHandler) GetStaffMember(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid staff ID")
		return
	}

	member, err := h.staffRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Staff member not found")
			return
		}
		response.InternalError(w, "Failed to fetch staff member")
		return
	}

	response.Success(w, member)
}

type staffForm struct {
	Name        string `validate:"required,min=2,max=100"`
	Designation string `validate:"required,max=100"`
	Department  string `validate:"max=100"`
	Email       string `validate:"omitempty,email"`
	Phone       string `validate:"max=30"`
}

// CreateStaffMember handles POST /api/v1/admin/staff
// Multipart form with an optional photo.
func (h *StaffHandler) CreateStaffMember(w http.ResponseWriter, r *http.Request) {
	form := staffForm{
		Name:        r.FormValue("name"),
		Designation: r.FormValue("designation"),
		Department:  r.FormValue("department"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
	}
	if err := request.Validate(&form); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	teacher, _ := strconv.ParseBool(r.FormValue("teacher"))
	order, _ := strconv.Atoi(r.FormValue("order"))

	member := &models.StaffMember{
		Name:        form.Name,
		Designation: form.Designation,
		Department:  form.Department,
		Email:       form.Email,
		Phone:       form.Phone,
		Teacher:     teacher,
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

	if err := h.staffRepo.Create(r.Context(), member); err != nil {
		if photo != nil {
			photo.Discard()
		}
		response.InternalError(w, "Failed to create staff member")
		return
	}

	response.Created(w, member)
}

// UpdateStaffMember handles PUT /api/v1/admin/staff/{id}
func (h *StaffHandler) UpdateStaffMember(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid staff ID")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"name", "designation", "department", "email", "phone"} {
		if v := r.FormValue(key); v != "" {
			fields[key] = v
		}
	}
	if v := r.FormValue("teacher"); v != "" {
		teacher, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "Field teacher must be a boolean")
			return
		}
		fields["teacher"] = teacher
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

	var oldPhoto string
	if photo != nil {
		if existing, err := h.staffRepo.GetByID(r.Context(), id); err == nil {
			oldPhoto = existing.Photo
		}
	}

	if err := h.staffRepo.Update(r.Context(), id, fields); err != nil {
		if photo != nil {
			photo.Discard()
		}
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Staff member not found")
			return
		}
		response.InternalError(w, "Failed to update staff member")
		return
	}

	if oldPhoto != "" {
		_ = h.uploads.Remove(oldPhoto)
	}

	response.Message(w, "Staff member updated")
}

// DeleteStaffMember handles DELETE /api/v1/admin/staff/{id}
func (h *StaffHandler) DeleteStaffMember(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid staff ID")
		return
	}

	member, err := h.staffRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Staff member not found")
			return
		}
		response.InternalError(w, "Failed to delete staff member")
		return
	}

	if err := h.staffRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Staff member not found")
			return
		}
		response.InternalError(w, "Failed to delete staff member")
		return
	}

	if member.Photo != "" {
		_ = h.uploads.Remove(member.Photo)
	}

	response.Message(w, "Staff member deleted")
}
