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

// TaxonomyHandler handles blog category and department endpoints
type TaxonomyHandler struct {
	taxonomyRepo *repository.TaxonomyRepository
}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler(taxonomyRepo *repository.TaxonomyRepository) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyRepo: taxonomyRepo}
}

// CreateNameRequest carries the single name field shared by categories and
// departments.
type CreateNameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// ListCategories handles GET /api/v1/categories
func (h *TaxonomyHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.taxonomyRepo.ListCategories(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch categories")
		return
	}

	response.Success(w, categories)
}

// CreateCategory handles POST /api/v1/admin/categories
func (h *TaxonomyHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateNameRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	category := &models.Category{Name: req.Name}

	if err := h.taxonomyRepo.CreateCategory(r.Context(), category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Conflict(w, "Category already exists")
			return
		}
		response.InternalError(w, "Failed to create category")
		return
	}

	response.Created(w, category)
}

// UpdateCategory handles PUT /api/v1/admin/categories/{id}
func (h *TaxonomyHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	var req CreateNameRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	if err := h.taxonomyRepo.RenameCategory(r.Context(), id, req.Name); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.NotFound(w, "Category not found")
		case errors.Is(err, repository.ErrDuplicate):
			response.Conflict(w, "Category already exists")
		default:
			response.InternalError(w, "Failed to update category")
		}
		return
	}

	response.Message(w, "Category updated")
}

// DeleteCategory handles DELETE /api/v1/admin/categories/{id}
func (h *TaxonomyHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	if err := h.taxonomyRepo.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Category not found")
			return
		}
		response.InternalError(w, "Failed to delete category")
		return
	}

	response.Message(w, "Category deleted")
}

// ListDepartments handles GET /api/v1/departments
func (h *TaxonomyHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.taxonomyRepo.ListDepartments(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch departments")
		return
	}

	response.Success(w, departments)
}

// CreateDepartment handles POST /api/v1/admin/departments
func (h *TaxonomyHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req CreateNameRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	department := &models.Department{Name: req.Name}

	if err := h.taxonomyRepo.CreateDepartment(r.Context(), department); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Conflict(w, "Department already exists")
			return
		}
		response.InternalError(w, "Failed to create department")
		return
	}

	response.Created(w, department)
}

// UpdateDepartment handles PUT /api/v1/admin/departments/{id}
func (h *TaxonomyHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid department ID")
		return
	}

	var req CreateNameRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	if err := h.taxonomyRepo.RenameDepartment(r.Context(), id, req.Name); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.NotFound(w, "Department not found")
		case errors.Is(err, repository.ErrDuplicate):
			response.Conflict(w, "Department already exists")
		default:
			response.InternalError(w, "Failed to update department")
		}
		return
	}

	response.Message(w, "Department updated")
}

// DeleteDepartment handles DELETE /api/v1/admin/departments/{id}
func (h *TaxonomyHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid department ID")
		return
	}

	if err := h.taxonomyRepo.DeleteDepartment(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Department not found")
			return
		}
		response.InternalError(w, "Failed to delete department")
		return
	}

	response.Message(w, "Department deleted")
}
