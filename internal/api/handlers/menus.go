package handlers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/api/request"
	"github.com/art-nursing/backend/internal/api/response"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
)

// MenuHandler handles navigation menu endpoints
type MenuHandler struct {
	menuRepo *repository.MenuRepository
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuRepo *repository.MenuRepository) *MenuHandler {
	return &MenuHandler{menuRepo: menuRepo}
}

// CreateMenuRequest creates a named menu with its item tree
type CreateMenuRequest struct {
	Name  string            `json:"name" validate:"required,min=2,max=100"`
	Items []models.MenuItem `json:"items" validate:"required,dive"`
}

// UpdateMenuRequest replaces a menu's items
type UpdateMenuRequest struct {
	Items []models.MenuItem `json:"items" validate:"required,dive"`
}

// ListMenus handles GET /api/v1/menus
func (h *MenuHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.menuRepo.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch menus")
		return
	}

	response.Success(w, menus)
}

// GetMenu handles GET /api/v1/menus/{name}
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	name := request.GetURLParam(r, "name")
	if name == "" {
		response.BadRequest(w, "Menu name is required")
		return
	}

	menu, err := h.menuRepo.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Menu not found")
			return
		}
		response.InternalError(w, "Failed to fetch menu")
		return
	}

	response.Success(w, menu)
}

// CreateMenu handles POST /api/v1/admin/menus
func (h *MenuHandler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	menu := &models.Menu{
		Name:  req.Name,
		Items: req.Items,
	}

	if err := h.menuRepo.Create(r.Context(), menu); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Conflict(w, "A menu with this name already exists")
			return
		}
		response.InternalError(w, "Failed to create menu")
		return
	}

	response.Created(w, menu)
}

// UpdateMenu handles PUT /api/v1/admin/menus/{id}
func (h *MenuHandler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid menu ID")
		return
	}

	var req UpdateMenuRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	if err := h.menuRepo.Update(r.Context(), id, bson.M{"items": req.Items}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Menu not found")
			return
		}
		response.InternalError(w, "Failed to update menu")
		return
	}

	response.Message(w, "Menu updated")
}

// DeleteMenu handles DELETE /api/v1/admin/menus/{id}
func (h *MenuHandler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid menu ID")
		return
	}

	if err := h.menuRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Menu not found")
			return
		}
		response.InternalError(w, "Failed to delete menu")
		return
	}

	response.Message(w, "Menu deleted")
}
