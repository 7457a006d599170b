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

// PageHandler handles static content page endpoints
type PageHandler struct {
	pageRepo *repository.PageRepository
}

// NewPageHandler creates a new page handler
func NewPageHandler(pageRepo *repository.PageRepository) *PageHandler {
	return &PageHandler{pageRepo: pageRepo}
}

// CreatePageRequest creates a static page
type CreatePageRequest struct {
	Title   string `json:"title" validate:"required,min=2,max=200"`
	Slug    string `json:"slug" validate:"omitempty,max=200"`
	Content string `json:"content" validate:"required"`
}

// UpdatePageRequest is a partial page update
type UpdatePageRequest struct {
	Title   string `json:"title" validate:"omitempty,min=2,max=200"`
	Content string `json:"content"`
}

// ListPages handles GET /api/v1/pages
func (h *PageHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pageRepo.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch pages")
		return
	}

	response.Success(w, pages)
}

// GetPage handles GET /api/v1/pages/{slug}
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := request.GetURLParam(r, "slug")
	if slug == "" {
		response.BadRequest(w, "Page slug is required")
		return
	}

	page, err := h.pageRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Page not found")
			return
		}
		response.InternalError(w, "Failed to fetch page")
		return
	}

	response.Success(w, page)
}

// CreatePage handles POST /api/v1/admin/pages
func (h *PageHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req CreatePageRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	page := &models.Page{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
	}

	if err := h.pageRepo.Create(r.Context(), page); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Conflict(w, "A page with this slug already exists")
			return
		}
		response.InternalError(w, "Failed to create page")
		return
	}

	response.Created(w, page)
}

// UpdatePage handles PUT /api/v1/admin/pages/{id}
func (h *PageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid page ID")
		return
	}

	var req UpdatePageRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	fields := bson.M{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Content != "" {
		fields["content"] = req.Content
	}
	if len(fields) == 0 {
		response.BadRequest(w, "No fields to update")
		return
	}

	if err := h.pageRepo.Update(r.Context(), id, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Page not found")
			return
		}
		response.InternalError(w, "Failed to update page")
		return
	}

	response.Message(w, "Page updated")
}

// DeletePage handles DELETE /api/v1/admin/pages/{id}
func (h *PageHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid page ID")
		return
	}

	if err := h.pageRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Page not found")
			return
		}
		response.InternalError(w, "Failed to delete page")
		return
	}

	response.Message(w, "Page deleted")
}
