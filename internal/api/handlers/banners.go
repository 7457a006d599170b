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

// BannerHandler handles homepage banner endpoints
type BannerHandler struct {
	bannerRepo *repository.BannerRepository
	uploads    *upload.Store
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(bannerRepo *repository.BannerRepository, uploads *upload.Store) *BannerHandler {
	return &BannerHandler{
		bannerRepo: bannerRepo,
		uploads:    uploads,
	}
}

// ListBanners handles GET /api/v1/banners
// Public listing returns active banners in display order.
func (h *BannerHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerRepo.List(r.Context(), true)
	if err != nil {
		response.InternalError(w, "Failed to fetch banners")
		return
	}

	response.Success(w, banners)
}

// ListAllBanners handles GET /api/v1/admin/banners
func (h *BannerHandler) ListAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerRepo.List(r.Context(), false)
	if err != nil {
		response.InternalError(w, "Failed to fetch banners")
		return
	}

	response.Success(w, banners)
}

// CreateBanner handles POST /api/v1/admin/banners
// Multipart form with a required banner image.
func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	image, err := h.uploads.FromRequest(r, "image", upload.Images)
	if err != nil {
		if errors.Is(err, upload.ErrNoFile) {
			response.BadRequest(w, "Banner image is required")
			return
		}
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}

	order, _ := strconv.Atoi(r.FormValue("order"))
	active := true
	if v := r.FormValue("active"); v != "" {
		active, _ = strconv.ParseBool(v)
	}

	banner := &models.Banner{
		Title:  r.FormValue("title"),
		Image:  image.Path,
		Link:   r.FormValue("link"),
		Order:  order,
		Active: active,
	}

	if err := h.bannerRepo.Create(r.Context(), banner); err != nil {
		image.Discard()
		response.InternalError(w, "Failed to create banner")
		return
	}

	response.Created(w, banner)
}

// UpdateBanner handles PUT /api/v1/admin/banners/{id}
func (h *BannerHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid banner ID")
		return
	}

	fields := bson.M{}
	if v := r.FormValue("title"); v != "" {
		fields["title"] = v
	}
	if v := r.FormValue("link"); v != "" {
		fields["link"] = v
	}
	if v := r.FormValue("order"); v != "" {
		order, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Field order must be an integer")
			return
		}
		fields["order"] = order
	}
	if v := r.FormValue("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "Field active must be a boolean")
			return
		}
		fields["active"] = active
	}

	image, err := h.uploads.FromRequest(r, "image", upload.Images)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if image != nil {
		fields["image"] = image.Path
	}

	if len(fields) == 0 {
		response.BadRequest(w, "No fields to update")
		return
	}

	var oldImage string
	if image != nil {
		if existing, err := h.bannerRepo.GetByID(r.Context(), id); err == nil {
			oldImage = existing.Image
		}
	}

	if err := h.bannerRepo.Update(r.Context(), id, fields); err != nil {
		if image != nil {
			image.Discard()
		}
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Banner not found")
			return
		}
		response.InternalError(w, "Failed to update banner")
		return
	}

	if oldImage != "" {
		_ = h.uploads.Remove(oldImage)
	}

	response.Message(w, "Banner updated")
}

// DeleteBanner handles DELETE /api/v1/admin/banners/{id}
func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid banner ID")
		return
	}

	banner, err := h.bannerRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Banner not found")
			return
		}
		response.InternalError(w, "Failed to delete banner")
		return
	}

	if err := h.bannerRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Banner not found")
			return
		}
		response.InternalError(w, "Failed to delete banner")
		return
	}

	if banner.Image != "" {
		_ = h.uploads.Remove(banner.Image)
	}

	response.Message(w, "Banner deleted")
}
