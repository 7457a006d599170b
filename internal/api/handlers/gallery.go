package handlers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/api/request"
	"github.com/art-nursing/backend/internal/api/response"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
	"github.com/art-nursing/backend/internal/upload"
)

// GalleryHandler handles photo and video gallery endpoints
type GalleryHandler struct {
	galleryRepo *repository.GalleryRepository
	uploads     *upload.Store
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryRepo *repository.GalleryRepository, uploads *upload.Store) *GalleryHandler {
	return &GalleryHandler{
		galleryRepo: galleryRepo,
		uploads:     uploads,
	}
}

// ListPhotos handles GET /api/v1/gallery/photos
// Query params: album
func (h *GalleryHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	album := request.GetQueryString(r, "album", "")

	photos, err := h.galleryRepo.ListPhotos(r.Context(), album)
	if err != nil {
		response.InternalError(w, "Failed to fetch photos")
		return
	}

	response.Success(w, photos)
}

// UploadPhoto handles POST /api/v1/admin/gallery/photos
// Multipart form with a required image.
func (h *GalleryHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	image, err := h.uploads.FromRequest(r, "image", upload.Images)
	if err != nil {
		if errors.Is(err, upload.ErrNoFile) {
			response.BadRequest(w, "Photo image is required")
			return
		}
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}

	photo := &models.Photo{
		Caption: r.FormValue("caption"),
		Image:   image.Path,
		Album:   r.FormValue("album"),
	}

	if err := h.galleryRepo.CreatePhoto(r.Context(), photo); err != nil {
		image.Discard()
		response.InternalError(w, "Failed to save photo")
		return
	}

	response.Created(w, photo)
}

// DeletePhoto handles DELETE /api/v1/admin/gallery/photos/{id}
func (h *GalleryHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photo ID")
		return
	}

	photo, err := h.galleryRepo.GetPhoto(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Photo not found")
			return
		}
		response.InternalError(w, "Failed to delete photo")
		return
	}

	if err := h.galleryRepo.DeletePhoto(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Photo not found")
			return
		}
		response.InternalError(w, "Failed to delete photo")
		return
	}

	if photo.Image != "" {
		_ = h.uploads.Remove(photo.Image)
	}

	response.Message(w, "Photo deleted")
}

// CreateVideoRequest adds a video embed to the gallery
type CreateVideoRequest struct {
	Title string `json:"title" validate:"required,min=2,max=200"`
	URL   string `json:"url" validate:"required,url"`
}

// ListVideos handles GET /api/v1/gallery/videos
func (h *GalleryHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.galleryRepo.ListVideos(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch videos")
		return
	}

	response.Success(w, videos)
}

// CreateVideo handles POST /api/v1/admin/gallery/videos
func (h *GalleryHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req CreateVideoRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	video := &models.Video{
		Title: req.Title,
		URL:   req.URL,
	}

	if err := h.galleryRepo.CreateVideo(r.Context(), video); err != nil {
		response.InternalError(w, "Failed to save video")
		return
	}

	response.Created(w, video)
}

// DeleteVideo handles DELETE /api/v1/admin/gallery/videos/{id}
func (h *GalleryHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid video ID")
		return
	}

	if err := h.galleryRepo.DeleteVideo(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Video not found")
			return
		}
		response.InternalError(w, "Failed to delete video")
		return
	}

	response.Message(w, "Video deleted")
}
