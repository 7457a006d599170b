package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/api/request"
	"github.com/art-nursing/backend/internal/api/response"
	"github.com/art-nursing/backend/internal/cache"
	"github.com/art-nursing/backend/internal/middleware"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
	"github.com/art-nursing/backend/internal/service"
	"github.com/art-nursing/backend/internal/upload"
)

// BlogHandler handles blog HTTP requests
type BlogHandler struct {
	blogService *service.BlogService
	uploads     *upload.Store
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *service.BlogService, uploads *upload.Store) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		uploads:     uploads,
	}
}

// ListBlogs handles GET /api/v1/blogs
// Query params: limit (1-100, default 20), offset, category, all (admin listings include drafts)
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := request.GetQueryIntWithRange(r, "limit", 20, 1, 100)
	offset := request.GetQueryInt(r, "offset", 0)
	category := request.GetQueryString(r, "category", "")

	opts := repository.BlogListOptions{
		Limit:         limit,
		Offset:        offset,
		Category:      category,
		PublishedOnly: true,
	}

	result, err := h.blogService.List(ctx, opts)
	if err != nil {
		response.InternalError(w, "Failed to fetch blogs")
		return
	}

	// Generate ETag for caching
	etag := cache.GetETag(result)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=60")

	if match := r.Header.Get("If-None-Match"); match == etag {
		response.NotModified(w)
		return
	}

	pagination := response.NewPagination(result.Total, limit, offset)
	meta := response.NewMeta(
		middleware.GetRequestID(ctx),
		middleware.GetResponseTimeMs(ctx),
	)

	response.SuccessWithPagination(w, result.Blogs, pagination, meta)
}

// ListAllBlogs handles GET /api/v1/admin/blogs
// Includes unpublished drafts; no ETag since admins expect fresh data.
func (h *BlogHandler) ListAllBlogs(w http.ResponseWriter, r *http.Request) {
	limit := request.GetQueryIntWithRange(r, "limit", 20, 1, 100)
	offset := request.GetQueryInt(r, "offset", 0)

	opts := repository.BlogListOptions{
		Limit:  limit,
		Offset: offset,
	}

	result, err := h.blogService.List(r.Context(), opts)
	if err != nil {
		response.InternalError(w, "Failed to fetch blogs")
		return
	}

	pagination := response.NewPagination(result.Total, limit, offset)
	response.SuccessWithPagination(w, result.Blogs, pagination, nil)
}

// GetBlog handles GET /api/v1/blogs/{slug}
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	slug := request.GetURLParam(r, "slug")
	if slug == "" {
		response.BadRequest(w, "Blog slug is required")
		return
	}

	blog, err := h.blogService.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Blog not found")
			return
		}
		response.InternalError(w, "Failed to fetch blog")
		return
	}

	etag := cache.GetETag(blog)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=300")

	if match := r.Header.Get("If-None-Match"); match == etag {
		response.NotModified(w)
		return
	}

	response.Success(w, blog)
}

// blogForm holds the multipart form fields of a blog create/update
type blogForm struct {
	Title    string `validate:"required,min=3,max=200"`
	Content  string `validate:"required"`
	Excerpt  string `validate:"max=500"`
	Category string
	Author   string
}

// CreateBlog handles POST /api/v1/admin/blogs
// Multipart form with text fields plus an optional cover image.
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	form := blogForm{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Excerpt:  r.FormValue("excerpt"),
		Category: r.FormValue("category"),
		Author:   r.FormValue("author"),
	}
	if err := request.Validate(&form); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	published, _ := strconv.ParseBool(r.FormValue("published"))

	blog := &models.Blog{
		Title:     form.Title,
		Content:   form.Content,
		Excerpt:   form.Excerpt,
		Category:  form.Category,
		Author:    form.Author,
		Published: published,
	}

	cover, err := h.uploads.FromRequest(r, "cover", upload.Images)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if cover != nil {
		blog.CoverImage = cover.Path
	}

	if err := h.blogService.Create(r.Context(), blog); err != nil {
		if cover != nil {
			cover.Discard()
		}
		if errors.Is(err, repository.ErrDuplicate) {
			response.Conflict(w, "A blog with this title already exists")
			return
		}
		response.InternalError(w, "Failed to create blog")
		return
	}

	response.Created(w, blog)
}

// UpdateBlog handles PUT /api/v1/admin/blogs/{id}
// Only fields present in the form are changed.
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid blog ID")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"title", "content", "excerpt", "category", "author"} {
		if v := r.FormValue(key); v != "" {
			fields[key] = v
		}
	}
	if v := r.FormValue("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "Field published must be a boolean")
			return
		}
		fields["published"] = published
	}

	cover, err := h.uploads.FromRequest(r, "cover", upload.Images)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if cover != nil {
		fields["coverImage"] = cover.Path
	}

	if len(fields) == 0 {
		response.BadRequest(w, "No fields to update")
		return
	}

	// Capture the old cover so it can be removed once the update sticks
	var oldCover string
	if cover != nil {
		if existing, err := h.blogService.GetByID(r.Context(), id); err == nil {
			oldCover = existing.CoverImage
		}
	}

	if err := h.blogService.Update(r.Context(), id, fields); err != nil {
		if cover != nil {
			cover.Discard()
		}
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Blog not found")
			return
		}
		response.InternalError(w, "Failed to update blog")
		return
	}

	if oldCover != "" {
		_ = h.uploads.Remove(oldCover)
	}

	response.Message(w, "Blog updated")
}

// DeleteBlog handles DELETE /api/v1/admin/blogs/{id}
func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid blog ID")
		return
	}

	blog, err := h.blogService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Blog not found")
			return
		}
		response.InternalError(w, "Failed to delete blog")
		return
	}

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Blog not found")
			return
		}
		response.InternalError(w, "Failed to delete blog")
		return
	}

	if blog.CoverImage != "" {
		_ = h.uploads.Remove(blog.CoverImage)
	}

	response.Message(w, "Blog deleted")
}

// uploadErrorMessage maps upload errors to user-facing messages
func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrFileTooLarge):
		return "Uploaded file is too large"
	case errors.Is(err, upload.ErrBadExtension):
		return "Uploaded file type is not allowed"
	default:
		return "Failed to process uploaded file"
	}
}
