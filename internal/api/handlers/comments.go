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

// CommentHandler handles blog comment endpoints
type CommentHandler struct {
	commentRepo *repository.CommentRepository
	blogRepo    *repository.BlogRepository
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentRepo *repository.CommentRepository, blogRepo *repository.BlogRepository) *CommentHandler {
	return &CommentHandler{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
	}
}

// CreateCommentRequest is a public comment submission
type CreateCommentRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required,min=2,max=2000"`
}

// CreateComment handles POST /api/v1/blogs/{slug}/comments
// Comments are stored unapproved and held for moderation.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	slug := request.GetURLParam(r, "slug")

	blog, err := h.blogRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Blog not found")
			return
		}
		response.InternalError(w, "Failed to submit comment")
		return
	}

	var req CreateCommentRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	comment := &models.Comment{
		BlogID: blog.ID,
		Name:   req.Name,
		Email:  req.Email,
		Body:   req.Body,
	}

	if err := h.commentRepo.Create(r.Context(), comment); err != nil {
		response.InternalError(w, "Failed to submit comment")
		return
	}

	response.JSON(w, http.StatusCreated, response.APIResponse{
		Data:    comment,
		Message: "Comment submitted and awaiting approval",
	})
}

// ListComments handles GET /api/v1/blogs/{slug}/comments
// Returns approved comments only.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	slug := request.GetURLParam(r, "slug")

	blog, err := h.blogRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Blog not found")
			return
		}
		response.InternalError(w, "Failed to fetch comments")
		return
	}

	comments, err := h.commentRepo.ListByBlog(r.Context(), blog.ID, true)
	if err != nil {
		response.InternalError(w, "Failed to fetch comments")
		return
	}

	response.Success(w, comments)
}

// ListPendingComments handles GET /api/v1/admin/comments/pending
func (h *CommentHandler) ListPendingComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentRepo.ListPending(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch pending comments")
		return
	}

	response.Success(w, comments)
}

// ApproveComment handles POST /api/v1/admin/comments/{id}/approve
func (h *CommentHandler) ApproveComment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.commentRepo.Approve(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Comment not found")
			return
		}
		response.InternalError(w, "Failed to approve comment")
		return
	}

	response.Message(w, "Comment approved")
}

// DeleteComment handles DELETE /api/v1/admin/comments/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.commentRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Comment not found")
			return
		}
		response.InternalError(w, "Failed to delete comment")
		return
	}

	response.Message(w, "Comment deleted")
}
