package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/art-nursing/backend/internal/api/request"
	"github.com/art-nursing/backend/internal/api/response"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
	"github.com/art-nursing/backend/internal/upload"
)

// NoticeHandler handles notice board endpoints
type NoticeHandler struct {
	noticeRepo *repository.NoticeRepository
	uploads    *upload.Store
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(noticeRepo *repository.NoticeRepository, uploads *upload.Store) *NoticeHandler {
	return &NoticeHandler{
		noticeRepo: noticeRepo,
		uploads:    uploads,
	}
}

// ListNotices handles GET /api/v1/notices
// Pinned notices sort first, then newest by publish date.
func (h *NoticeHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	limit := request.GetQueryIntWithRange(r, "limit", 20, 1, 100)
	offset := request.GetQueryInt(r, "offset", 0)

	result, err := h.noticeRepo.List(r.Context(), limit, offset)
	if err != nil {
		response.InternalError(w, "Failed to fetch notices")
		return
	}

	pagination := response.NewPagination(result.Total, limit, offset)
	response.SuccessWithPagination(w, result.Notices, pagination, nil)
}

// GetNotice handles GET /api/v1/notices/{id}
func (h *NoticeHandler) GetNotice(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid notice ID")
		return
	}

	notice, err := h.noticeRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Notice not found")
			return
		}
		response.InternalError(w, "Failed to fetch notice")
		return
	}

	response.Success(w, notice)
}

type noticeForm struct {
	Title string `validate:"required,min=3,max=200"`
	Body  string `validate:"max=10000"`
}

// CreateNotice handles POST /api/v1/admin/notices
// Multipart form with an optional document attachment.
func (h *NoticeHandler) CreateNotice(w http.ResponseWriter, r *http.Request) {
	form := noticeForm{
		Title: r.FormValue("title"),
		Body:  r.FormValue("body"),
	}
	if err := request.Validate(&form); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	pinned, _ := strconv.ParseBool(r.FormValue("pinned"))

	notice := &models.Notice{
		Title:  form.Title,
		Body:   form.Body,
		Pinned: pinned,
	}

	if v := r.FormValue("published_at"); v != "" {
		publishedAt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(w, "Field published_at must be an RFC3339 timestamp")
			return
		}
		notice.PublishedAt = publishedAt
	}

	attachment, err := h.uploads.FromRequest(r, "attachment", upload.Documents)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if attachment != nil {
		notice.Attachment = attachment.Path
	}

	if err := h.noticeRepo.Create(r.Context(), notice); err != nil {
		if attachment != nil {
			attachment.Discard()
		}
		response.InternalError(w, "Failed to create notice")
		return
	}

	response.Created(w, notice)
}

// UpdateNotice handles PUT /api/v1/admin/notices/{id}
func (h *NoticeHandler) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid notice ID")
		return
	}

	fields := bson.M{}
	if v := r.FormValue("title"); v != "" {
		fields["title"] = v
	}
	if v := r.FormValue("body"); v != "" {
		fields["body"] = v
	}
	if v := r.FormValue("pinned"); v != "" {
		pinned, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "Field pinned must be a boolean")
			return
		}
		fields["pinned"] = pinned
	}
	if v := r.FormValue("published_at"); v != "" {
		publishedAt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(w, "Field published_at must be an RFC3339 timestamp")
			return
		}
		fields["publishedAt"] = publishedAt
	}

	attachment, err := h.uploads.FromRequest(r, "attachment", upload.Documents)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if attachment != nil {
		fields["attachment"] = attachment.Path
	}

	if len(fields) == 0 {
		response.BadRequest(w, "No fields to update")
		return
	}

	var oldAttachment string
	if attachment != nil {
		if existing, err := h.noticeRepo.GetByID(r.Context(), id); err == nil {
			oldAttachment = existing.Attachment
		}
	}

	if err := h.noticeRepo.Update(r.Context(), id, fields); err != nil {
		if attachment != nil {
			attachment.Discard()
		}
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Notice not found")
			return
		}
		response.InternalError(w, "Failed to update notice")
		return
	}

	if oldAttachment != "" {
		_ = h.uploads.Remove(oldAttachment)
	}

	response.Message(w, "Notice updated")
}

// DeleteNotice handles DELETE /api/v1/admin/notices/{id}
func (h *NoticeHandler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid notice ID")
		return
	}

	notice, err := h.noticeRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Notice not found")
			return
		}
		response.InternalError(w, "Failed to delete notice")
		return
	}

	if err := h.noticeRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Notice not found")
			return
		}
		response.InternalError(w, "Failed to delete notice")
		return
	}

	if notice.Attachment != "" {
		_ = h.uploads.Remove(notice.Attachment)
	}

	response.Message(w, "Notice deleted")
}
