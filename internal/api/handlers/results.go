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
	"github.com/art-nursing/backend/internal/upload"
)

// ResultHandler handles exam result endpoints
type ResultHandler struct {
	resultRepo *repository.ResultRepository
	uploads    *upload.Store
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultRepo *repository.ResultRepository, uploads *upload.Store) *ResultHandler {
	return &ResultHandler{
		resultRepo: resultRepo,
		uploads:    uploads,
	}
}

// ListResults handles GET /api/v1/results
// Query params: session, semester
func (h *ResultHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	session := request.GetQueryString(r, "session", "")
	semester := request.GetQueryString(r, "semester", "")

	results, err := h.resultRepo.List(r.Context(), session, semester)
	if err != nil {
		response.InternalError(w, "Failed to fetch results")
		return
	}

	response.Success(w, results)
}

// GetResult handles GET /api/v1/results/{id}
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid result ID")
		return
	}

	result, err := h.resultRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Result not found")
			return
		}
		response.InternalError(w, "Failed to fetch result")
		return
	}

	response.Success(w, result)
}

type resultForm struct {
	Title    string `validate:"required,min=3,max=200"`
	Session  string `validate:"required,max=50"`
	Semester string `validate:"max=50"`
}

// CreateResult handles POST /api/v1/admin/results
// Multipart form with a required result sheet document.
func (h *ResultHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	form := resultForm{
		Title:    r.FormValue("title"),
		Session:  r.FormValue("session"),
		Semester: r.FormValue("semester"),
	}
	if err := request.Validate(&form); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	file, err := h.uploads.FromRequest(r, "file", upload.Documents)
	if err != nil {
		if errors.Is(err, upload.ErrNoFile) {
			response.BadRequest(w, "Result file is required")
			return
		}
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}

	result := &models.Result{
		Title:    form.Title,
		Session:  form.Session,
		Semester: form.Semester,
		File:     file.Path,
	}

	if err := h.resultRepo.Create(r.Context(), result); err != nil {
		file.Discard()
		response.InternalError(w, "Failed to create result")
		return
	}

	response.Created(w, result)
}

// UpdateResult handles PUT /api/v1/admin/results/{id}
func (h *ResultHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid result ID")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"title", "session", "semester"} {
		if v := r.FormValue(key); v != "" {
			fields[key] = v
		}
	}

	file, err := h.uploads.FromRequest(r, "file", upload.Documents)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if file != nil {
		fields["file"] = file.Path
	}

	if len(fields) == 0 {
		response.BadRequest(w, "No fields to update")
		return
	}

	var oldFile string
	if file != nil {
		if existing, err := h.resultRepo.GetByID(r.Context(), id); err == nil {
			oldFile = existing.File
		}
	}

	if err := h.resultRepo.Update(r.Context(), id, fields); err != nil {
		if file != nil {
			file.Discard()
		}
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Result not found")
			return
		}
		response.InternalError(w, "Failed to update result")
		return
	}

	if oldFile != "" {
		_ = h.uploads.Remove(oldFile)
	}

	response.Message(w, "Result updated")
}

// DeleteResult handles DELETE /api/v1/admin/results/{id}
func (h *ResultHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(request.GetURLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid result ID")
		return
	}

	result, err := h.resultRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Result not found")
			return
		}
		response.InternalError(w, "Failed to delete result")
		return
	}

	if err := h.resultRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(w, "Result not found")
			return
		}
		response.InternalError(w, "Failed to delete result")
		return
	}

	if result.File != "" {
		_ = h.uploads.Remove(result.File)
	}

	response.Message(w, "Result deleted")
}
