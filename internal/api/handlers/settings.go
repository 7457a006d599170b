package handlers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/art-nursing/backend/internal/api/request"
	"github.com/art-nursing/backend/internal/api/response"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/repository"
	"github.com/art-nursing/backend/internal/upload"
)

// SiteHandler handles the singleton settings and footer endpoints
type SiteHandler struct {
	siteRepo *repository.SiteRepository
	uploads  *upload.Store
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteRepo *repository.SiteRepository, uploads *upload.Store) *SiteHandler {
	return &SiteHandler{
		siteRepo: siteRepo,
		uploads:  uploads,
	}
}

// GetSettings handles GET /api/v1/settings
func (h *SiteHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.siteRepo.GetSettings(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch settings")
		return
	}

	response.Success(w, settings)
}

type settingsForm struct {
	Email string `validate:"omitempty,email"`
}

// UpdateSettings handles PUT /api/v1/admin/settings
// Multipart form; text fields plus optional logo and favicon images.
func (h *SiteHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	form := settingsForm{Email: r.FormValue("email")}
	if err := request.Validate(&form); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	fields := bson.M{}
	formKeys := map[string]string{
		"site_name": "siteName",
		"tagline":   "tagline",
		"email":     "email",
		"phone":     "phone",
		"address":   "address",
	}
	for formKey, docKey := range formKeys {
		if v := r.FormValue(formKey); v != "" {
			fields[docKey] = v
		}
	}

	logo, err := h.uploads.FromRequest(r, "logo", upload.Images)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if logo != nil {
		fields["logo"] = logo.Path
	}

	favicon, err := h.uploads.FromRequest(r, "favicon", upload.Images)
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		if logo != nil {
			logo.Discard()
		}
		response.BadRequest(w, uploadErrorMessage(err))
		return
	}
	if favicon != nil {
		fields["favicon"] = favicon.Path
	}

	if len(fields) == 0 {
		response.BadRequest(w, "No fields to update")
		return
	}

	// Old images are removed only after the new ones are saved
	old, _ := h.siteRepo.GetSettings(r.Context())

	if err := h.siteRepo.UpdateSettings(r.Context(), fields); err != nil {
		if logo != nil {
			logo.Discard()
		}
		if favicon != nil {
			favicon.Discard()
		}
		response.InternalError(w, "Failed to update settings")
		return
	}

	if old != nil {
		if logo != nil && old.Logo != "" {
			_ = h.uploads.Remove(old.Logo)
		}
		if favicon != nil && old.Favicon != "" {
			_ = h.uploads.Remove(old.Favicon)
		}
	}

	response.Message(w, "Settings updated")
}

// GetFooter handles GET /api/v1/footer
func (h *SiteHandler) GetFooter(w http.ResponseWriter, r *http.Request) {
	footer, err := h.siteRepo.GetFooter(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch footer")
		return
	}

	response.Success(w, footer)
}

// UpdateFooterRequest replaces the footer content
type UpdateFooterRequest struct {
	About     string                `json:"about" validate:"max=2000"`
	Columns   []models.FooterColumn `json:"columns" validate:"dive"`
	Copyright string                `json:"copyright" validate:"max=200"`
}

// UpdateFooter handles PUT /api/v1/admin/footer
func (h *SiteHandler) UpdateFooter(w http.ResponseWriter, r *http.Request) {
	var req UpdateFooterRequest
	if err := request.DecodeAndValidate(r, &req); err != nil {
		response.BadRequest(w, request.ValidationMessage(err))
		return
	}

	fields := bson.M{
		"about":     req.About,
		"columns":   req.Columns,
		"copyright": req.Copyright,
	}

	if err := h.siteRepo.UpdateFooter(r.Context(), fields); err != nil {
		response.InternalError(w, "Failed to update footer")
		return
	}

	response.Message(w, "Footer updated")
}
