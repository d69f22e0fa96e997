package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/toyboxhq/toybox/internal/service"
	"github.com/toyboxhq/toybox/pkg/httputil"
	"github.com/toyboxhq/toybox/pkg/validator"
)

// BrandHandler handles HTTP requests for brand endpoints.
type BrandHandler struct {
	service *service.BrandService
	logger  *slog.Logger
}

// NewBrandHandler creates a new brand HTTP handler.
func NewBrandHandler(svc *service.BrandService, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{
		service: svc,
		logger:  logger,
	}
}

// BrandRequest is the JSON request body for creating or replacing a brand.
type BrandRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=60"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url"`
}

// UpdateBrandRequest is the JSON request body for a partial brand update.
type UpdateBrandRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=60"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url"`
}

// ListBrands handles GET /brands.
func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrands(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, brands)
}

// GetBrand handles GET /brands/{slug} and includes the toys assigned to the
// brand.
func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.service.GetBrandBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, brand)
}

// CreateBrand handles POST /brands.
func (h *BrandHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	brand, err := h.service.CreateBrand(r.Context(), &service.BrandInput{Name: req.Name, LogoURL: req.LogoURL})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, brand)
}

// UpdateBrand handles PATCH /brands/{id}.
func (h *BrandHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req UpdateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	brand, err := h.service.UpdateBrand(r.Context(), id.String(), &service.UpdateBrandInput{Name: req.Name, LogoURL: req.LogoURL})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, brand)
}

// ReplaceBrand handles PUT /brands/{id}: replace-or-create under the path id.
func (h *BrandHandler) ReplaceBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	brand, created, err := h.service.ReplaceBrand(r.Context(), id.String(), &service.BrandInput{Name: req.Name, LogoURL: req.LogoURL})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, brand)
}

// DeleteBrand handles DELETE /brands/{id}.
func (h *BrandHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	confirmation, err := h.service.DeleteBrand(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, confirmation)
}
