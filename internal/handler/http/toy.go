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

// maxBodyBytes caps request bodies at 1MB.
const maxBodyBytes = 1 << 20

// ToyHandler handles HTTP requests for toy endpoints.
type ToyHandler struct {
	service *service.ToyService
	logger  *slog.Logger
}

// NewToyHandler creates a new toy HTTP handler.
func NewToyHandler(svc *service.ToyService, logger *slog.Logger) *ToyHandler {
	return &ToyHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CreateToyRequest is the JSON request body for creating a toy.
type CreateToyRequest struct {
	SKU         string  `json:"sku" validate:"required,min=3,max=20"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	BrandID     *string `json:"brand_id" validate:"omitempty,uuid"`
	Price       *int64  `json:"price" validate:"omitempty,gte=100"`
	AgeRange    *string `json:"age_range"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,min=3"`
}

// UpdateToyRequest is the JSON request body for a partial toy update.
type UpdateToyRequest struct {
	SKU         *string `json:"sku" validate:"omitempty,min=3,max=20"`
	Name        *string `json:"name" validate:"omitempty,min=3,max=100"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	BrandID     *string `json:"brand_id" validate:"omitempty,uuid"`
	Price       *int64  `json:"price" validate:"omitempty,gte=100"`
	AgeRange    *string `json:"age_range"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,min=3"`
}

// ReplaceToyRequest is the JSON request body for a full PUT replace; it
// carries the same required set as create.
type ReplaceToyRequest CreateToyRequest

// --- Handlers ---

// ListToys handles GET /toys.
func (h *ToyHandler) ListToys(w http.ResponseWriter, r *http.Request) {
	toys, err := h.service.ListToys(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toys)
}

// SearchToys handles GET /toys/search?q=
func (h *ToyHandler) SearchToys(w http.ResponseWriter, r *http.Request) {
	toys, err := h.service.SearchToys(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toys)
}

// GetToy handles GET /toys/{slug}.
func (h *ToyHandler) GetToy(w http.ResponseWriter, r *http.Request) {
	toy, err := h.service.GetToyBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toy)
}

// CreateToy handles POST /toys.
func (h *ToyHandler) CreateToy(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req CreateToyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	input := &service.CreateToyInput{
		SKU:         req.SKU,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Price:       req.Price,
		AgeRange:    req.AgeRange,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	toy, err := h.service.CreateToy(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toy)
}

// UpdateToy handles PATCH /toys/{id}: a partial update.
func (h *ToyHandler) UpdateToy(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req UpdateToyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	input := &service.UpdateToyInput{
		SKU:         req.SKU,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Price:       req.Price,
		AgeRange:    req.AgeRange,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	toy, err := h.service.UpdateToy(r.Context(), id.String(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toy)
}

// ReplaceToy handles PUT /toys/{id}: replace-or-create under the path id.
func (h *ToyHandler) ReplaceToy(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req ReplaceToyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := validator.Validate(CreateToyRequest(req)); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	input := &service.ReplaceToyInput{
		SKU:         req.SKU,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Price:       req.Price,
		AgeRange:    req.AgeRange,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	toy, created, err := h.service.ReplaceToy(r.Context(), id.String(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, toy)
}

// DeleteToy handles DELETE /toys/{id}.
func (h *ToyHandler) DeleteToy(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	confirmation, err := h.service.DeleteToy(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, confirmation)
}
