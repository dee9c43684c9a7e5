package http

import (
	"net/http"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/service"
)

type ToolHandler struct {
	toolSvc service.ToolService
}

func NewToolHandler(toolSvc service.ToolService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc}
}

type toolRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	PhotoURL       string `json:"photo_url"`
	DailyRateCents int32  `json:"daily_rate_cents"`
	BrandID        int32  `json:"brand_id"`
	CategoryID     int32  `json:"category_id"`
	Featured       bool   `json:"featured"`
}

func (req *toolRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if req.DailyRateCents < 0 {
		return "daily_rate_cents must be non-negative"
	}
	if req.BrandID <= 0 || req.CategoryID <= 0 {
		return "brand_id and category_id are required"
	}
	return ""
}

func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req toolRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	tool := &domain.Tool{
		Name:           req.Name,
		Description:    req.Description,
		PhotoURL:       req.PhotoURL,
		DailyRateCents: req.DailyRateCents,
		BrandID:        req.BrandID,
		CategoryID:     req.CategoryID,
		AdminID:        claims.Subject,
		Featured:       req.Featured,
	}
	if err := h.toolSvc.Create(r.Context(), tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	tool, err := h.toolSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req toolRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	tool := &domain.Tool{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		PhotoURL:       req.PhotoURL,
		DailyRateCents: req.DailyRateCents,
		BrandID:        req.BrandID,
		CategoryID:     req.CategoryID,
		Featured:       req.Featured,
	}
	if err := h.toolSvc.Update(r.Context(), tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.toolSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// List serves both the plain listing and term search; a "term" query
// parameter switches to search mode.
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")

	var (
		tools []domain.Tool
		err   error
	)
	if term != "" {
		tools, err = h.toolSvc.Search(r.Context(), term)
	} else {
		tools, err = h.toolSvc.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListFeatured(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

type setFeaturedRequest struct {
	Featured bool `json:"featured"`
}

func (h *ToolHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req setFeaturedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.toolSvc.SetFeatured(r.Context(), id, req.Featured); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
