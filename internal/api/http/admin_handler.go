package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	admin, err := h.adminSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admins)
}

type updateAdminRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Level int32  `json:"level"`
}

func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateAdminRequest
	if !decodeBody(w, r, &req) {
		return
	}
	level := domain.AdminLevel(req.Level)
	if level < domain.AdminLevelCommon || level > domain.AdminLevelManager {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "level must be between 1 and 3"})
		return
	}

	admin := &domain.Admin{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Level: level,
	}
	if err := h.adminSvc.Update(r.Context(), admin); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.adminSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
