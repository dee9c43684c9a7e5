package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"toolrental-backend/internal/security"
	"toolrental-backend/internal/service"
)

type ReservationHandler struct {
	bookingSvc service.BookingService
}

func NewReservationHandler(bookingSvc service.BookingService) *ReservationHandler {
	return &ReservationHandler{bookingSvc: bookingSvc}
}

type createReservationRequest struct {
	ToolID      int32  `json:"tool_id"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok || claims.Role != security.RoleCustomer {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "only customers can create reservations"})
		return
	}

	var req createReservationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reservation, err := h.bookingSvc.Create(r.Context(), claims.Subject, req.ToolID, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.bookingSvc.Confirm(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	// Delivery is asynchronous; the response reflects the durable state only.
	writeJSON(w, http.StatusOK, result.Reservation)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.bookingSvc.Cancel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.bookingSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.bookingSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *ReservationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	details, err := h.bookingSvc.ListByCustomer(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

type availabilityResponse struct {
	ToolID    int32  `json:"tool_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	available, err := h.bookingSvc.CheckAvailability(r.Context(), id, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availabilityResponse{
		ToolID:    id,
		StartDate: start,
		EndDate:   end,
		Available: available,
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return int32(id), true
}
