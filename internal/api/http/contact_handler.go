package http

import (
	"net/http"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/security"
	"toolrental-backend/internal/service"
)

// ContactHandler serves the customer-owned addresses and phones. Customers
// manage their own records; the subject claim is the owner, never the body.
type ContactHandler struct {
	addressSvc service.AddressService
	phoneSvc   service.PhoneService
}

func NewContactHandler(addressSvc service.AddressService, phoneSvc service.PhoneService) *ContactHandler {
	return &ContactHandler{addressSvc: addressSvc, phoneSvc: phoneSvc}
}

func customerClaims(w http.ResponseWriter, r *http.Request) (*security.UserClaims, bool) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok || claims.Role != security.RoleCustomer {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "customer account required"})
		return nil, false
	}
	return claims, true
}

type addressRequest struct {
	Street   string `json:"street"`
	Number   int32  `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

func (h *ContactHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	claims, ok := customerClaims(w, r)
	if !ok {
		return
	}
	var req addressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Street == "" || req.City == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "street and city are required"})
		return
	}

	address := &domain.Address{
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		ZipCode:    req.ZipCode,
		CustomerID: claims.Subject,
	}
	if err := h.addressSvc.Create(r.Context(), address); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, address)
}

func (h *ContactHandler) ListMyAddresses(w http.ResponseWriter, r *http.Request) {
	claims, ok := customerClaims(w, r)
	if !ok {
		return
	}
	addresses, err := h.addressSvc.ListByCustomer(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

func (h *ContactHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	claims, ok := customerClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req addressRequest
	if !decodeBody(w, r, &req) {
		return
	}

	address := &domain.Address{
		ID:         id,
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		ZipCode:    req.ZipCode,
		CustomerID: claims.Subject,
	}
	if err := h.addressSvc.Update(r.Context(), address); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, address)
}

func (h *ContactHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	if _, ok := customerClaims(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.addressSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type phoneRequest struct {
	Number    string  `json:"number"`
	AltNumber *string `json:"alt_number,omitempty"`
}

func (h *ContactHandler) CreatePhone(w http.ResponseWriter, r *http.Request) {
	claims, ok := customerClaims(w, r)
	if !ok {
		return
	}
	var req phoneRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Number == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "number is required"})
		return
	}

	phone := &domain.Phone{
		Number:     req.Number,
		AltNumber:  req.AltNumber,
		CustomerID: claims.Subject,
	}
	if err := h.phoneSvc.Create(r.Context(), phone); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, phone)
}

func (h *ContactHandler) ListMyPhones(w http.ResponseWriter, r *http.Request) {
	claims, ok := customerClaims(w, r)
	if !ok {
		return
	}
	phones, err := h.phoneSvc.ListByCustomer(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, phones)
}

func (h *ContactHandler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	claims, ok := customerClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req phoneRequest
	if !decodeBody(w, r, &req) {
		return
	}

	phone := &domain.Phone{
		ID:         id,
		Number:     req.Number,
		AltNumber:  req.AltNumber,
		CustomerID: claims.Subject,
	}
	if err := h.phoneSvc.Update(r.Context(), phone); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, phone)
}

func (h *ContactHandler) DeletePhone(w http.ResponseWriter, r *http.Request) {
	if _, ok := customerClaims(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.phoneSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
