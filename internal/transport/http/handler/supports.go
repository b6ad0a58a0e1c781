package handler

import (
	"encoding/json"
	"net/http"

	"github.com/amanpandey8120/vlocker-app/internal/application/support"
	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/validate"
)

// SupportHandler handles company-support contact-info endpoints.
type SupportHandler struct {
	svc support.Service
}

func NewSupportHandler(svc support.Service) *SupportHandler { return &SupportHandler{svc: svc} }

// Create inserts the singleton support record. Admin only.
func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSupportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, DataEnvelope{Message: "support info created", Data: rec})
}

func (h *SupportHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Data: rec})
}

// Update patches the singleton support record. Admin only.
func (h *SupportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSupportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.svc.Update(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Message: "support info updated", Data: rec})
}
