package handler

import (
	"encoding/json"
	"net/http"

	"github.com/amanpandey8120/vlocker-app/internal/application/feedback"
	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/validate"
	"github.com/amanpandey8120/vlocker-app/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// FeedbackHandler handles feedback endpoints.
type FeedbackHandler struct {
	svc feedback.Service
}

func NewFeedbackHandler(svc feedback.Service) *FeedbackHandler { return &FeedbackHandler{svc: svc} }

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f, err := h.svc.Create(r.Context(), claims.UserID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, DataEnvelope{Message: "feedback submitted successfully", Data: f})
}

// ListMine returns the caller's own feedback.
func (h *FeedbackHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	page, limit := paging.Clamp(parsePagination(r))
	feedbacks, total, err := h.svc.ListByUser(r.Context(), claims.UserID, page, limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paginated(feedbacks, total, page, limit))
}

// ListAll returns every feedback row with submitter details. Admin only.
func (h *FeedbackHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	page, limit := paging.Clamp(parsePagination(r))
	rows, total, err := h.svc.ListAll(r.Context(), page, limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paginated(rows, total, page, limit))
}

func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Data: row})
}
