package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/amanpandey8120/vlocker-app/internal/application/customer"
	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/validate"
	"github.com/amanpandey8120/vlocker-app/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20

// ObjectStore is the minimal interface handlers require from object storage.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// CustomerHandler handles customer verification, CRUD and KYC endpoints.
type CustomerHandler struct {
	svc     customer.Service
	objects ObjectStore
}

func NewCustomerHandler(svc customer.Service, objects ObjectStore) *CustomerHandler {
	return &CustomerHandler{svc: svc, objects: objects}
}

// SendOTP starts the verification challenge. The code travels out-of-band
// only; the response never contains it.
func (h *CustomerHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SendOTP(r.Context(), claims.UserID, req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP sent successfully"})
}

func (h *CustomerHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.svc.VerifyOTP(r.Context(), claims.UserID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Message: "customer verified successfully", Data: c})
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	page, limit := paging.Clamp(parsePagination(r))
	customers, total, err := h.svc.List(r.Context(), claims.UserID, page, limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paginated(customers, total, page, limit))
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Data: c})
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), claims.UserID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Message: "customer updated successfully", Data: c})
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), claims.UserID); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "customer deleted successfully"})
}

// UploadAadhaar stores the Aadhaar number plus front/back photos.
func (h *CustomerHandler) UploadAadhaar(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	customerID := chi.URLParam(r, "id")

	frontRef, err := h.uploadFormFile(r, "frontPhoto", "kyc/"+customerID+"/aadhaar/front")
	if err != nil {
		httpError(w, err)
		return
	}
	backRef, err := h.uploadFormFile(r, "backPhoto", "kyc/"+customerID+"/aadhaar/back")
	if err != nil {
		httpError(w, err)
		return
	}
	c, err := h.svc.SetAadhaar(r.Context(), customerID, claims.UserID, r.FormValue("aadhaarNumber"), frontRef, backRef)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Message: "Aadhaar details saved", Data: c})
}

// UploadPAN stores the PAN number and card photo.
func (h *CustomerHandler) UploadPAN(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	customerID := chi.URLParam(r, "id")

	photoRef, err := h.uploadFormFile(r, "panPhoto", "kyc/"+customerID+"/pan")
	if err != nil {
		httpError(w, err)
		return
	}
	c, err := h.svc.SetPAN(r.Context(), customerID, claims.UserID, r.FormValue("panNumber"), photoRef)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Message: "PAN details saved", Data: c})
}

// UploadBankPassbook stores the passbook photo.
func (h *CustomerHandler) UploadBankPassbook(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	customerID := chi.URLParam(r, "id")

	photoRef, err := h.uploadFormFile(r, "passbookPhoto", "kyc/"+customerID+"/bank-passbook")
	if err != nil {
		httpError(w, err)
		return
	}
	c, err := h.svc.SetBankPassbook(r.Context(), customerID, claims.UserID, photoRef)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Message: "bank passbook saved", Data: c})
}

// uploadFormFile streams one multipart file field to object storage and
// returns its stored reference. A missing field is a bad request.
func (h *CustomerHandler) uploadFormFile(r *http.Request, field, keyPrefix string) (string, error) {
	f, header, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("missing %s file: %w", field, domain.ErrBadRequest)
	}
	defer f.Close()
	return h.uploadFile(r.Context(), f, header, keyPrefix)
}

func (h *CustomerHandler) uploadFile(ctx context.Context, f multipart.File, header *multipart.FileHeader, keyPrefix string) (string, error) {
	return h.objects.Upload(ctx, keyPrefix+"/"+header.Filename, f, header.Header.Get("Content-Type"))
}
