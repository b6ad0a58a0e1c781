package handler

import (
	"net/http"

	"github.com/amanpandey8120/vlocker-app/internal/application/video"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
	"github.com/amanpandey8120/vlocker-app/internal/transport/http/middleware"
)

// VideoHandler handles installation-video endpoints.
type VideoHandler struct {
	svc video.Service
}

func NewVideoHandler(svc video.Service) *VideoHandler { return &VideoHandler{svc: svc} }

// Create uploads a video (and optional thumbnail) and stores the catalog
// entry. Admin only.
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	in := video.CreateInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		ChannelName: r.FormValue("channelName"),
	}
	if f, header, err := r.FormFile("video"); err == nil {
		defer f.Close()
		in.Video = f
		in.VideoName = header.Filename
	}
	if f, header, err := r.FormFile("thumbnail"); err == nil {
		defer f.Close()
		in.Thumbnail = f
		in.ThumbName = header.Filename
	}

	v, err := h.svc.Create(r.Context(), claims.UserID, in)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, DataEnvelope{Message: "video uploaded successfully", Data: v})
}

func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paging.Clamp(parsePagination(r))
	videos, total, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paginated(videos, total, page, limit))
}
