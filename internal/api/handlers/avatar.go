package handlers

import (
	"net/http"
	"strings"

	"github.com/pinpin/travel-backend/internal/api/middleware"
	"github.com/pinpin/travel-backend/internal/service"
)

// 5 MB cap on avatar uploads.
const maxAvatarBytes = 5 << 20

// AvatarHandler owns the avatar catalogue routes: upload, the shared default
// set and the account's own uploads.
type AvatarHandler struct {
	avatars *service.AvatarService
}

func NewAvatarHandler(avatars *service.AvatarService) *AvatarHandler {
	return &AvatarHandler{avatars: avatars}
}

// Upload accepts a multipart form with the image under the "file" field.
func (h *AvatarHandler) Upload(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.CurrentAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "only image uploads are accepted")
		return
	}

	view, err := h.avatars.UploadAvatar(r.Context(), account.ID, file, header.Size, contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "avatar uploaded", view)
}

func (h *AvatarHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	views, err := h.avatars.DefaultAvatars(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, "default avatars fetched", views)
}

func (h *AvatarHandler) Mine(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.CurrentAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	views, err := h.avatars.AccountAvatars(r.Context(), account.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, "avatars fetched", views)
}
