package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/pinpin/travel-backend/internal/api/middleware"
	"github.com/pinpin/travel-backend/internal/service"
)

// ProfileHandler owns the profile routes: read, full update, avatar
// reassignment and the avatar history timeline.
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type updateAvatarRequest struct {
	AvatarID int `json:"avatarId"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.CurrentAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	view, err := h.profiles.GetProfile(r.Context(), account.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "profile fetched", view)
}

// UpdateProfile replaces the whole profile with the submitted document.
// Scalar fields and relation sets the client omits are cleared, not kept.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.CurrentAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input service.ProfileUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input.Nickname = strings.TrimSpace(input.Nickname)
	if input.Nickname == "" {
		writeError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	view, err := h.profiles.UpdateProfile(r.Context(), account.ID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "profile updated", view)
}

// UpdateAvatar points the profile at another avatar. The id may come as a
// query parameter or in the body; the query parameter wins when both appear.
func (h *ProfileHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.CurrentAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	avatarID := 0
	if raw := r.URL.Query().Get("avatarId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "avatarId must be an integer")
			return
		}
		avatarID = parsed
	} else {
		var req updateAvatarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		avatarID = req.AvatarID
	}

	view, err := h.profiles.UpdateAvatar(r.Context(), account.ID, avatarID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "avatar updated", view)
}

func (h *ProfileHandler) GetAvatarHistory(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.CurrentAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := h.profiles.GetAvatarHistory(r.Context(), account.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "avatar history fetched", entries)
}
