package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pinpin/travel-backend/internal/service"
)

// PlacesHandler proxies location search to the upstream place provider.
type PlacesHandler struct {
	places *service.PlaceService
}

func NewPlacesHandler(places *service.PlaceService) *PlacesHandler {
	return &PlacesHandler{places: places}
}

func (h *PlacesHandler) TextSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	pageSize := 10
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 20 {
			writeError(w, http.StatusBadRequest, "pageSize must be between 1 and 20")
			return
		}
		pageSize = parsed
	}

	result, err := h.places.TextSearch(r.Context(), query, r.URL.Query().Get("pageToken"), pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "places fetched", result)
}

func (h *PlacesHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	input := strings.TrimSpace(r.URL.Query().Get("input"))
	if input == "" {
		writeError(w, http.StatusBadRequest, "input is required")
		return
	}

	suggestions, err := h.places.Autocomplete(r.Context(), input, r.URL.Query().Get("sessionToken"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "suggestions fetched", suggestions)
}
