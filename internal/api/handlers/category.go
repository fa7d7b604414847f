package handlers

import (
	"net/http"

	"github.com/pinpin/travel-backend/internal/service"
)

// CategoryHandler serves taxonomy reference data.
type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Countries(w http.ResponseWriter, r *http.Request) {
	views, err := h.categories.Countries(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, "countries fetched", views)
}
