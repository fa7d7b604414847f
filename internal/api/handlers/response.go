package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pinpin/travel-backend/internal/domain"
	"github.com/pinpin/travel-backend/internal/logger"
	"go.uber.org/zap"
)

type successBody struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(successBody{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

// writeServiceError maps the domain error taxonomy to HTTP codes. Anything
// unrecognized (storage failures, consistency bugs) surfaces as a 500 with a
// generic message so internal state never leaks.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountExists):
		writeError(w, http.StatusConflict, "account already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid account name or password")
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrAvatarNotFound),
		errors.Is(err, domain.ErrNoDefaultAvatar):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
