package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"rently-backend/internal/services"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[Response] failed to encode body: %v", err)
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ServiceError maps service-layer errors onto HTTP status codes.
func ServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		Error(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrForbidden):
		Error(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrNotFound):
		Error(w, http.StatusNotFound, "Not found")
	default:
		log.Printf("[Response] internal error: %v", err)
		Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
