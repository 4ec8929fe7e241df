package handler

import (
	"encoding/json"
	"net/http"

	apperrors "mrc-extractor/pkg/errors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError writes an error response using the status code carried by the error
func writeAppError(w http.ResponseWriter, err *apperrors.AppError) {
	writeError(w, err.StatusCode, err.Message)
}
