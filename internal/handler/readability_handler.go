package handler

import (
	"encoding/json"
	"mime"
	"net/http"

	"mrc-extractor/internal/domain"
	apperrors "mrc-extractor/pkg/errors"
)

// ReadabilityHandler answers whether submitted text is machine-readable
type ReadabilityHandler struct {
	classifier  domain.ReadabilityClassifier
	maxBodySize int64
	logger      domain.Logger
}

func NewReadabilityHandler(classifier domain.ReadabilityClassifier, maxBodySize int64, logger domain.Logger) *ReadabilityHandler {
	return &ReadabilityHandler{
		classifier:  classifier,
		maxBodySize: maxBodySize,
		logger:      logger,
	}
}

type checkRequest struct {
	Content *string `json:"content"`
}

// CheckMRC handles POST /check-mrc with a JSON body {"content": "..."}
func (h *ReadabilityHandler) CheckMRC(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeAppError(w, apperrors.NewValidationError("Invalid JSON format"))
		return
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var body checkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAppError(w, apperrors.NewValidationError("Invalid JSON format"))
		return
	}
	if body.Content == nil || *body.Content == "" {
		writeAppError(w, apperrors.NewValidationError("No content field found"))
		return
	}

	h.logger.Debug("Received content for readability check", "chars", len(*body.Content))

	verdict := h.classifier.Evaluate(*body.Content)
	writeJSON(w, http.StatusOK, verdict)
}
