// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"mrc-extractor/internal/domain"
	apperrors "mrc-extractor/pkg/errors"
)

// ExtractionHandler handles file uploads and returns their extracted text
type ExtractionHandler struct {
	dispatcher  domain.Dispatcher
	scratch     domain.ScratchSpace
	maxFileSize int64
	logger      domain.Logger
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(dispatcher domain.Dispatcher, scratch domain.ScratchSpace, maxFileSize int64, logger domain.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		dispatcher:  dispatcher,
		scratch:     scratch,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload handles POST /upload with a multipart "file" field
func (h *ExtractionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		if r.ContentLength > h.maxFileSize {
			writeAppError(w, apperrors.NewTooLargeError("File too large", nil))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeFormError(w, r, err)
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		writeAppError(w, apperrors.NewValidationError("No selected file"))
		return
	}

	// Unsupported uploads are rejected before anything touches the scratch area.
	if format := domain.FormatFromName(originalName); format == domain.FormatUnsupported {
		h.writeFailure(w, originalName, format, &domain.UnsupportedFormatError{})
		return
	}

	dir, release, err := h.scratch.Acquire("upload")
	if err != nil {
		h.logger.Error("Failed to acquire scratch directory", err)
		writeAppError(w, apperrors.NewInternalError("Failed to store upload", err))
		return
	}
	defer release()

	req := domain.NewExtractionRequest(filepath.Join(dir, originalName), originalName)
	if err := saveUpload(file, req.Path()); err != nil {
		h.logger.Error("Failed to save upload", err, "file", originalName)
		writeAppError(w, apperrors.NewInternalError("Failed to store upload", err))
		return
	}

	text, err := h.dispatcher.Process(r.Context(), req)
	if err != nil {
		h.writeFailure(w, originalName, req.Format(), err)
		return
	}

	h.logger.Info("Extraction succeeded", "file", originalName, "format", string(req.Format()), "chars", len(text))
	writeJSON(w, http.StatusOK, domain.Content(text))
}

// writeFailure renders a dispatch error. Pipeline failures are logged as warnings, anything
// unexpected as an error.
func (h *ExtractionHandler) writeFailure(w http.ResponseWriter, name string, format domain.Format, err error) {
	appErr := apperrors.FromDomain(err)
	if apperrors.IsType(appErr, apperrors.ErrorTypeInternal) {
		h.logger.Error("Extraction failed", err, "file", name, "format", string(format))
	} else {
		h.logger.Warn("Extraction failed", "file", name, "format", string(format), "type", string(appErr.Type), "error", err)
	}
	writeAppError(w, appErr)
}

func (h *ExtractionHandler) writeFormError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeAppError(w, apperrors.NewTooLargeError("File too large", err))
	case errors.Is(err, http.ErrMissingFile) && r.MultipartForm != nil && len(r.MultipartForm.Value["file"]) > 0:
		// A file input submitted with no file selected arrives as a plain form value.
		writeAppError(w, apperrors.NewValidationError("No selected file"))
	default:
		writeAppError(w, apperrors.NewValidationError("No file part"))
	}
}

func saveUpload(src multipart.File, path string) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
