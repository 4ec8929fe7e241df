package service

import (
	"context"
	"strings"

	"mrc-extractor/internal/domain"
)

// ImageExtractor extracts text from images with OCR.
//
// Spans are joined in the order the recognizer reports them. That order follows the engine's
// layout analysis and is not guaranteed to be reading order, so multi-column or rotated
// images can come out shuffled.
type ImageExtractor struct {
	newRecognizer domain.RecognizerFactory
	logger        domain.Logger
}

func NewImageExtractor(factory domain.RecognizerFactory, logger domain.Logger) *ImageExtractor {
	return &ImageExtractor{
		newRecognizer: factory,
		logger:        logger,
	}
}

func (e *ImageExtractor) Extract(ctx context.Context, path string) (string, error) {
	if e.newRecognizer == nil {
		return "", e.fail(path, domain.ErrNoEngine)
	}
	rec, err := e.newRecognizer()
	if err != nil {
		return "", e.fail(path, err)
	}
	if rec == nil {
		return "", e.fail(path, domain.ErrNoEngine)
	}
	defer func() {
		if cerr := rec.Close(); cerr != nil {
			e.logger.Warn("Failed to close OCR session", "error", cerr)
		}
	}()

	spans, err := rec.Recognize(path)
	if err != nil {
		return "", e.fail(path, err)
	}
	e.logger.Debug("OCR finished", "file", path, "spans", len(spans))
	return strings.Join(spans, " "), nil
}

func (e *ImageExtractor) fail(path string, cause error) error {
	return &domain.ExtractionError{Format: domain.FormatImage, Path: path, Cause: cause}
}
