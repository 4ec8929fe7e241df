package service

import (
	"context"
	"os"
	"unicode/utf8"

	"mrc-extractor/internal/domain"
)

// TextExtractor returns the contents of a UTF-8 text file verbatim
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.ExtractionError{Format: domain.FormatText, Path: path, Cause: err}
	}
	if !utf8.Valid(b) {
		return "", &domain.ExtractionError{Format: domain.FormatText, Path: path, Cause: domain.ErrInvalidUTF8}
	}
	return string(b), nil
}
