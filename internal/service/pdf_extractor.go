package service

import (
	"context"
	"fmt"
	"strings"

	"mrc-extractor/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// pdfDocument is the subset of *fitz.Document the extractor needs.
type pdfDocument interface {
	NumPage() int
	Text(pageNumber int) (string, error)
	Close() error
}

func openFitz(path string) (pdfDocument, error) {
	return fitz.New(path)
}

// PDFExtractor reads the text layer of every page of a PDF
type PDFExtractor struct {
	logger domain.Logger
	open   func(path string) (pdfDocument, error)
}

// NewPDFExtractor creates a new PDF extractor backed by MuPDF
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		logger: logger,
		open:   openFitz,
	}
}

// Extract concatenates the plain text of each page in page order, with no separators.
func (p *PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	doc, err := p.open(path)
	if err != nil {
		return "", &domain.ExtractionError{Format: domain.FormatPDF, Path: path, Cause: fmt.Errorf("failed to open PDF: %w", err)}
	}
	defer doc.Close()

	numPages := doc.NumPage()
	var sb strings.Builder
	for pageNum := 0; pageNum < numPages; pageNum++ {
		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)
		text, err := doc.Text(pageNum)
		if err != nil {
			return "", &domain.ExtractionError{
				Format: domain.FormatPDF,
				Path:   path,
				Cause:  fmt.Errorf("failed to read page %d: %w", pageNum+1, err),
			}
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
