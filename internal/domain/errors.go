package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNoEngine      = errors.New("no OCR engine available")
	ErrInvalidUTF8   = errors.New("file is not valid UTF-8 text")
	ErrPathTraversal = errors.New("archive entry escapes destination directory")
	ErrArchiveTooBig = errors.New("archive expands beyond the allowed size")
)

// ExtractionError is a failure local to one extractor: the payload is corrupt or unreadable.
type ExtractionError struct {
	Format Format
	Path   string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Failed to extract text from %s: %v", formatLabel(e.Format), e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ArchiveError reports that an archive could not be unpacked.
type ArchiveError struct {
	Path  string
	Cause error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("Failed to expand archive: %v", e.Cause)
}

func (e *ArchiveError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError reports that no extractor handles a file. Path is set only for
// archive members.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path != "" {
		return "Unsupported file format: " + e.Path
	}
	return "Unsupported file format"
}

func formatLabel(f Format) string {
	switch f {
	case FormatPDF:
		return "PDF"
	case FormatDOCX:
		return "DOCX"
	case FormatText:
		return "TXT"
	case FormatImage:
		return "image"
	}
	return string(f)
}
