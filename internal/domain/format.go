package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies which extractor handles a file.
type Format string

const (
	FormatPDF         Format = "pdf"
	FormatDOCX        Format = "docx"
	FormatText        Format = "txt"
	FormatImage       Format = "image"
	FormatZip         Format = "zip"
	FormatUnsupported Format = "unsupported"
)

// Document suffixes are matched exactly; image suffixes ignore case.
var (
	exactSuffixes = map[string]Format{
		".pdf":  FormatPDF,
		".docx": FormatDOCX,
		".txt":  FormatText,
		".zip":  FormatZip,
	}
	imageSuffixes = map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
	}
)

// FormatFromName resolves the format of a file from its name suffix only.
func FormatFromName(name string) Format {
	ext := filepath.Ext(name)
	if ext == "" {
		return FormatUnsupported
	}
	if f, ok := exactSuffixes[ext]; ok {
		return f
	}
	if imageSuffixes[strings.ToLower(ext)] {
		return FormatImage
	}
	return FormatUnsupported
}

// IsLeaf reports whether the format is handled directly by a single extractor.
func (f Format) IsLeaf() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatText, FormatImage:
		return true
	}
	return false
}

// ExtractionRequest is a file on disk together with the format resolved from its declared name.
type ExtractionRequest struct {
	path   string
	name   string
	format Format
}

// NewExtractionRequest builds a request for the payload stored at path. The format is taken
// from name, which is the file name the client declared; pass an empty name to use path.
func NewExtractionRequest(path, name string) ExtractionRequest {
	if name == "" {
		name = path
	}
	return ExtractionRequest{
		path:   path,
		name:   name,
		format: FormatFromName(name),
	}
}

func (r ExtractionRequest) Path() string   { return r.path }
func (r ExtractionRequest) Name() string   { return r.name }
func (r ExtractionRequest) Format() Format { return r.format }
