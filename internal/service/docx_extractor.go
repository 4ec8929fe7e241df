package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"mrc-extractor/internal/domain"
)

const (
	wordNamespace    = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	wordDocumentPart = "word/document.xml"
)

// DOCXExtractor reads the body paragraphs of a Word document
type DOCXExtractor struct{}

func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

// Extract joins the text of the top-level body paragraphs with newlines. Paragraphs nested in
// tables, text boxes or headers are not part of the body sequence and are skipped.
func (e *DOCXExtractor) Extract(ctx context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", e.fail(path, fmt.Errorf("failed to open docx: %w", err))
	}
	defer zr.Close()

	docXML, err := readZipFile(&zr.Reader, wordDocumentPart)
	if err != nil {
		return "", e.fail(path, fmt.Errorf("invalid docx (missing %s): %w", wordDocumentPart, err))
	}

	paragraphs, err := parseBodyParagraphs(docXML)
	if err != nil {
		return "", e.fail(path, fmt.Errorf("invalid docx (malformed document part): %w", err))
	}
	return strings.Join(paragraphs, "\n"), nil
}

func (e *DOCXExtractor) fail(path string, cause error) error {
	return &domain.ExtractionError{Format: domain.FormatDOCX, Path: path, Cause: cause}
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	// Try exact match first.
	for _, f := range zr.File {
		if f.Name == name {
			return readZipEntry(f)
		}
	}
	// Then case-insensitive match.
	lower := strings.ToLower(name)
	for _, f := range zr.File {
		if strings.ToLower(f.Name) == lower {
			return readZipEntry(f)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseBodyParagraphs walks document.xml and returns the text of each w:p that is a direct
// child of w:body, in document order. Only runs directly under the paragraph or under a
// w:hyperlink contribute text; tracked insertions, fields and content controls do not.
func parseBodyParagraphs(docXML []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(docXML))

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		paraDepth  int // depth of the open body paragraph in stack, 0 when none
		inText     bool
		sawBody    bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			local := ""
			if t.Name.Space == wordNamespace {
				local = t.Name.Local
			}
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, local)

			switch {
			case local == "body":
				sawBody = true
			case local == "p" && paraDepth == 0 && parent == "body":
				paraDepth = len(stack)
				current.Reset()
			case paraDepth > 0 && isParagraphRun(stack[paraDepth:len(stack)-1]):
				switch local {
				case "t":
					inText = true
				case "tab", "ptab":
					current.WriteByte('\t')
				case "br":
					if breakType(t) == "textWrapping" {
						current.WriteByte('\n')
					}
				case "cr":
					current.WriteByte('\n')
				case "noBreakHyphen":
					current.WriteByte('-')
				}
			}

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			local := stack[len(stack)-1]
			depth := len(stack)
			stack = stack[:len(stack)-1]

			switch {
			case paraDepth > 0 && depth == paraDepth:
				paragraphs = append(paragraphs, current.String())
				paraDepth = 0
				inText = false
			case local == "t":
				inText = false
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	if !sawBody {
		return nil, fmt.Errorf("document body not found")
	}
	return paragraphs, nil
}

// isParagraphRun reports whether path, relative to a paragraph, names a run whose content
// belongs to the paragraph text: w:r or w:hyperlink/w:r.
func isParagraphRun(path []string) bool {
	switch len(path) {
	case 1:
		return path[0] == "r"
	case 2:
		return path[0] == "hyperlink" && path[1] == "r"
	}
	return false
}

// breakType returns the w:type of a w:br, defaulting to textWrapping.
func breakType(el xml.StartElement) string {
	for _, attr := range el.Attr {
		if attr.Name.Space == wordNamespace && attr.Name.Local == "type" && attr.Value != "" {
			return attr.Value
		}
	}
	return "textWrapping"
}
