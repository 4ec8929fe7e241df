package tesseract

import (
	"fmt"
	"strings"

	"mrc-extractor/internal/domain"

	"github.com/otiai10/gosseract/v2"
)

// Recognizer runs Tesseract through gosseract and reports text lines.
type Recognizer struct {
	client *gosseract.Client
}

// NewFactory returns a factory that opens one Tesseract session per call.
func NewFactory(languages []string) domain.RecognizerFactory {
	return func() (domain.Recognizer, error) {
		if gosseract.Version() == "" {
			return nil, domain.ErrNoEngine
		}
		client := gosseract.NewClient()
		if len(languages) > 0 {
			if err := client.SetLanguage(languages...); err != nil {
				client.Close()
				return nil, fmt.Errorf("failed to set OCR languages: %w", err)
			}
		}
		return &Recognizer{client: client}, nil
	}
}

// Recognize returns the non-empty text lines Tesseract detects, in its iteration order.
func (r *Recognizer) Recognize(imagePath string) ([]string, error) {
	if err := r.client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	boxes, err := r.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, err
	}

	spans := make([]string, 0, len(boxes))
	for _, b := range boxes {
		if w := strings.TrimSpace(b.Word); w != "" {
			spans = append(spans, w)
		}
	}
	return spans, nil
}

func (r *Recognizer) Close() error {
	return r.client.Close()
}

var _ domain.Recognizer = (*Recognizer)(nil)
