package domain

import "context"

// TextExtractor converts one file of a leaf format into text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// ArchiveExpander unpacks an archive into destDir and returns member paths in archive order.
type ArchiveExpander interface {
	Expand(ctx context.Context, archivePath, destDir string) ([]string, error)
}

// Dispatcher routes a request to the extractor(s) for its format.
type Dispatcher interface {
	Process(ctx context.Context, req ExtractionRequest) (string, error)
}

// ReadabilityClassifier decides whether text is machine-readable.
type ReadabilityClassifier interface {
	Classify(text string) bool
	Evaluate(text string) ReadabilityVerdict
}

// Recognizer runs OCR over an image file and returns the detected text spans
// in the order the engine reports them.
type Recognizer interface {
	Recognize(imagePath string) ([]string, error)
	Close() error
}

// RecognizerFactory opens a new OCR engine session.
type RecognizerFactory func() (Recognizer, error)

// ScratchSpace hands out per-request working directories.
type ScratchSpace interface {
	// Acquire creates a new uniquely named directory. The returned release func removes it.
	Acquire(prefix string) (dir string, release func(), err error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetScratchDir() string
	GetMaxFileSize() int64
	GetMaxArchiveExpandedSize() int64
	GetLogLevel() string
	GetStaticDir() string
	GetAllowedOrigins() []string
	GetOCRLanguages() []string
}
