package service

import (
	"fmt"
	"os"
	"path/filepath"

	"mrc-extractor/internal/domain"

	"github.com/google/uuid"
)

// ScratchDir hands out uniquely named subdirectories of a root so concurrent requests
// never share files.
type ScratchDir struct {
	root   string
	logger domain.Logger
}

func NewScratchDir(root string, logger domain.Logger) *ScratchDir {
	return &ScratchDir{root: root, logger: logger}
}

// Acquire creates <root>/<prefix>-<uuid>. Calling release removes it and everything in it.
func (s *ScratchDir) Acquire(prefix string) (string, func(), error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create scratch root: %w", err)
	}

	dir := filepath.Join(s.root, prefix+"-"+uuid.New().String())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return "", nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	release := func() {
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Warn("Failed to remove scratch directory", "dir", dir, "error", err)
		}
	}
	return dir, release, nil
}
