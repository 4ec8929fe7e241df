package service

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mrc-extractor/internal/domain"
)

// ZipExpander unpacks ZIP archives into a destination directory
type ZipExpander struct {
	maxExpandedSize int64
	logger          domain.Logger
}

// NewZipExpander creates an expander. maxExpandedSize bounds the total number of bytes
// written per archive; zero or less disables the bound.
func NewZipExpander(maxExpandedSize int64, logger domain.Logger) *ZipExpander {
	return &ZipExpander{
		maxExpandedSize: maxExpandedSize,
		logger:          logger,
	}
}

// Expand writes every file entry under destDir and returns their absolute paths in archive
// order. Directory entries are created but not listed. Nested archives are written like any
// other member; they are not opened.
func (z *ZipExpander) Expand(ctx context.Context, archivePath, destDir string) ([]string, error) {
	zr, err := zip.OpenReader(archivePath)
	if errors.Is(err, zip.ErrInsecurePath) {
		zr.Close()
		return nil, &domain.ArchiveError{Path: archivePath, Cause: fmt.Errorf("%w: %v", domain.ErrPathTraversal, err)}
	}
	if err != nil {
		return nil, &domain.ArchiveError{Path: archivePath, Cause: err}
	}
	defer zr.Close()

	root, err := filepath.Abs(destDir)
	if err != nil {
		return nil, &domain.ArchiveError{Path: archivePath, Cause: err}
	}

	members := make([]string, 0, len(zr.File))
	var written int64
	for _, f := range zr.File {
		target, err := memberPath(root, f.Name)
		if err != nil {
			return nil, &domain.ArchiveError{Path: archivePath, Cause: err}
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, &domain.ArchiveError{Path: archivePath, Cause: err}
			}
			continue
		}

		n, err := z.writeMember(f, target, written)
		if err != nil {
			return nil, &domain.ArchiveError{Path: archivePath, Cause: fmt.Errorf("%s: %w", f.Name, err)}
		}
		written += n
		members = append(members, target)
	}

	z.logger.Debug("Archive expanded", "archive", archivePath, "members", len(members), "bytes", written)
	return members, nil
}

func (z *ZipExpander) writeMember(f *zip.File, target string, alreadyWritten int64) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, err
	}

	rc, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}

	var src io.Reader = rc
	if z.maxExpandedSize > 0 {
		// One byte past the remaining budget is enough to detect overflow.
		src = io.LimitReader(rc, z.maxExpandedSize-alreadyWritten+1)
	}
	n, err := io.Copy(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}
	if z.maxExpandedSize > 0 && alreadyWritten+n > z.maxExpandedSize {
		return n, domain.ErrArchiveTooBig
	}
	return n, nil
}

// memberPath resolves an entry name inside root, rejecting names that escape it.
func memberPath(root, name string) (string, error) {
	clean := filepath.FromSlash(name)
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrPathTraversal, name)
	}
	target := filepath.Join(root, clean)
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", domain.ErrPathTraversal, name)
	}
	return target, nil
}
