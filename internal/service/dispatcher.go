package service

import (
	"context"
	"strings"

	"mrc-extractor/internal/domain"
)

// ExtractionDispatcher routes extraction requests to the extractor registered for their
// format and expands archives into per-request scratch directories.
type ExtractionDispatcher struct {
	extractors map[domain.Format]domain.TextExtractor
	expander   domain.ArchiveExpander
	scratch    domain.ScratchSpace
	logger     domain.Logger
}

// NewExtractionDispatcher creates a dispatcher. Only leaf formats may be registered in
// extractors; archives are always handled through expander.
func NewExtractionDispatcher(
	extractors map[domain.Format]domain.TextExtractor,
	expander domain.ArchiveExpander,
	scratch domain.ScratchSpace,
	logger domain.Logger,
) *ExtractionDispatcher {
	table := make(map[domain.Format]domain.TextExtractor, len(extractors))
	for f, e := range extractors {
		if f.IsLeaf() && e != nil {
			table[f] = e
		}
	}
	return &ExtractionDispatcher{
		extractors: table,
		expander:   expander,
		scratch:    scratch,
		logger:     logger,
	}
}

// Process extracts the text of req. Leaf formats return their extractor's result unchanged.
// Archives return each member's text followed by a newline, in archive order, and fail as a
// whole on the first unsupported or failing member. Nothing is retried.
func (d *ExtractionDispatcher) Process(ctx context.Context, req domain.ExtractionRequest) (string, error) {
	switch f := req.Format(); {
	case f == domain.FormatZip:
		return d.processArchive(ctx, req)
	case f.IsLeaf():
		extractor, ok := d.extractors[f]
		if !ok {
			return "", &domain.UnsupportedFormatError{}
		}
		return extractor.Extract(ctx, req.Path())
	default:
		return "", &domain.UnsupportedFormatError{}
	}
}

func (d *ExtractionDispatcher) processArchive(ctx context.Context, req domain.ExtractionRequest) (string, error) {
	dir, release, err := d.scratch.Acquire("archive")
	if err != nil {
		return "", &domain.ArchiveError{Path: req.Path(), Cause: err}
	}
	defer release()

	members, err := d.expander.Expand(ctx, req.Path(), dir)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, member := range members {
		// Each member is resolved by its own suffix. A nested .zip is not a leaf format and
		// is rejected here, so expansion never recurses.
		memberReq := domain.NewExtractionRequest(member, member)
		extractor, ok := d.extractors[memberReq.Format()]
		if !ok {
			d.logger.Warn("Unsupported archive member", "archive", req.Name(), "member", member, "index", i)
			return "", &domain.UnsupportedFormatError{Path: member}
		}

		text, err := extractor.Extract(ctx, memberReq.Path())
		if err != nil {
			d.logger.Warn("Archive member extraction failed", "archive", req.Name(), "member", member, "index", i)
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	d.logger.Info("Archive processed", "archive", req.Name(), "members", len(members))
	return sb.String(), nil
}
