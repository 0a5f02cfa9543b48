package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"dtr-engine/constants"
)

// BatchIngestor walks the filesystem and parses each supported document.
// Seen content hashes persist for the ingestor's lifetime, so the watcher
// can hand it the same path repeatedly without re-parsing.
type BatchIngestor struct {
	parser    Parser
	companyID *uuid.UUID
	logger    *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewBatchIngestor(parser Parser, companyID *uuid.UUID, logger *slog.Logger) *BatchIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchIngestor{
		parser:    parser,
		companyID: companyID,
		logger:    logger,
		seen:      make(map[string]struct{}),
	}
}

// IngestPath parses a single file. Image extensions go through OCR, text
// extensions are parsed as-is, anything else is rejected.
func (i *BatchIngestor) IngestPath(ctx context.Context, path string) (Result, error) {
	var out Result

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}
	out.SourcePath = abs

	ext := constants.NormalizeExt(filepath.Ext(abs))
	isImage := constants.IsImageExt(ext)
	if !isImage && !constants.IsTextExt(ext) {
		return out, fmt.Errorf("unsupported extension: %q", ext)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return out, fmt.Errorf("read: %w", err)
	}

	sum := sha256.Sum256(data)
	out.HashHex = hex.EncodeToString(sum[:])
	if i.markSeen(out.HashHex) {
		out.Deduplicated = true
		i.logger.Debug("duplicate content skipped", "path", abs, "hash", out.HashHex)
		return out, nil
	}

	if isImage {
		out.Prediction, err = i.parser.ProcessImage(ctx, data, i.companyID)
	} else {
		out.Prediction, err = i.parser.ProcessText(ctx, string(data), i.companyID)
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and
// parses every supported file. Per-file failures are recorded in the
// results and never stop the walk.
func (i *BatchIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]Result, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []Result
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, Result{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !constants.IsImageExt(ext) && !constants.IsTextExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			r.Err = err.Error()
			results = append(results, r)
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

// markSeen records the hash and reports whether it was already present.
func (i *BatchIngestor) markSeen(hash string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.seen[hash]; ok {
		return true
	}
	i.seen[hash] = struct{}{}
	return false
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
