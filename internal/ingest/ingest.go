// Package ingest feeds documents from the local filesystem into the
// parsing pipeline: one-shot over a directory tree, or continuously via a
// recursive watcher. Files are deduplicated by content hash so re-dropped
// or re-saved documents are not parsed twice.
package ingest

import (
	"context"

	"github.com/google/uuid"

	"dtr-engine/internal/entity"
)

// Result is the per-file ingest outcome. Err is a string, not an error:
// results cross the batch boundary as data, one per scanned file.
type Result struct {
	SourcePath   string
	HashHex      string
	Deduplicated bool
	Prediction   *entity.Prediction
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Parser is the slice of the pipeline the ingestor depends on.
type Parser interface {
	ProcessText(ctx context.Context, rawText string, companyID *uuid.UUID) (*entity.Prediction, error)
	ProcessImage(ctx context.Context, img []byte, companyID *uuid.UUID) (*entity.Prediction, error)
}
