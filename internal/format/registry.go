// Package format holds the registry of known DTR formats and the matcher
// that tries them against raw OCR text.
package format

import (
	"context"
	"log/slog"
	"regexp"
	"sync"

	"github.com/google/uuid"

	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/repository"
)

// Registry fronts the format store and owns the lazily-built compiled
// pattern cache. One instance per process; reads take a snapshot, writes
// are serialized by the store.
type Registry struct {
	repo   repository.FormatRepository
	logger *slog.Logger

	mu    sync.Mutex
	cache map[uuid.UUID]*compiled
}

type compiled struct {
	pattern string
	re      *regexp.Regexp // nil when the pattern failed to compile
}

func NewRegistry(repo repository.FormatRepository, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		repo:   repo,
		logger: logger,
		cache:  make(map[uuid.UUID]*compiled),
	}
}

// ListActive returns the active formats for a company scope (nil company
// means global only filtering is skipped) in creation order. The returned
// slice is a consistent snapshot: formats created after this call are not
// visible to an in-flight match, which is the documented contract.
func (r *Registry) ListActive(ctx context.Context, companyID *uuid.UUID) ([]*entity.DtrFormat, error) {
	return r.repo.ListActive(ctx, companyID)
}

// Create validates the draft and stores it as a new active format.
// A pattern that does not compile is accepted (it degrades to
// never-matching) but reported as a warning for operator follow-up.
func (r *Registry) Create(ctx context.Context, draft entity.FormatDraft) (*entity.DtrFormat, error) {
	if draft.Pattern == "" {
		return nil, common.NewValidationError("pattern is required")
	}
	if len(draft.ExtractionRules) == 0 {
		return nil, common.NewValidationError("extraction rules are required")
	}
	if _, err := regexp.Compile(draft.Pattern); err != nil {
		r.logger.Warn("format pattern does not compile; it will never match",
			"name", draft.Name, "error", err)
	}
	return r.repo.Create(ctx, draft)
}

// SetActive toggles a format. Inactive formats are excluded from matching
// but retained for history.
func (r *Registry) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.DtrFormat, error) {
	f, err := r.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetByID loads one format regardless of its active flag.
func (r *Registry) GetByID(ctx context.Context, id uuid.UUID) (*entity.DtrFormat, error) {
	return r.repo.GetByID(ctx, id)
}

// Compile returns the executable matcher for a format, or nil when the
// stored pattern is malformed. It never panics: a bad pattern is a
// non-fatal warning, not a crash for every other format in the batch.
// Results are cached per format id and invalidated when the pattern text
// changes.
func (r *Registry) Compile(f *entity.DtrFormat) *regexp.Regexp {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.cache[f.ID]; ok && c.pattern == f.Pattern {
		return c.re
	}
	re, err := regexp.Compile(f.Pattern)
	if err != nil {
		r.logger.Warn("pattern compile failed; format degraded to never-match",
			"format_id", f.ID, "name", f.Name, "error", err)
		re = nil
	}
	r.cache[f.ID] = &compiled{pattern: f.Pattern, re: re}
	return re
}
