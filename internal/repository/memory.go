package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
)

// MemoryStore is a map-backed implementation of the format and intake
// repositories for the standalone CLI and for tests. Creation order is
// preserved explicitly because ListActive's ordering is part of the
// matching contract. A single mutex covers both collections so Promote
// stays atomic.
type MemoryStore struct {
	mu      sync.RWMutex
	formats []*entity.DtrFormat
	intakes []*entity.UnknownDtrFormat
}

var _ FormatRepository = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Intakes returns the IntakeRepository view of the store. It is a separate
// view only because both repository interfaces name their insert method
// Create.
func (s *MemoryStore) Intakes() IntakeRepository {
	return &memoryIntakeRepo{s: s}
}

func (s *MemoryStore) ListActive(_ context.Context, companyID *uuid.UUID) ([]*entity.DtrFormat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.DtrFormat, 0, len(s.formats))
	for _, f := range s.formats {
		if !f.IsActive {
			continue
		}
		if companyID != nil && f.CompanyID != nil && *f.CompanyID != *companyID {
			continue
		}
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*entity.DtrFormat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.formats {
		if f.ID == id {
			cp := *f
			return &cp, nil
		}
	}
	return nil, common.NewNotFoundError("format " + id.String())
}

func (s *MemoryStore) Create(_ context.Context, draft entity.FormatDraft) (*entity.DtrFormat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.appendFormat(draft)
	cp := *f
	return &cp, nil
}

func (s *MemoryStore) SetActive(_ context.Context, id uuid.UUID, active bool) (*entity.DtrFormat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.formats {
		if f.ID == id {
			f.IsActive = active
			cp := *f
			return &cp, nil
		}
	}
	return nil, common.NewNotFoundError("format " + id.String())
}

// appendFormat assumes s.mu is held for writing.
func (s *MemoryStore) appendFormat(draft entity.FormatDraft) *entity.DtrFormat {
	f := &entity.DtrFormat{
		ID:              entity.NewOrderedID(),
		Name:            draft.Name,
		CompanyID:       draft.CompanyID,
		Pattern:         draft.Pattern,
		ExtractionRules: draft.ExtractionRules,
		Example:         draft.Example,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	s.formats = append(s.formats, f)
	return f
}

type memoryIntakeRepo struct {
	s *MemoryStore
}

var _ IntakeRepository = (*memoryIntakeRepo)(nil)

func (r *memoryIntakeRepo) Create(_ context.Context, draft IntakeDraft) (*entity.UnknownDtrFormat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec := &entity.UnknownDtrFormat{
		ID:          entity.NewOrderedID(),
		RawText:     draft.RawText,
		ImageData:   draft.ImageData,
		CompanyID:   draft.CompanyID,
		ParsedData:  draft.ParsedData,
		IsProcessed: false,
		CreatedAt:   time.Now(),
	}
	r.s.intakes = append(r.s.intakes, rec)
	cp := *rec
	return &cp, nil
}

func (r *memoryIntakeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.UnknownDtrFormat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.intakes {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, common.NewNotFoundError("intake " + id.String())
}

func (r *memoryIntakeRepo) ListPending(_ context.Context) ([]*entity.UnknownDtrFormat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.UnknownDtrFormat, 0, len(r.s.intakes))
	for _, rec := range r.s.intakes {
		if rec.IsProcessed {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryIntakeRepo) Promote(_ context.Context, intakeID uuid.UUID, format entity.FormatDraft) (*entity.DtrFormat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var intake *entity.UnknownDtrFormat
	for _, rec := range r.s.intakes {
		if rec.ID == intakeID {
			intake = rec
			break
		}
	}
	if intake == nil {
		return nil, common.NewNotFoundError("intake " + intakeID.String())
	}
	if intake.IsProcessed {
		return nil, common.NewValidationError("intake already processed")
	}
	f := r.s.appendFormat(format)
	intake.IsProcessed = true
	cp := *f
	return &cp, nil
}
