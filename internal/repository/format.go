package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"dtr-engine/gen/ent"
	"dtr-engine/gen/ent/dtrformat"
	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
)

// FormatRepository is the persistence boundary for DTR formats. ListActive
// returns formats in creation order; that order is load-bearing because the
// matcher tries formats in sequence and the first match wins.
type FormatRepository interface {
	ListActive(ctx context.Context, companyID *uuid.UUID) ([]*entity.DtrFormat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DtrFormat, error)
	Create(ctx context.Context, draft entity.FormatDraft) (*entity.DtrFormat, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.DtrFormat, error)
}

type formatRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewFormatRepository(entc *ent.Client, log *slog.Logger) FormatRepository {
	return &formatRepo{ent: entc, log: log}
}

func (r *formatRepo) ListActive(ctx context.Context, companyID *uuid.UUID) ([]*entity.DtrFormat, error) {
	q := r.ent.DtrFormat.Query().
		Where(dtrformat.IsActive(true))
	if companyID != nil {
		q = q.Where(dtrformat.Or(
			dtrformat.CompanyID(*companyID),
			dtrformat.CompanyIDIsNil(),
		))
	}
	// ids are time-ordered (v7), so the id tie-break yields exact
	// creation order even when created_at collides
	rows, err := q.
		Order(ent.Asc(dtrformat.FieldCreatedAt), ent.Asc(dtrformat.FieldID)).
		All(ctx)
	if err != nil {
		r.log.Error("list active formats failed", "err", err)
		return nil, err
	}
	out := make([]*entity.DtrFormat, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityFormat(row))
	}
	return out, nil
}

func (r *formatRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DtrFormat, error) {
	row, err := r.ent.DtrFormat.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewNotFoundError("format " + id.String())
		}
		return nil, err
	}
	return toEntityFormat(row), nil
}

func (r *formatRepo) Create(ctx context.Context, draft entity.FormatDraft) (*entity.DtrFormat, error) {
	row, err := r.ent.DtrFormat.
		Create().
		SetName(draft.Name).
		SetNillableCompanyID(draft.CompanyID).
		SetPattern(draft.Pattern).
		SetExtractionRules(map[string]string(draft.ExtractionRules)).
		SetExample(draft.Example).
		Save(ctx)
	if err != nil {
		r.log.Error("format create failed", "name", draft.Name, "err", err)
		return nil, err
	}
	r.log.Info("format created", "format_id", row.ID, "name", row.Name)
	return toEntityFormat(row), nil
}

func (r *formatRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.DtrFormat, error) {
	row, err := r.ent.DtrFormat.
		UpdateOneID(id).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewNotFoundError("format " + id.String())
		}
		r.log.Error("format set_active failed", "format_id", id, "err", err)
		return nil, err
	}
	r.log.Info("format toggled", "format_id", id, "is_active", active)
	return toEntityFormat(row), nil
}

func toEntityFormat(row *ent.DtrFormat) *entity.DtrFormat {
	return &entity.DtrFormat{
		ID:              row.ID,
		Name:            row.Name,
		CompanyID:       row.CompanyID,
		Pattern:         row.Pattern,
		ExtractionRules: entity.ExtractionRules(row.ExtractionRules),
		Example:         row.Example,
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt,
	}
}
