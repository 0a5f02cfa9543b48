package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"dtr-engine/gen/ent"
	"dtr-engine/gen/ent/unknowndtrformat"
	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
)

// IntakeDraft carries the fields captured when a document misses every
// active format.
type IntakeDraft struct {
	RawText    string
	ImageData  []byte
	CompanyID  *uuid.UUID
	ParsedData map[string]string
}

// IntakeRepository is the persistence boundary for the unknown-format
// review queue. Promote is the single mutating transition: it creates the
// operator-approved format and flips the intake to processed in one
// transaction, so callers never observe partial state.
type IntakeRepository interface {
	Create(ctx context.Context, draft IntakeDraft) (*entity.UnknownDtrFormat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UnknownDtrFormat, error)
	ListPending(ctx context.Context) ([]*entity.UnknownDtrFormat, error)
	Promote(ctx context.Context, intakeID uuid.UUID, format entity.FormatDraft) (*entity.DtrFormat, error)
}

type intakeRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewIntakeRepository(entc *ent.Client, log *slog.Logger) IntakeRepository {
	return &intakeRepo{ent: entc, log: log}
}

func (r *intakeRepo) Create(ctx context.Context, draft IntakeDraft) (*entity.UnknownDtrFormat, error) {
	row, err := r.ent.UnknownDtrFormat.
		Create().
		SetRawText(draft.RawText).
		SetImageData(draft.ImageData).
		SetNillableCompanyID(draft.CompanyID).
		SetParsedData(draft.ParsedData).
		Save(ctx)
	if err != nil {
		r.log.Error("intake create failed", "err", err)
		return nil, err
	}
	r.log.Info("intake created", "intake_id", row.ID, "raw_bytes", len(draft.RawText))
	return toEntityIntake(row), nil
}

func (r *intakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.UnknownDtrFormat, error) {
	row, err := r.ent.UnknownDtrFormat.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewNotFoundError("intake " + id.String())
		}
		return nil, err
	}
	return toEntityIntake(row), nil
}

func (r *intakeRepo) ListPending(ctx context.Context) ([]*entity.UnknownDtrFormat, error) {
	rows, err := r.ent.UnknownDtrFormat.Query().
		Where(unknowndtrformat.IsProcessed(false)).
		Order(ent.Asc(unknowndtrformat.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("list pending intakes failed", "err", err)
		return nil, err
	}
	out := make([]*entity.UnknownDtrFormat, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityIntake(row))
	}
	return out, nil
}

func (r *intakeRepo) Promote(ctx context.Context, intakeID uuid.UUID, format entity.FormatDraft) (*entity.DtrFormat, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin promote tx")
	}

	created, err := r.promoteInTx(ctx, tx, intakeID, format)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit promote tx")
	}
	r.log.Info("intake promoted", "intake_id", intakeID, "format_id", created.ID, "name", created.Name)
	return toEntityFormat(created), nil
}

func (r *intakeRepo) promoteInTx(ctx context.Context, tx *ent.Tx, intakeID uuid.UUID, format entity.FormatDraft) (*ent.DtrFormat, error) {
	intake, err := tx.UnknownDtrFormat.Get(ctx, intakeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewNotFoundError("intake " + intakeID.String())
		}
		return nil, err
	}
	if intake.IsProcessed {
		return nil, common.NewValidationError("intake already processed")
	}

	created, err := tx.DtrFormat.
		Create().
		SetName(format.Name).
		SetNillableCompanyID(format.CompanyID).
		SetPattern(format.Pattern).
		SetExtractionRules(map[string]string(format.ExtractionRules)).
		SetExample(format.Example).
		Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "create format")
	}

	if _, err := tx.UnknownDtrFormat.
		UpdateOneID(intakeID).
		SetIsProcessed(true).
		Save(ctx); err != nil {
		return nil, common.WrapError(err, "mark intake processed")
	}
	return created, nil
}

func toEntityIntake(row *ent.UnknownDtrFormat) *entity.UnknownDtrFormat {
	return &entity.UnknownDtrFormat{
		ID:          row.ID,
		RawText:     row.RawText,
		ImageData:   row.ImageData,
		CompanyID:   row.CompanyID,
		ParsedData:  row.ParsedData,
		IsProcessed: row.IsProcessed,
		CreatedAt:   row.CreatedAt,
	}
}
