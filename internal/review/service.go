// Package review implements the unknown-format intake queue and the
// operator approval flow that promotes a reviewed sample into a new active
// format.
package review

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/events"
	"dtr-engine/internal/repository"
)

type Service struct {
	intakes repository.IntakeRepository
	emitter *events.Emitter
	logger  *slog.Logger
}

func NewService(intakes repository.IntakeRepository, emitter *events.Emitter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{intakes: intakes, emitter: emitter, logger: logger}
}

// Intake quarantines a sample that no active format matched (or that
// matched below the review threshold). parsedData carries whatever partial
// extraction was possible, for the operator's benefit.
func (s *Service) Intake(ctx context.Context, rawText string, companyID *uuid.UUID, imageData []byte, parsedData map[string]string) (*entity.UnknownDtrFormat, error) {
	if rawText == "" {
		return nil, common.NewValidationError("raw text is required")
	}
	rec, err := s.intakes.Create(ctx, repository.IntakeDraft{
		RawText:    rawText,
		ImageData:  imageData,
		CompanyID:  companyID,
		ParsedData: parsedData,
	})
	if err != nil {
		return nil, err
	}
	if s.emitter != nil {
		s.emitter.Publish(events.Event{Type: events.TypeIntakeCreated, ID: rec.ID})
	}
	return rec, nil
}

// ListPending returns the unprocessed intake queue in creation order.
func (s *Service) ListPending(ctx context.Context) ([]*entity.UnknownDtrFormat, error) {
	return s.intakes.ListPending(ctx)
}

// Get loads one intake record for operator display.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.UnknownDtrFormat, error) {
	return s.intakes.GetByID(ctx, id)
}

// Approve validates the operator-supplied pattern and rules, then
// atomically creates the new active format and marks the intake processed.
// Either both happen or neither does. The approved pattern must compile:
// approval is the one place a malformed pattern is rejected rather than
// degraded, because the operator is right there to fix it.
func (s *Service) Approve(ctx context.Context, intakeID uuid.UUID, name, pattern string, rules entity.ExtractionRules, companyID *uuid.UUID) (*entity.DtrFormat, error) {
	if name == "" {
		return nil, common.NewValidationError("name is required")
	}
	if pattern == "" {
		return nil, common.NewValidationError("pattern is required")
	}
	if len(rules) == 0 {
		return nil, common.NewValidationError("extraction rules are required")
	}
	if err := ValidateRules(map[string]string(rules)); err != nil {
		return nil, common.NewAppError("VALIDATION_ERROR", "extraction rules invalid: "+err.Error(), common.ErrValidation)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		s.logger.Warn("approval rejected: pattern does not compile", "intake_id", intakeID, "error", err)
		return nil, common.NewAppError("VALIDATION_ERROR", "pattern does not compile: "+err.Error(), common.ErrValidation)
	}

	intake, err := s.intakes.GetByID(ctx, intakeID)
	if err != nil {
		return nil, err
	}

	created, err := s.intakes.Promote(ctx, intakeID, entity.FormatDraft{
		Name:            name,
		CompanyID:       companyID,
		Pattern:         pattern,
		ExtractionRules: rules,
		// retain the original sample for audit; it is never parsed
		Example: intake.RawText,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("intake approved", "intake_id", intakeID, "format_id", created.ID, "name", name)
	if s.emitter != nil {
		s.emitter.Publish(events.Event{
			Type:      events.TypeFormatPromoted,
			ID:        created.ID,
			RelatedID: intakeID,
			Name:      name,
		})
	}
	return created, nil
}
