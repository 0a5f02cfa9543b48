package utils

import (
	"time"

	"github.com/google/uuid"

	dtrpb "dtr-engine/gen/proto/dtr/v1"
	"dtr-engine/internal/entity"
)

func uuidOrEmpty(p *uuid.UUID) string {
	if p == nil {
		return ""
	}
	return p.String()
}

// ParseOptionalUUID turns an empty string into nil and anything else into
// a parsed UUID.
func ParseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func ToPBFormat(f *entity.DtrFormat) *dtrpb.DtrFormat {
	return &dtrpb.DtrFormat{
		Id:              f.ID.String(),
		Name:            f.Name,
		CompanyId:       uuidOrEmpty(f.CompanyID),
		Pattern:         f.Pattern,
		ExtractionRules: map[string]string(f.ExtractionRules),
		Example:         f.Example,
		IsActive:        f.IsActive,
		CreatedAt:       f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBIntake(rec *entity.UnknownDtrFormat) *dtrpb.PendingIntake {
	return &dtrpb.PendingIntake{
		Id:          rec.ID.String(),
		RawText:     rec.RawText,
		CompanyId:   uuidOrEmpty(rec.CompanyID),
		ParsedData:  rec.ParsedData,
		IsProcessed: rec.IsProcessed,
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBPrediction(p *entity.Prediction) *dtrpb.Prediction {
	out := &dtrpb.Prediction{
		Date:          p.Date,
		TimeIn:        p.TimeIn,
		TimeOut:       p.TimeOut,
		BreakHours:    p.BreakHours,
		OvertimeHours: p.OvertimeHours,
		RegularHours:  p.RegularHours,
		EmployeeName:  p.EmployeeName,
		CompanyId:     uuidOrEmpty(p.CompanyID),
		FormatId:      uuidOrEmpty(p.FormatID),
		Confidence:    p.Confidence,
		NeedsReview:   p.NeedsReview,
		IsNewFormat:   p.IsNewFormat,
		RawText:       p.RawText,
	}
	if p.EmployeeID != nil {
		out.EmployeeId = int64(*p.EmployeeID)
		out.HasEmployeeId = true
	}
	return out
}
