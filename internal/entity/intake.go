package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnknownDtrFormat is a quarantined sample that no active format matched.
// Rows are an append-only audit trail: the only mutation ever applied is
// the single pending -> processed transition at approval time.
type UnknownDtrFormat struct {
	ID          uuid.UUID         `json:"id"`
	RawText     string            `json:"raw_text"`
	ImageData   []byte            `json:"image_data,omitempty"`
	CompanyID   *uuid.UUID        `json:"company_id,omitempty"`
	ParsedData  map[string]string `json:"parsed_data,omitempty"`
	IsProcessed bool              `json:"is_processed"`
	CreatedAt   time.Time         `json:"created_at"`
}
