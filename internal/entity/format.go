package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionRules maps a logical field name (see constants.Field) to a
// capture-group reference in the format's pattern: either a 1-based group
// index ("1", "2", ...) or a named group ("name", "date", ...).
type ExtractionRules map[string]string

// DtrFormat represents a registered DTR recognition rule for data transfer
// between layers. The pattern is stored as text and compiled at use time.
type DtrFormat struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	CompanyID       *uuid.UUID      `json:"company_id,omitempty"`
	Pattern         string          `json:"pattern"`
	ExtractionRules ExtractionRules `json:"extraction_rules"`
	Example         string          `json:"example,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FormatDraft carries the caller-supplied fields for a new format.
type FormatDraft struct {
	Name            string
	CompanyID       *uuid.UUID
	Pattern         string
	ExtractionRules ExtractionRules
	Example         string
}
