package entity

import "github.com/google/uuid"

// NewOrderedID returns a time-ordered (v7) UUID. Rows that share a
// created_at tick still sort in creation order on the id tie-break,
// which the format registry relies on for first-match-wins.
func NewOrderedID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy exhaustion; a random id only weakens the tie-break
		return uuid.New()
	}
	return id
}
