package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
)

func TestMemoryStoreListActivePreservesCreationOrder(t *testing.T) {
	s := NewMemoryStore()
	names := []string{"first", "second", "third"}
	for _, n := range names {
		_, err := s.Create(t.Context(), entity.FormatDraft{Name: n, Pattern: `x`})
		require.NoError(t, err)
	}

	got, err := s.ListActive(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, n := range names {
		assert.Equal(t, n, got[i].Name)
	}
}

func TestMemoryStoreSetActiveExcludesFromListing(t *testing.T) {
	s := NewMemoryStore()
	f, err := s.Create(t.Context(), entity.FormatDraft{Name: "f", Pattern: `x`})
	require.NoError(t, err)

	_, err = s.SetActive(t.Context(), f.ID, false)
	require.NoError(t, err)

	got, err := s.ListActive(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	// deactivated formats are still addressable
	byID, err := s.GetByID(t.Context(), f.ID)
	require.NoError(t, err)
	assert.False(t, byID.IsActive)
}

func TestMemoryStoreCompanyScoping(t *testing.T) {
	s := NewMemoryStore()
	acme := uuid.New()
	globex := uuid.New()

	_, err := s.Create(t.Context(), entity.FormatDraft{Name: "shared", Pattern: `x`})
	require.NoError(t, err)
	_, err = s.Create(t.Context(), entity.FormatDraft{Name: "acme-only", Pattern: `x`, CompanyID: &acme})
	require.NoError(t, err)
	_, err = s.Create(t.Context(), entity.FormatDraft{Name: "globex-only", Pattern: `x`, CompanyID: &globex})
	require.NoError(t, err)

	got, err := s.ListActive(t.Context(), &acme)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "shared", got[0].Name)
	assert.Equal(t, "acme-only", got[1].Name)
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetByID(t.Context(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = s.SetActive(t.Context(), uuid.New(), false)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	f, err := s.Create(t.Context(), entity.FormatDraft{Name: "f", Pattern: `x`})
	require.NoError(t, err)

	f.Name = "mutated"
	got, err := s.GetByID(t.Context(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, "f", got.Name)
}

func TestIntakePromoteAtomicity(t *testing.T) {
	s := NewMemoryStore()
	intakes := s.Intakes()

	rec, err := intakes.Create(t.Context(), IntakeDraft{RawText: "sample"})
	require.NoError(t, err)

	created, err := intakes.Promote(t.Context(), rec.ID, entity.FormatDraft{Name: "promoted", Pattern: `x`})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	pending, err := intakes.ListPending(t.Context())
	require.NoError(t, err)
	assert.Empty(t, pending)

	formats, err := s.ListActive(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, formats, 1)
	assert.Equal(t, "promoted", formats[0].Name)

	// a second promote of the same intake creates nothing
	_, err = intakes.Promote(t.Context(), rec.ID, entity.FormatDraft{Name: "dup", Pattern: `x`})
	assert.ErrorIs(t, err, common.ErrValidation)
	formats, err = s.ListActive(t.Context(), nil)
	require.NoError(t, err)
	assert.Len(t, formats, 1)
}

func TestIntakePromoteUnknownID(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Intakes().Promote(t.Context(), uuid.New(), entity.FormatDraft{Name: "f", Pattern: `x`})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestIntakeListPendingOrder(t *testing.T) {
	s := NewMemoryStore()
	intakes := s.Intakes()
	for _, txt := range []string{"one", "two", "three"} {
		_, err := intakes.Create(t.Context(), IntakeDraft{RawText: txt})
		require.NoError(t, err)
	}

	pending, err := intakes.ListPending(t.Context())
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "one", pending[0].RawText)
	assert.Equal(t, "three", pending[2].RawText)
}
