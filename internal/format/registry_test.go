package format

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/repository"
)

func newTestRegistry(t *testing.T) (*Registry, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewRegistry(store, slog.Default()), store
}

func TestRegistryCreateValidation(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Create(ctx, entity.FormatDraft{
		Name:            "no pattern",
		ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	_, err = reg.Create(ctx, entity.FormatDraft{
		Name:    "no rules",
		Pattern: `Date:\s*(\S+)`,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestRegistryCreateMalformedPatternAccepted(t *testing.T) {
	// a malformed pattern degrades to never-match but is still stored
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	f, err := reg.Create(ctx, entity.FormatDraft{
		Name:            "broken",
		Pattern:         `Date: ([`,
		ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)
	assert.True(t, f.IsActive)
	assert.Nil(t, reg.Compile(f))
}

func TestRegistrySetActiveUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.SetActive(context.Background(), uuid.New(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRegistryListActiveExcludesInactive(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	a, err := reg.Create(ctx, entity.FormatDraft{
		Name: "a", Pattern: `A`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)
	b, err := reg.Create(ctx, entity.FormatDraft{
		Name: "b", Pattern: `B`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)

	_, err = reg.SetActive(ctx, a.ID, false)
	require.NoError(t, err)

	active, err := reg.ListActive(ctx, nil)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)
}

func TestRegistryListActiveCompanyScope(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	mine := uuid.New()
	other := uuid.New()

	_, err := reg.Create(ctx, entity.FormatDraft{
		Name: "global", Pattern: `G`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)
	_, err = reg.Create(ctx, entity.FormatDraft{
		Name: "mine", CompanyID: &mine, Pattern: `M`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)
	_, err = reg.Create(ctx, entity.FormatDraft{
		Name: "other", CompanyID: &other, Pattern: `O`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)

	scoped, err := reg.ListActive(ctx, &mine)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	assert.Equal(t, "global", scoped[0].Name)
	assert.Equal(t, "mine", scoped[1].Name)
}

func TestCompileCacheInvalidatedOnPatternChange(t *testing.T) {
	reg, _ := newTestRegistry(t)
	f := &entity.DtrFormat{ID: uuid.New(), Name: "x", Pattern: `A(\d+)`}

	re1 := reg.Compile(f)
	require.NotNil(t, re1)
	// same pattern -> cached instance
	assert.Same(t, re1, reg.Compile(f))

	f.Pattern = `B(\d+)`
	re2 := reg.Compile(f)
	require.NotNil(t, re2)
	assert.NotSame(t, re1, re2)
	assert.True(t, re2.MatchString("B42"))
}
