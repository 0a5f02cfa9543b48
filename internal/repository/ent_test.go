package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"dtr-engine/gen/ent"
	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
)

// openEntClient runs the ent schema against an in-memory SQLite database,
// one per test so state never leaks between them.
func openEntClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestEntFormatRepositoryRoundTrip(t *testing.T) {
	client := openEntClient(t)
	repo := NewFormatRepository(client, slog.Default())

	acme := uuid.New()
	created, err := repo.Create(t.Context(), entity.FormatDraft{
		Name:            "Standard Labeled",
		CompanyID:       &acme,
		Pattern:         `Date:\s*(\S+)`,
		ExtractionRules: entity.ExtractionRules{"date": "1"},
		Example:         "Date: 05/15/2023",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.CompanyID)
	assert.Equal(t, acme, *created.CompanyID)

	got, err := repo.GetByID(t.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, entity.ExtractionRules{"date": "1"}, got.ExtractionRules)

	_, err = repo.GetByID(t.Context(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEntFormatRepositoryListActiveScoping(t *testing.T) {
	client := openEntClient(t)
	repo := NewFormatRepository(client, slog.Default())

	acme := uuid.New()
	globex := uuid.New()
	shared, err := repo.Create(t.Context(), entity.FormatDraft{
		Name: "shared", Pattern: `x`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)
	_, err = repo.Create(t.Context(), entity.FormatDraft{
		Name: "acme-only", CompanyID: &acme, Pattern: `x`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)
	_, err = repo.Create(t.Context(), entity.FormatDraft{
		Name: "globex-only", CompanyID: &globex, Pattern: `x`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)

	got, err := repo.ListActive(t.Context(), &acme)
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, f := range got {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"shared", "acme-only"}, names)

	// deactivation drops it from the listing
	_, err = repo.SetActive(t.Context(), shared.ID, false)
	require.NoError(t, err)
	got, err = repo.ListActive(t.Context(), nil)
	require.NoError(t, err)
	for _, f := range got {
		assert.NotEqual(t, shared.ID, f.ID)
	}
}

func TestEntFormatRepositoryListActiveCreationOrder(t *testing.T) {
	client := openEntClient(t)
	repo := NewFormatRepository(client, slog.Default())

	// back-to-back creates land on the same created_at tick; the
	// time-ordered id tie-break must still keep creation order
	want := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("format-%02d", i)
		_, err := repo.Create(t.Context(), entity.FormatDraft{
			Name: name, Pattern: `x`, ExtractionRules: entity.ExtractionRules{"date": "1"},
		})
		require.NoError(t, err)
		want = append(want, name)
	}

	got, err := repo.ListActive(t.Context(), nil)
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, f := range got {
		names = append(names, f.Name)
	}
	assert.Equal(t, want, names)
}

func TestEntIntakePromoteIsAtomic(t *testing.T) {
	client := openEntClient(t)
	intakes := NewIntakeRepository(client, slog.Default())
	formats := NewFormatRepository(client, slog.Default())

	rec, err := intakes.Create(t.Context(), IntakeDraft{
		RawText:    "mystery layout",
		ParsedData: map[string]string{"rawText": "mystery layout"},
	})
	require.NoError(t, err)
	assert.False(t, rec.IsProcessed)

	created, err := intakes.Promote(t.Context(), rec.ID, entity.FormatDraft{
		Name:            "Promoted",
		Pattern:         `(\S+)`,
		ExtractionRules: entity.ExtractionRules{"date": "1"},
		Example:         rec.RawText,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	pending, err := intakes.ListPending(t.Context())
	require.NoError(t, err)
	assert.Empty(t, pending)

	active, err := formats.ListActive(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Promoted", active[0].Name)

	// the second promote fails and must not create another format
	_, err = intakes.Promote(t.Context(), rec.ID, entity.FormatDraft{
		Name: "Again", Pattern: `x`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.Error(t, err)
	active, err = formats.ListActive(t.Context(), nil)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestEntIntakePromoteUnknownID(t *testing.T) {
	client := openEntClient(t)
	intakes := NewIntakeRepository(client, slog.Default())
	_, err := intakes.Promote(t.Context(), uuid.New(), entity.FormatDraft{
		Name: "x", Pattern: `x`, ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	assert.ErrorIs(t, err, common.ErrNotFound)
}
