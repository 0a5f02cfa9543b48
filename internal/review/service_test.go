package review

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/events"
	"dtr-engine/internal/repository"
)

func newTestService(t *testing.T) (*Service, *repository.MemoryStore, *events.Emitter) {
	t.Helper()
	store := repository.NewMemoryStore()
	emitter := events.NewEmitter()
	return NewService(store.Intakes(), emitter, nil), store, emitter
}

func TestIntakeRequiresRawText(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Intake(t.Context(), "", nil, nil, nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestIntakeCreatesPendingRecord(t *testing.T) {
	svc, _, emitter := newTestService(t)

	var published []events.Event
	emitter.Subscribe(events.TypeIntakeCreated, func(e events.Event) { published = append(published, e) })

	rec, err := svc.Intake(t.Context(), "mystery layout", nil, nil, map[string]string{"date": "2023-05-15"})
	require.NoError(t, err)
	assert.False(t, rec.IsProcessed)
	assert.Equal(t, "mystery layout", rec.RawText)

	pending, err := svc.ListPending(t.Context())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, rec.ID, pending[0].ID)

	require.Len(t, published, 1)
	assert.Equal(t, events.TypeIntakeCreated, published[0].Type)
	assert.Equal(t, rec.ID, published[0].ID)
}

func TestApproveCreatesActiveFormatAndClearsIntake(t *testing.T) {
	svc, store, emitter := newTestService(t)

	var promoted []events.Event
	emitter.Subscribe(events.TypeFormatPromoted, func(e events.Event) { promoted = append(promoted, e) })

	rec, err := svc.Intake(t.Context(), "IN 08:00 OUT 17:00", nil, nil, nil)
	require.NoError(t, err)

	rules := entity.ExtractionRules{"timeIn": "1", "timeOut": "2"}
	created, err := svc.Approve(t.Context(), rec.ID, "Shift Log", `IN (\d{2}:\d{2}) OUT (\d{2}:\d{2})`, rules, nil)
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "Shift Log", created.Name)
	assert.Equal(t, rec.RawText, created.Example)

	pending, err := svc.ListPending(t.Context())
	require.NoError(t, err)
	assert.Empty(t, pending)

	formats, err := store.ListActive(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, formats, 1)
	assert.Equal(t, created.ID, formats[0].ID)

	require.Len(t, promoted, 1)
	assert.Equal(t, created.ID, promoted[0].ID)
	assert.Equal(t, rec.ID, promoted[0].RelatedID)
}

func TestApproveValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	rec, err := svc.Intake(t.Context(), "sample", nil, nil, nil)
	require.NoError(t, err)

	rules := entity.ExtractionRules{"date": "1"}
	tests := []struct {
		name    string
		format  string
		pattern string
		rules   entity.ExtractionRules
	}{
		{"empty name", "", `(\S+)`, rules},
		{"empty pattern", "F", "", rules},
		{"empty rules", "F", `(\S+)`, nil},
		{"non-compiling pattern", "F", `([unclosed`, rules},
		{"unknown rule field", "F", `(\S+)`, entity.ExtractionRules{"favoriteColor": "1"}},
		{"bad rule reference", "F", `(\S+)`, entity.ExtractionRules{"date": "not a group!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Approve(t.Context(), rec.ID, tt.format, tt.pattern, tt.rules, nil)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}

	// rejected approvals leave the intake pending
	pending, err := svc.ListPending(t.Context())
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestApproveUnknownIntake(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Approve(t.Context(), uuid.New(), "F", `(\S+)`, entity.ExtractionRules{"date": "1"}, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestApproveTwiceFails(t *testing.T) {
	svc, _, _ := newTestService(t)
	rec, err := svc.Intake(t.Context(), "sample", nil, nil, nil)
	require.NoError(t, err)

	rules := entity.ExtractionRules{"date": "1"}
	_, err = svc.Approve(t.Context(), rec.ID, "F", `(\S+)`, rules, nil)
	require.NoError(t, err)

	_, err = svc.Approve(t.Context(), rec.ID, "F2", `(\S+)`, rules, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}
