package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/internal/entity"
)

func mustCreate(t *testing.T, reg *Registry, name, pattern string) *entity.DtrFormat {
	t.Helper()
	f, err := reg.Create(context.Background(), entity.FormatDraft{
		Name:            name,
		Pattern:         pattern,
		ExtractionRules: entity.ExtractionRules{"date": "1"},
	})
	require.NoError(t, err)
	return f
}

func TestMatchFirstWins(t *testing.T) {
	// both patterns match; registry order is the only disambiguator
	reg, _ := newTestRegistry(t)
	m := NewMatcher(reg, nil)

	first := mustCreate(t, reg, "first", `Date:\s*(\S+)`)
	mustCreate(t, reg, "second", `Date:\s*(\d{2}/\d{2}/\d{4})`)

	formats, err := reg.ListActive(context.Background(), nil)
	require.NoError(t, err)

	got := m.Match("Date: 05/15/2023", formats)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.Format.ID)
	assert.Equal(t, "05/15/2023", got.Groups[1])
}

func TestMatchEmptyFormats(t *testing.T) {
	reg, _ := newTestRegistry(t)
	m := NewMatcher(reg, nil)
	assert.Nil(t, m.Match("anything", nil))
	assert.Nil(t, m.Match("anything", []*entity.DtrFormat{}))
}

func TestMatchNoHit(t *testing.T) {
	reg, _ := newTestRegistry(t)
	m := NewMatcher(reg, nil)
	mustCreate(t, reg, "dates only", `Date:\s*(\d{2}/\d{2}/\d{4})`)

	formats, err := reg.ListActive(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, m.Match("no dates here", formats))
}

func TestMatchMalformedPatternIsolated(t *testing.T) {
	// an uncompilable format never matches and never breaks formats after
	// it in registry order
	reg, _ := newTestRegistry(t)
	m := NewMatcher(reg, nil)

	mustCreate(t, reg, "broken", `([`)
	good := mustCreate(t, reg, "good", `Time In:\s*(\S+ \S+)`)

	formats, err := reg.ListActive(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, formats, 2)

	got := m.Match("Time In: 8:30 AM", formats)
	require.NotNil(t, got)
	assert.Equal(t, good.ID, got.Format.ID)
}

func TestMatchNamedGroups(t *testing.T) {
	reg, _ := newTestRegistry(t)
	m := NewMatcher(reg, nil)
	mustCreate(t, reg, "named", `(?s)Employee:\s*(?P<name>[^\n]+).*Date:\s*(?P<date>\S+)`)

	formats, err := reg.ListActive(context.Background(), nil)
	require.NoError(t, err)

	got := m.Match("Employee: Jane Cruz\nDate: 05/15/2023", formats)
	require.NotNil(t, got)
	assert.Equal(t, "Jane Cruz", got.Named["name"])
	assert.Equal(t, "05/15/2023", got.Named["date"])
}

func TestMatchMultilineNoisyText(t *testing.T) {
	reg, _ := newTestRegistry(t)
	m := NewMatcher(reg, nil)
	mustCreate(t, reg, "tolerant", `(?s)Date:\s*(\d{2}/\d{2}/\d{4})`)

	raw := "SCANNED COPY ~~\nheader junk %%\nDate: 05/15/2023\nfooter"
	formats, err := reg.ListActive(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, m.Match(raw, formats))
}
