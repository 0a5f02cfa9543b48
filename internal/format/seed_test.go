package format

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedDoc = `formats:
  - name: Standard Format
    pattern: '(?s)Employee:\s*(?P<name>[^#\n]+)\s*#(?P<id>\d+).*Date:\s*(?P<date>\S+).*Time In:\s*(?P<in>[^\n]+)\s*\n\s*Time Out:\s*(?P<out>[^\n]+)'
    rules:
      employeeName: name
      employeeId: id
      date: date
      timeIn: in
      timeOut: out
    example: |
      Employee: John Smith #12345
      Date: 05/15/2023
      Time In: 8:30 AM
      Time Out: 5:30 PM
  - name: Compact Format
    pattern: '(\d{2}/\d{2}/\d{4})\s+(\d{1,2}:\d{2})\s+(\d{1,2}:\d{2})'
    rules:
      date: "1"
      timeIn: "2"
      timeOut: "3"
`

func writeSeed(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "formats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoadSeed(t *testing.T) {
	drafts, err := LoadSeed(writeSeed(t, seedDoc))
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Standard Format", drafts[0].Name)
	assert.Equal(t, "name", drafts[0].ExtractionRules["employeeName"])
	assert.Equal(t, "1", drafts[1].ExtractionRules["date"])
}

func TestLoadSeedRejectsIncomplete(t *testing.T) {
	_, err := LoadSeed(writeSeed(t, "formats:\n  - name: only-name\n"))
	require.Error(t, err)
}

func TestSeedIsIdempotentByName(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	path := writeSeed(t, seedDoc)

	created, err := Seed(ctx, reg, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	// second run registers nothing new
	created, err = Seed(ctx, reg, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	formats, err := reg.ListActive(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, formats, 2)
}
