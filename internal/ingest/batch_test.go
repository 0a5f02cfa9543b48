package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/internal/entity"
)

type stubParser struct {
	texts  []string
	images int
}

func (s *stubParser) ProcessText(_ context.Context, rawText string, _ *uuid.UUID) (*entity.Prediction, error) {
	s.texts = append(s.texts, rawText)
	return &entity.Prediction{RawText: rawText}, nil
}

func (s *stubParser) ProcessImage(_ context.Context, _ []byte, _ *uuid.UUID) (*entity.Prediction, error) {
	s.images++
	return &entity.Prediction{NeedsReview: true}, nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestIngestPathRoutesByExtension(t *testing.T) {
	dir := t.TempDir()
	parser := &stubParser{}
	ing := NewBatchIngestor(parser, nil, nil)

	txt := writeFile(t, dir, "sheet.txt", "Date: 05/15/2023")
	r, err := ing.IngestPath(t.Context(), txt)
	require.NoError(t, err)
	require.NotNil(t, r.Prediction)
	assert.Equal(t, []string{"Date: 05/15/2023"}, parser.texts)

	png := writeFile(t, dir, "scan.png", "pretend image bytes")
	_, err = ing.IngestPath(t.Context(), png)
	require.NoError(t, err)
	assert.Equal(t, 1, parser.images)

	_, err = ing.IngestPath(t.Context(), writeFile(t, dir, "notes.docx", "x"))
	assert.Error(t, err)
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	parser := &stubParser{}
	ing := NewBatchIngestor(parser, nil, nil)

	a := writeFile(t, dir, "a.txt", "same content")
	b := writeFile(t, dir, "b.txt", "same content")

	r1, err := ing.IngestPath(t.Context(), a)
	require.NoError(t, err)
	assert.False(t, r1.Deduplicated)

	r2, err := ing.IngestPath(t.Context(), b)
	require.NoError(t, err)
	assert.True(t, r2.Deduplicated)
	assert.Nil(t, r2.Prediction)
	assert.Equal(t, r1.HashHex, r2.HashHex)

	assert.Len(t, parser.texts, 1)
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	writeFile(t, dir, "one.txt", "first")
	writeFile(t, sub, "two.txt", "second")
	writeFile(t, dir, "skip.docx", "ignored")
	writeFile(t, dir, ".hidden.txt", "hidden")

	parser := &stubParser{}
	ing := NewBatchIngestor(parser, nil, nil)

	results, stats, err := ing.IngestDirectory(t.Context(), dir, true)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.ElementsMatch(t, []string{"first", "second"}, parser.texts)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewBatchIngestor(&stubParser{}, nil, nil)
	_, _, err := ing.IngestDirectory(t.Context(), "  ", false)
	assert.Error(t, err)
}
