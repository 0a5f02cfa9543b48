package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/constants"
	"dtr-engine/internal/directory"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/events"
	"dtr-engine/internal/extract"
	"dtr-engine/internal/format"
	"dtr-engine/internal/ocr"
	"dtr-engine/internal/repository"
	"dtr-engine/internal/review"
)

type testHarness struct {
	store     *repository.MemoryStore
	registry  *format.Registry
	review    *review.Service
	processor *Processor
}

func newHarness(t *testing.T, opts ...Option) *testHarness {
	return newHarnessWithLogger(t, nil, opts...)
}

func newHarnessWithLogger(t *testing.T, logger *slog.Logger, opts ...Option) *testHarness {
	t.Helper()
	store := repository.NewMemoryStore()
	registry := format.NewRegistry(store, nil)
	reviewSvc := review.NewService(store.Intakes(), events.NewEmitter(), nil)
	proc := NewProcessor(logger, registry, format.NewMatcher(registry, nil), extract.NewExtractor(nil), reviewSvc, opts...)
	return &testHarness{store: store, registry: registry, review: reviewSvc, processor: proc}
}

// levelRecorder captures the levels of emitted log records.
type levelRecorder struct {
	mu     sync.Mutex
	levels []slog.Level
}

func (r *levelRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *levelRecorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels = append(r.levels, rec.Level)
	return nil
}

func (r *levelRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *levelRecorder) WithGroup(string) slog.Handler      { return r }

func (r *levelRecorder) has(level slog.Level) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.levels {
		if l == level {
			return true
		}
	}
	return false
}

func (h *testHarness) addFormat(t *testing.T, name, pattern string, rules entity.ExtractionRules) *entity.DtrFormat {
	t.Helper()
	f, err := h.registry.Create(t.Context(), entity.FormatDraft{Name: name, Pattern: pattern, ExtractionRules: rules})
	require.NoError(t, err)
	return f
}

const standardRaw = "Employee: John Smith #12345\nDate: 05/15/2023\nTime In: 8:30 AM\nTime Out: 5:30 PM"

const standardPattern = `(?s)Employee:\s*(?P<name>[^#\n]+)\s*#(?P<id>\d+).*Date:\s*(?P<date>\S+).*Time In:\s*(?P<in>[^\n]+)\s*\n\s*Time Out:\s*(?P<out>[^\n]+)`

var standardRules = entity.ExtractionRules{
	"employeeName": "name",
	"employeeId":   "id",
	"date":         "date",
	"timeIn":       "in",
	"timeOut":      "out",
}

func TestProcessTextMatchedDocument(t *testing.T) {
	h := newHarness(t)
	h.addFormat(t, "Standard Format", standardPattern, standardRules)

	pred, err := h.processor.ProcessText(t.Context(), standardRaw, nil)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", pred.EmployeeName)
	require.NotNil(t, pred.EmployeeID)
	assert.Equal(t, 12345, *pred.EmployeeID)
	assert.Equal(t, "2023-05-15", pred.Date)
	assert.Equal(t, "08:30", pred.TimeIn)
	assert.Equal(t, "17:30", pred.TimeOut)
	assert.Equal(t, float64(1), pred.BreakHours)
	assert.Equal(t, float64(0), pred.OvertimeHours)
	assert.False(t, pred.NeedsReview)
	assert.False(t, pred.IsNewFormat)

	// a clean match leaves nothing in the review queue
	pending, err := h.review.ListPending(t.Context())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestProcessTextNoMatchQuarantines(t *testing.T) {
	h := newHarness(t)
	h.addFormat(t, "Standard Format", standardPattern, standardRules)

	pred, err := h.processor.ProcessText(t.Context(), "completely different layout", nil)
	require.NoError(t, err)
	assert.True(t, pred.NeedsReview)
	assert.True(t, pred.IsNewFormat)
	assert.Equal(t, constants.UnmatchedConfidence, pred.Confidence)

	pending, err := h.review.ListPending(t.Context())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "completely different layout", pending[0].RawText)
}

func TestApprovalClosesTheLoop(t *testing.T) {
	h := newHarness(t)

	raw := "SHIFT 05/15/2023 | 08:00-17:00"
	pred, err := h.processor.ProcessText(t.Context(), raw, nil)
	require.NoError(t, err)
	assert.True(t, pred.IsNewFormat)

	pending, err := h.review.ListPending(t.Context())
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = h.review.Approve(t.Context(), pending[0].ID, "Shift Format",
		`SHIFT (\d{2}/\d{2}/\d{4}) \| (\d{2}:\d{2})-(\d{2}:\d{2})`,
		entity.ExtractionRules{"date": "1", "timeIn": "2", "timeOut": "3"}, nil)
	require.NoError(t, err)

	// the same document now parses cleanly
	pred, err = h.processor.ProcessText(t.Context(), raw, nil)
	require.NoError(t, err)
	assert.False(t, pred.NeedsReview)
	assert.False(t, pred.IsNewFormat)
	assert.Equal(t, "2023-05-15", pred.Date)
	assert.Equal(t, "08:00", pred.TimeIn)
	assert.Equal(t, "17:00", pred.TimeOut)

	pending, err = h.review.ListPending(t.Context())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestProcessImageOCRFailureDegrades(t *testing.T) {
	failing := ocr.EngineFunc(func(context.Context, []byte) (ocr.Result, error) {
		return ocr.Result{}, errors.New("binary not found")
	})
	rec := &levelRecorder{}
	h := newHarnessWithLogger(t, slog.New(rec), WithOCR(failing, time.Second))

	pred, err := h.processor.ProcessImage(t.Context(), []byte("not an image"), nil)
	require.NoError(t, err)
	assert.Equal(t, float32(0), pred.Confidence)
	assert.True(t, pred.NeedsReview)
	assert.True(t, pred.IsNewFormat)
	assert.True(t, rec.has(slog.LevelError), "an engine failure is an error")
}

func TestProcessImageEmptyTextDegrades(t *testing.T) {
	empty := ocr.EngineFunc(func(context.Context, []byte) (ocr.Result, error) {
		return ocr.Result{Text: ""}, nil
	})
	rec := &levelRecorder{}
	h := newHarnessWithLogger(t, slog.New(rec), WithOCR(empty, time.Second))

	pred, err := h.processor.ProcessImage(t.Context(), []byte{0x89}, nil)
	require.NoError(t, err)
	assert.True(t, pred.NeedsReview)
	assert.Equal(t, float32(0), pred.Confidence)

	// a blank page is not an engine failure: warn, don't error
	assert.True(t, rec.has(slog.LevelWarn))
	assert.False(t, rec.has(slog.LevelError))
}

func TestProcessImageRecognizedTextFlowsThroughMatching(t *testing.T) {
	engine := ocr.EngineFunc(func(context.Context, []byte) (ocr.Result, error) {
		return ocr.Result{Text: standardRaw}, nil
	})
	h := newHarness(t, WithOCR(engine, time.Second))
	h.addFormat(t, "Standard Format", standardPattern, standardRules)

	pred, err := h.processor.ProcessImage(t.Context(), []byte("pretend png"), nil)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", pred.EmployeeName)
	assert.False(t, pred.NeedsReview)
}

func TestDirectoryEnrichment(t *testing.T) {
	companyID := uuid.New()
	dir := directory.NewStaticDirectory()
	dir.AddEmployee(directory.Employee{ID: 777, Name: "Jane Molina", CompanyID: companyID})

	h := newHarness(t, WithDirectory(dir))
	h.addFormat(t, "ID Only", `ID:\s*(\d+)\s+Date:\s*(\S+)`,
		entity.ExtractionRules{"employeeId": "1", "date": "2"})

	pred, err := h.processor.ProcessText(t.Context(), "ID: 777 Date: 05/15/2023", nil)
	require.NoError(t, err)
	assert.Equal(t, "Jane Molina", pred.EmployeeName)
	require.NotNil(t, pred.CompanyID)
	assert.Equal(t, companyID, *pred.CompanyID)

	// unknown ids are advisory misses, not failures
	pred, err = h.processor.ProcessText(t.Context(), "ID: 999 Date: 05/15/2023", nil)
	require.NoError(t, err)
	assert.Empty(t, pred.EmployeeName)
}

func TestProcessImageWithoutEngine(t *testing.T) {
	h := newHarness(t)
	_, err := h.processor.ProcessImage(t.Context(), []byte("img"), nil)
	require.Error(t, err)
}
