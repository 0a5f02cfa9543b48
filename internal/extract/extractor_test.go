package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/constants"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/format"
	"dtr-engine/internal/repository"
)

func matchFor(t *testing.T, pattern, rawText string, rules entity.ExtractionRules) *format.Match {
	t.Helper()
	reg := format.NewRegistry(repository.NewMemoryStore(), nil)
	f, err := reg.Create(t.Context(), entity.FormatDraft{
		Name:            "test",
		Pattern:         pattern,
		ExtractionRules: rules,
	})
	require.NoError(t, err)
	m := format.NewMatcher(reg, nil).Match(rawText, []*entity.DtrFormat{f})
	require.NotNil(t, m)
	return m
}

func TestExtractStandardFormat(t *testing.T) {
	raw := "Employee: John Smith #12345\nDate: 05/15/2023\nTime In: 8:30 AM\nTime Out: 5:30 PM"
	pattern := `(?s)Employee:\s*(?P<name>[^#\n]+)\s*#(?P<id>\d+).*Date:\s*(?P<date>\S+).*Time In:\s*(?P<in>[^\n]+)\s*\n\s*Time Out:\s*(?P<out>[^\n]+)`
	rules := entity.ExtractionRules{
		"employeeName": "name",
		"employeeId":   "id",
		"date":         "date",
		"timeIn":       "in",
		"timeOut":      "out",
	}

	m := matchFor(t, pattern, raw, rules)
	p := NewExtractor(nil).Extract(raw, m)

	assert.Equal(t, "John Smith", p.EmployeeName)
	require.NotNil(t, p.EmployeeID)
	assert.Equal(t, 12345, *p.EmployeeID)
	assert.Equal(t, "2023-05-15", p.Date)
	assert.Equal(t, "08:30", p.TimeIn)
	assert.Equal(t, "17:30", p.TimeOut)
	assert.Equal(t, float64(1), p.BreakHours)
	assert.Equal(t, float64(0), p.OvertimeHours)
	assert.Equal(t, float64(8), p.RegularHours)
	assert.False(t, p.NeedsReview)
	assert.False(t, p.IsNewFormat)
	assert.Equal(t, constants.MatchedConfidence, p.Confidence)
}

func TestExtractIndexedGroups(t *testing.T) {
	raw := "05/15/2023 08:00 16:00 0.5 2"
	pattern := `(\d{2}/\d{2}/\d{4})\s+(\d{1,2}:\d{2})\s+(\d{1,2}:\d{2})\s+([\d.]+)\s+([\d.]+)`
	rules := entity.ExtractionRules{
		"date":          "1",
		"timeIn":        "2",
		"timeOut":       "3",
		"breakHours":    "4",
		"overtimeHours": "5",
	}

	m := matchFor(t, pattern, raw, rules)
	p := NewExtractor(nil).Extract(raw, m)

	assert.Equal(t, "2023-05-15", p.Date)
	assert.Equal(t, 0.5, p.BreakHours)
	assert.Equal(t, float64(2), p.OvertimeHours)
	assert.Equal(t, 7.5, p.RegularHours)
	assert.False(t, p.NeedsReview)
}

func TestExtractDefaultsForMissingOptionalFields(t *testing.T) {
	raw := "Date: 05/15/2023"
	m := matchFor(t, `Date:\s*(\S+)`, raw, entity.ExtractionRules{"date": "1"})
	p := NewExtractor(nil).Extract(raw, m)

	assert.Equal(t, constants.DefaultBreakHours, p.BreakHours)
	assert.Equal(t, constants.DefaultOvertimeHours, p.OvertimeHours)
	assert.Equal(t, float64(0), p.RegularHours)
}

func TestExtractUnparsableFieldForcesReview(t *testing.T) {
	raw := "ID: ABC Date: 05/15/2023"
	rules := entity.ExtractionRules{"employeeId": "1", "date": "2"}
	m := matchFor(t, `ID:\s*(\S+)\s*Date:\s*(\S+)`, raw, rules)
	p := NewExtractor(nil).Extract(raw, m)

	assert.Nil(t, p.EmployeeID)
	assert.Equal(t, "2023-05-15", p.Date)
	assert.True(t, p.NeedsReview)
}

func TestExtractMissingCaptureLeavesFieldUnset(t *testing.T) {
	raw := "Date: 05/15/2023"
	rules := entity.ExtractionRules{"date": "1", "timeIn": "nonexistent"}
	m := matchFor(t, `Date:\s*(\S+)`, raw, rules)
	p := NewExtractor(nil).Extract(raw, m)

	assert.Equal(t, "2023-05-15", p.Date)
	assert.Empty(t, p.TimeIn)
	// a rule pointing at a missing group is not a parse failure
	assert.False(t, p.NeedsReview)
}

func TestUnmatchedPrediction(t *testing.T) {
	p := NewExtractor(nil).Unmatched("mystery layout")

	assert.True(t, p.NeedsReview)
	assert.True(t, p.IsNewFormat)
	assert.Equal(t, constants.UnmatchedConfidence, p.Confidence)
	assert.Less(t, p.Confidence, constants.ReviewThreshold)
	assert.Equal(t, "mystery layout", p.RawText)
}

func TestRegularHoursOvernightShift(t *testing.T) {
	raw := "22:00 06:00"
	rules := entity.ExtractionRules{"timeIn": "1", "timeOut": "2"}
	m := matchFor(t, `(\d{2}:\d{2})\s+(\d{2}:\d{2})`, raw, rules)
	p := NewExtractor(nil).Extract(raw, m)

	assert.Equal(t, float64(7), p.RegularHours) // 8h minus default 1h break
}
