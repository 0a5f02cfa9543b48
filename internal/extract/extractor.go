// Package extract turns raw capture groups into a structured DTR
// prediction. Field-level parse failures never surface as errors: the
// field is left unset and the prediction is flagged for review, so the
// human loop is the recovery mechanism for messy documents.
package extract

import (
	"log/slog"
	"strconv"
	"strings"

	"dtr-engine/constants"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/format"
	"dtr-engine/internal/normalize"
)

type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract applies the matched format's extraction rules to the captures
// and assembles a prediction. Confidence is a fixed "format matched"
// signal, not a statistical score.
func (e *Extractor) Extract(rawText string, m *format.Match) *entity.Prediction {
	p := &entity.Prediction{
		RawText:       rawText,
		BreakHours:    constants.DefaultBreakHours,
		OvertimeHours: constants.DefaultOvertimeHours,
		Confidence:    constants.MatchedConfidence,
		CompanyID:     m.Format.CompanyID,
	}
	id := m.Format.ID
	p.FormatID = &id

	parseFailed := false
	for field, ref := range m.Format.ExtractionRules {
		raw, ok := resolveCapture(m, ref)
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		switch constants.Field(constants.NormalizeField(field)) {
		case constants.FieldEmployeeName:
			p.EmployeeName = raw
		case constants.FieldEmployeeID:
			n, err := strconv.Atoi(raw)
			if err != nil {
				e.logger.Warn("employee id not numeric", "raw", raw)
				parseFailed = true
				continue
			}
			p.EmployeeID = &n
		case constants.FieldDate:
			p.Date = normalize.Date(raw)
		case constants.FieldTimeIn:
			p.TimeIn = normalize.Time(raw)
		case constants.FieldTimeOut:
			p.TimeOut = normalize.Time(raw)
		case constants.FieldBreakHours:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				e.logger.Warn("break hours not numeric", "raw", raw)
				parseFailed = true
				continue
			}
			p.BreakHours = v
		case constants.FieldOvertimeHours:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				e.logger.Warn("overtime hours not numeric", "raw", raw)
				parseFailed = true
				continue
			}
			p.OvertimeHours = v
		default:
			e.logger.Warn("unknown extraction field ignored", "field", field, "format_id", m.Format.ID)
		}
	}

	p.RegularHours = regularHours(p.TimeIn, p.TimeOut, p.BreakHours)
	p.NeedsReview = parseFailed || p.Confidence < constants.ReviewThreshold
	return p
}

// Unmatched builds the degraded prediction for text no active format
// matched. Its confidence sits below any auto-acceptance threshold.
func (e *Extractor) Unmatched(rawText string) *entity.Prediction {
	return &entity.Prediction{
		RawText:       rawText,
		BreakHours:    constants.DefaultBreakHours,
		OvertimeHours: constants.DefaultOvertimeHours,
		Confidence:    constants.UnmatchedConfidence,
		NeedsReview:   true,
		IsNewFormat:   true,
	}
}

// resolveCapture resolves a rule reference against the match: a numeric
// reference is a 1-based group index, anything else is a named group.
func resolveCapture(m *format.Match, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if idx, err := strconv.Atoi(ref); err == nil {
		if idx < 0 || idx >= len(m.Groups) {
			return "", false
		}
		return m.Groups[idx], true
	}
	v, ok := m.Named[ref]
	return v, ok
}

// regularHours derives worked hours from normalized in/out times minus the
// break. Shifts crossing midnight wrap forward. Returns 0 when either time
// is missing or not in canonical HH:MM form.
func regularHours(timeIn, timeOut string, breakHours float64) float64 {
	in, ok1 := minutesOfDay(timeIn)
	out, ok2 := minutesOfDay(timeOut)
	if !ok1 || !ok2 {
		return 0
	}
	if out < in {
		out += 24 * 60
	}
	h := float64(out-in)/60 - breakHours
	if h < 0 {
		return 0
	}
	return h
}

func minutesOfDay(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
