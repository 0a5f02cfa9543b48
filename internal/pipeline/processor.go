// Package pipeline coordinates enhancement, OCR, format matching and field
// extraction for one document at a time. Each document is processed
// independently; the format registry is the only shared state and is read
// as a snapshot per request.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dtr-engine/internal/common"
	"dtr-engine/internal/directory"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/extract"
	"dtr-engine/internal/format"
	"dtr-engine/internal/ocr"
	"dtr-engine/internal/review"
)

type Processor struct {
	logger      *slog.Logger
	registry    *format.Registry
	matcher     *format.Matcher
	extractor   *extract.Extractor
	review      *review.Service
	engine      ocr.Engine
	enhancer    ocr.Enhancer
	directory   directory.Directory
	ocrTimeout  time.Duration
	enhanceOpts ocr.EnhanceOptions
}

type Option func(*Processor)

// WithOCR wires the recognition collaborator; without it only ProcessText
// is usable.
func WithOCR(engine ocr.Engine, timeout time.Duration) Option {
	return func(p *Processor) {
		p.engine = engine
		if timeout > 0 {
			p.ocrTimeout = timeout
		}
	}
}

func WithEnhancer(e ocr.Enhancer, opts ocr.EnhanceOptions) Option {
	return func(p *Processor) {
		p.enhancer = e
		p.enhanceOpts = opts
	}
}

func WithDirectory(d directory.Directory) Option {
	return func(p *Processor) { p.directory = d }
}

func NewProcessor(
	logger *slog.Logger,
	registry *format.Registry,
	matcher *format.Matcher,
	extractor *extract.Extractor,
	reviewSvc *review.Service,
	opts ...Option,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		logger:     logger,
		registry:   registry,
		matcher:    matcher,
		extractor:  extractor,
		review:     reviewSvc,
		ocrTimeout: 30 * time.Second,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ProcessText runs matching and extraction over already-recognized text.
func (p *Processor) ProcessText(ctx context.Context, rawText string, companyID *uuid.UUID) (*entity.Prediction, error) {
	return p.process(ctx, rawText, companyID, nil)
}

// ProcessImage runs the full pipeline: enhance, recognize, match, extract.
// The OCR call is the only suspension point and carries a timeout; on
// failure the document degrades to a zero-confidence needs-review
// prediction instead of an error.
func (p *Processor) ProcessImage(ctx context.Context, img []byte, companyID *uuid.UUID) (*entity.Prediction, error) {
	if p.engine == nil {
		return nil, common.NewValidationError("no OCR engine configured")
	}
	if p.enhancer != nil {
		img = p.enhancer.Enhance(img, p.enhanceOpts)
	}

	octx, cancel := context.WithTimeout(ctx, p.ocrTimeout)
	defer cancel()
	res, err := p.engine.RecognizeText(octx, img)
	if err != nil {
		p.logger.Error("ocr failed; degrading to review", "error", err, "company_id", companyID)
		return degradedPrediction(companyID), nil
	}
	if res.Text == "" {
		p.logger.Warn("ocr returned no text; degrading to review", "company_id", companyID)
		return degradedPrediction(companyID), nil
	}
	p.logger.Debug("ocr ok", "bytes", len(res.Text), "duration_ms", res.Duration.Milliseconds())
	return p.process(ctx, res.Text, companyID, img)
}

// degradedPrediction is what an unreadable document produces: zero
// confidence, flagged for review as a potential new format.
func degradedPrediction(companyID *uuid.UUID) *entity.Prediction {
	return &entity.Prediction{
		CompanyID:   companyID,
		Confidence:  0,
		NeedsReview: true,
		IsNewFormat: true,
	}
}

func (p *Processor) process(ctx context.Context, rawText string, companyID *uuid.UUID, imageData []byte) (*entity.Prediction, error) {
	formats, err := p.registry.ListActive(ctx, companyID)
	if err != nil {
		return nil, common.WrapError(err, "list active formats")
	}

	m := p.matcher.Match(rawText, formats)
	if m == nil {
		pred := p.extractor.Unmatched(rawText)
		pred.CompanyID = companyID
		p.quarantine(ctx, rawText, companyID, imageData, pred)
		return pred, nil
	}

	pred := p.extractor.Extract(rawText, m)
	if pred.CompanyID == nil {
		pred.CompanyID = companyID
	}
	p.enrich(ctx, pred)

	// a matched-but-doubtful document still goes to the review queue so an
	// operator can tighten the format
	if pred.NeedsReview {
		p.quarantine(ctx, rawText, companyID, imageData, pred)
	}
	return pred, nil
}

// quarantine files the sample for operator review. A storage failure here
// is logged rather than returned: the caller still gets its prediction and
// the review queue is the part that degrades.
func (p *Processor) quarantine(ctx context.Context, rawText string, companyID *uuid.UUID, imageData []byte, pred *entity.Prediction) {
	if p.review == nil {
		return
	}
	rec, err := p.review.Intake(ctx, rawText, companyID, imageData, pred.Fields())
	if err != nil {
		p.logger.Error("intake failed", "error", err)
		return
	}
	p.logger.Info("document quarantined for review",
		"intake_id", rec.ID, "is_new_format", pred.IsNewFormat, "confidence", pred.Confidence)
}

// enrich validates the extracted employee id against the directory and
// fills the company hint when absent. Lookup misses leave the prediction
// as-is; the directory is advisory only.
func (p *Processor) enrich(ctx context.Context, pred *entity.Prediction) {
	if p.directory == nil || pred.EmployeeID == nil {
		return
	}
	emp, err := p.directory.GetEmployee(ctx, *pred.EmployeeID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			p.logger.Warn("employee lookup failed", "employee_id", *pred.EmployeeID, "error", err)
		}
		return
	}
	if pred.EmployeeName == "" {
		pred.EmployeeName = emp.Name
	}
	if pred.CompanyID == nil && emp.CompanyID != uuid.Nil {
		cid := emp.CompanyID
		pred.CompanyID = &cid
	}
}
