package ocr

import (
	"bytes"
	"log/slog"

	"github.com/disintegration/imaging"
)

// EnhanceOptions toggles each pre-OCR adjustment independently.
type EnhanceOptions struct {
	Denoise          bool
	Sharpen          bool
	Contrast         bool
	Perspective      bool
	RemoveBackground bool
}

// Enhancer applies configurable image adjustments before recognition.
type Enhancer interface {
	Enhance(img []byte, opts EnhanceOptions) []byte
}

// ImagingEnhancer implements the adjustments this process can do locally.
// Perspective correction needs the full image-processing collaborator and
// is passed through untouched here. Any failure (undecodable bytes,
// encode error) returns the original image unmodified: enhancement is
// best-effort and must never abort the pipeline.
type ImagingEnhancer struct {
	logger *slog.Logger
}

func NewImagingEnhancer(logger *slog.Logger) *ImagingEnhancer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImagingEnhancer{logger: logger}
}

func (e *ImagingEnhancer) Enhance(img []byte, opts EnhanceOptions) []byte {
	if !opts.Denoise && !opts.Sharpen && !opts.Contrast && !opts.RemoveBackground {
		return img
	}
	decoded, err := imaging.Decode(bytes.NewReader(img))
	if err != nil {
		e.logger.Warn("enhance skipped: image decode failed", "error", err)
		return img
	}

	out := imaging.Clone(decoded)
	if opts.Denoise {
		out = imaging.Blur(out, 0.6)
	}
	if opts.RemoveBackground {
		// flatten color noise before binarizing contrast
		out = imaging.Grayscale(out)
		out = imaging.AdjustContrast(out, 35)
	}
	if opts.Contrast {
		out = imaging.AdjustContrast(out, 15)
	}
	if opts.Sharpen {
		out = imaging.Sharpen(out, 1.0)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		e.logger.Warn("enhance skipped: encode failed", "error", err)
		return img
	}
	return buf.Bytes()
}
