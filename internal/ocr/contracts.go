// Package ocr holds the boundary to the text-recognition collaborator and
// the optional pre-OCR image enhancement step. The engine is treated as an
// opaque, possibly slow, possibly failing function; callers wrap it with a
// timeout and degrade to a needs-review prediction instead of propagating
// its failures.
package ocr

import (
	"context"
	"time"
)

// Engine is the text-recognition collaborator: image bytes in, raw text out.
type Engine interface {
	RecognizeText(ctx context.Context, image []byte) (Result, error)
}

type Result struct {
	Text       string
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// EngineFunc adapts a plain function to Engine, mostly for tests.
type EngineFunc func(ctx context.Context, image []byte) (Result, error)

func (f EngineFunc) RecognizeText(ctx context.Context, image []byte) (Result, error) {
	return f(ctx, image)
}
