// Package async decouples document discovery from parsing: discovery
// enqueues paths, a small worker pool drains them through the ingestor.
package async

import (
	"context"
	"time"
)

// Job is one document waiting to be parsed.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
