// Package server exposes the DTR pipeline over gRPC.
package server

import (
	"log/slog"

	dtrpb "dtr-engine/gen/proto/dtr/v1"
	"dtr-engine/internal/export"
	"dtr-engine/internal/format"
	"dtr-engine/internal/pipeline"
	"dtr-engine/internal/review"
)

type DtrService struct {
	dtrpb.UnimplementedDtrServiceServer
	registry  *format.Registry
	processor *pipeline.Processor
	review    *review.Service
	export    *export.Service
	logger    *slog.Logger
}

func NewDtrService(
	registry *format.Registry,
	processor *pipeline.Processor,
	reviewSvc *review.Service,
	exportSvc *export.Service,
	logger *slog.Logger,
) *DtrService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DtrService{
		registry:  registry,
		processor: processor,
		review:    reviewSvc,
		export:    exportSvc,
		logger:    logger,
	}
}
