package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dtrpb "dtr-engine/gen/proto/dtr/v1"
	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/utils"
)

func (s *DtrService) ListFormats(ctx context.Context, req *dtrpb.ListFormatsRequest) (*dtrpb.ListFormatsResponse, error) {
	companyID, err := utils.ParseOptionalUUID(req.GetCompanyId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	formats, err := s.registry.ListActive(ctx, companyID)
	if err != nil {
		s.logger.Error("list formats failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list formats: %v", err)
	}
	out := make([]*dtrpb.DtrFormat, 0, len(formats))
	for _, f := range formats {
		out = append(out, utils.ToPBFormat(f))
	}
	return &dtrpb.ListFormatsResponse{Formats: out}, nil
}

func (s *DtrService) CreateFormat(ctx context.Context, req *dtrpb.CreateFormatRequest) (*dtrpb.CreateFormatResponse, error) {
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	companyID, err := utils.ParseOptionalUUID(req.GetCompanyId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	f, err := s.registry.Create(ctx, entity.FormatDraft{
		Name:            req.GetName(),
		CompanyID:       companyID,
		Pattern:         req.GetPattern(),
		ExtractionRules: entity.ExtractionRules(req.GetExtractionRules()),
		Example:         req.GetExample(),
	})
	if err != nil {
		s.logger.Warn("create format failed", "name", req.GetName(), "error", err)
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("format created", "format_id", f.ID, "name", f.Name)
	return &dtrpb.CreateFormatResponse{Format: utils.ToPBFormat(f)}, nil
}

func (s *DtrService) SetFormatActive(ctx context.Context, req *dtrpb.SetFormatActiveRequest) (*dtrpb.SetFormatActiveResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	f, err := s.registry.SetActive(ctx, id, req.GetIsActive())
	if err != nil {
		s.logger.Warn("toggle format failed", "format_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	return &dtrpb.SetFormatActiveResponse{Format: utils.ToPBFormat(f)}, nil
}
