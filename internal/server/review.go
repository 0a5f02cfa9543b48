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

func (s *DtrService) ListPendingIntakes(ctx context.Context, _ *dtrpb.ListPendingIntakesRequest) (*dtrpb.ListPendingIntakesResponse, error) {
	pending, err := s.review.ListPending(ctx)
	if err != nil {
		s.logger.Error("list pending intakes failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list pending intakes: %v", err)
	}
	out := make([]*dtrpb.PendingIntake, 0, len(pending))
	for _, rec := range pending {
		out = append(out, utils.ToPBIntake(rec))
	}
	return &dtrpb.ListPendingIntakesResponse{Intakes: out}, nil
}

func (s *DtrService) ApproveIntake(ctx context.Context, req *dtrpb.ApproveIntakeRequest) (*dtrpb.ApproveIntakeResponse, error) {
	intakeID, err := uuid.Parse(req.GetIntakeId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "intake_id must be a UUID")
	}
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	companyID, err := utils.ParseOptionalUUID(req.GetCompanyId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	f, err := s.review.Approve(ctx, intakeID, req.GetName(), req.GetPattern(),
		entity.ExtractionRules(req.GetExtractionRules()), companyID)
	if err != nil {
		s.logger.Warn("approve intake failed", "intake_id", intakeID, "error", err)
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("intake approved", "intake_id", intakeID, "format_id", f.ID)
	return &dtrpb.ApproveIntakeResponse{Format: utils.ToPBFormat(f)}, nil
}
