package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dtrpb "dtr-engine/gen/proto/dtr/v1"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/utils"
)

func (s *DtrService) ParseText(ctx context.Context, req *dtrpb.ParseTextRequest) (*dtrpb.ParseResponse, error) {
	if strings.TrimSpace(req.GetRawText()) == "" {
		return nil, status.Error(codes.InvalidArgument, "raw_text is required")
	}
	companyID, err := utils.ParseOptionalUUID(req.GetCompanyId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	pred, err := s.processor.ProcessText(ctx, req.GetRawText(), companyID)
	if err != nil {
		s.logger.Error("parse text failed", "error", err)
		return nil, status.Errorf(codes.Internal, "parse text: %v", err)
	}
	s.logger.Info("text parsed",
		"needs_review", pred.NeedsReview, "is_new_format", pred.IsNewFormat, "confidence", pred.Confidence)
	return &dtrpb.ParseResponse{Prediction: utils.ToPBPrediction(pred)}, nil
}

func (s *DtrService) ParseDocument(ctx context.Context, req *dtrpb.ParseDocumentRequest) (*dtrpb.ParseResponse, error) {
	if len(req.GetImage()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "image is required")
	}
	companyID, err := utils.ParseOptionalUUID(req.GetCompanyId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	pred, err := s.processor.ProcessImage(ctx, req.GetImage(), companyID)
	if err != nil {
		s.logger.Error("parse document failed", "error", err)
		return nil, status.Errorf(codes.Internal, "parse document: %v", err)
	}
	s.logger.Info("document parsed",
		"image_bytes", len(req.GetImage()), "needs_review", pred.NeedsReview, "confidence", pred.Confidence)
	return &dtrpb.ParseResponse{Prediction: utils.ToPBPrediction(pred)}, nil
}

func (s *DtrService) ExportAttendance(ctx context.Context, req *dtrpb.ExportAttendanceRequest) (*dtrpb.ExportAttendanceResponse, error) {
	if len(req.GetRawTexts()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "raw_texts is required")
	}
	companyID, err := utils.ParseOptionalUUID(req.GetCompanyId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	preds := make([]*entity.Prediction, 0, len(req.GetRawTexts()))
	var needsReview int32
	for _, txt := range req.GetRawTexts() {
		if strings.TrimSpace(txt) == "" {
			continue
		}
		pred, err := s.processor.ProcessText(ctx, txt, companyID)
		if err != nil {
			s.logger.Error("export parse failed", "error", err)
			return nil, status.Errorf(codes.Internal, "parse text: %v", err)
		}
		if pred.NeedsReview {
			needsReview++
		}
		preds = append(preds, pred)
	}

	xlsx, err := s.export.AttendanceXLSX(preds)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	s.logger.Info("attendance exported", "rows", len(preds), "needs_review", needsReview)
	return &dtrpb.ExportAttendanceResponse{Xlsx: xlsx, NeedsReviewCount: needsReview}, nil
}
