package service

import (
	"context"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type ReportService struct {
	reports repository.ReportRepository
}

func NewReportService(reports repository.ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

type ReportInput struct {
	ReportedJob      string `json:"reportedJob"`
	ReportedResource string `json:"reportedResource"`
	Category         string `json:"category"`
	Description      string `json:"description"`
}

func (s *ReportService) Submit(ctx context.Context, reporterID string, in ReportInput) (*models.Report, error) {
	if in.Category == "" || in.Description == "" {
		return nil, apperr.BadRequest("Category and description are required")
	}
	if !models.OneOf(in.Category, models.ReportCategories) {
		return nil, apperr.BadRequest("Invalid report category")
	}
	rep := &models.Report{
		Reporter:         reporterID,
		ReportedJob:      in.ReportedJob,
		ReportedResource: in.ReportedResource,
		Category:         in.Category,
		Description:      in.Description,
	}
	if err := s.reports.Insert(ctx, rep); err != nil {
		return nil, apperr.Internal(err)
	}
	return rep, nil
}

func (s *ReportService) All(ctx context.Context) ([]*models.Report, error) {
	out, err := s.reports.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *ReportService) SetStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.ReportPending, models.ReportReviewed, models.ReportResolved:
	default:
		return apperr.BadRequest("Invalid report status")
	}
	if err := s.reports.SetStatus(ctx, id, status); err != nil {
		if isNotFound(err) {
			return apperr.NotFound("Report not found")
		}
		return apperr.Internal(err)
	}
	return nil
}
