package usecase

import (
	"context"
	"net/http"

	repo "bengkel/internal/repository"
)

type ReportUsecase struct {
	reports repo.ReportRepository
}

func NewReportUsecase(reports repo.ReportRepository) *ReportUsecase {
	return &ReportUsecase{reports: reports}
}

func (u *ReportUsecase) Summary(ctx context.Context, f repo.ReportFilter) (repo.ReportSummary, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return repo.ReportSummary{}, NewHTTPError(http.StatusBadRequest, "to must not be before from")
	}

	out, err := u.reports.Summary(ctx, f)
	if err != nil {
		return repo.ReportSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}
