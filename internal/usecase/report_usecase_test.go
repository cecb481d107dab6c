package usecase_test

import (
	"context"
	"testing"
	"time"

	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"
	"bengkel/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportSummary_PassesFilterThrough(t *testing.T) {
	reports := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(reports)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	f := repo.ReportFilter{From: &from, To: &to}

	want := repo.ReportSummary{
		OrderCounts: map[string]int64{
			string(model.OrderStatusSelesai):  4,
			string(model.OrderStatusDiproses): 2,
		},
		PendingReservations: 1,
		Revenue:             350000,
		Profit:              120000,
	}
	reports.On("Summary", mock.Anything, f).Return(want, nil)

	out, err := uc.Summary(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, want, out)
	reports.AssertExpectations(t)
}

func TestReportSummary_RejectsInvertedRange(t *testing.T) {
	reports := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(reports)

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, -1, 0)

	_, err := uc.Summary(context.Background(), repo.ReportFilter{From: &from, To: &to})
	assertErrContains(t, err, "to must not be before from")
	reports.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything)
}
