package usecase

import (
	"context"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
	"chainmart/pkg/metrics"
)

type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

type FileReportInput struct {
	Name  string
	Email string
	Issue string
}

// FileReport records a problem report, de-duplicated by exact issue
// text.
func (uc *ReportUseCase) FileReport(ctx context.Context, input FileReportInput) (*entity.Report, error) {
	if _, err := uc.reportRepo.GetByIssue(ctx, input.Issue); err == nil {
		return nil, errors.Conflict("this problem has already been reported")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	report := &entity.Report{
		Name:  input.Name,
		Email: input.Email,
		Issue: input.Issue,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	metrics.ReportsFiledTotal.Inc()
	return report, nil
}

func (uc *ReportUseCase) ListReports(ctx context.Context) ([]*entity.Report, error) {
	return uc.reportRepo.List(ctx)
}
