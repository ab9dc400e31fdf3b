package repository

import (
	"context"

	"chainmart/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByIssue(ctx context.Context, issue string) (*entity.Report, error)
	List(ctx context.Context) ([]*entity.Report, error)
}
