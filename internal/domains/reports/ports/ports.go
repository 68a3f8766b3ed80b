package ports

import (
	"context"
	"time"

	"github.com/Apurer/shop-admin/internal/domains/reports/domain"
)

// Source fetches aggregated rows for one report type and period.
type Source interface {
	Rows(ctx context.Context, t domain.ReportType, from, to time.Time) ([]domain.Row, error)
}

type Service interface {
	Generate(ctx context.Context, rawType string, from, to time.Time) (*domain.Report, error)
}
