package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-admin/internal/domains/reports/domain"
)

type fakeSource struct {
	gotType  domain.ReportType
	from, to time.Time
}

func (f *fakeSource) Rows(_ context.Context, t domain.ReportType, from, to time.Time) ([]domain.Row, error) {
	f.gotType, f.from, f.to = t, from, to
	return []domain.Row{{Label: "PAID", Count: 4, Amount: decimal.NewFromInt(100)}}, nil
}

func TestGenerate_DefaultsRange(t *testing.T) {
	now := time.Date(2024, 8, 31, 12, 0, 0, 0, time.UTC)
	src := &fakeSource{}
	svc := NewService(src, WithClock(func() time.Time { return now }))

	r, err := svc.Generate(context.Background(), "orders", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, domain.ReportOrders, src.gotType)
	assert.Equal(t, now, src.to)
	assert.Equal(t, now.Add(-DefaultPeriod), src.from)
	assert.Equal(t, 4, r.TotalCount)
}

func TestGenerate_RejectsUnknownTypeAndBadRange(t *testing.T) {
	svc := NewService(&fakeSource{})
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.Generate(context.Background(), "inventory", day, day)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrUnknownReportType)

	_, err = svc.Generate(context.Background(), "sales", day, day.Add(-time.Hour))
	require.ErrorIs(t, err, ErrInvalidRange)
}
