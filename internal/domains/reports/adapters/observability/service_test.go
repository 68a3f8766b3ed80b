package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Apurer/shop-admin/internal/domains/reports/domain"
)

type generatorFunc func(ctx context.Context, rawType string, from, to time.Time) (*domain.Report, error)

func (f generatorFunc) Generate(ctx context.Context, rawType string, from, to time.Time) (*domain.Report, error) {
	return f(ctx, rawType, from, to)
}

func TestGenerate_RecordsOutcome(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	reader := sdkmetric.NewManualReader()
	logs := &bytes.Buffer{}

	svc := New(generatorFunc(func(_ context.Context, rawType string, from, to time.Time) (*domain.Report, error) {
		if rawType != "sales" {
			return nil, errors.New("unknown report type")
		}
		return domain.NewReport(domain.ReportType(rawType), from, to, []domain.Row{{Label: "jan", Count: 2}}), nil
	}),
		WithMeter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")),
		WithLogger(slog.New(slog.NewJSONHandler(logs, nil))),
	)

	report, err := svc.Generate(context.Background(), "sales", from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalCount)

	_, err = svc.Generate(context.Background(), "weather", from, to)
	require.Error(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	seen := map[string]bool{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			seen[m.Name] = true
		}
	}
	assert.True(t, seen["reports.service.generated"])
	assert.True(t, seen["reports.service.failed"])
	assert.True(t, seen["reports.service.duration"])
	assert.Contains(t, logs.String(), "report generated")
	assert.Contains(t, logs.String(), "failed to generate report")
}
