package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
	"github.com/Apurer/shop-admin/internal/domains/banners/ports"
)

type stubService struct {
	ports.Service
	deleteErr error
}

func (s *stubService) Delete(context.Context, int64) error { return s.deleteErr }

func (s *stubService) Publish(_ context.Context, id int64) (*domain.BannerCollection, error) {
	return &domain.BannerCollection{ID: id, Published: true}, nil
}

func newDecorated(t *testing.T, inner ports.Service) (ports.Service, *tracetest.SpanRecorder, *sdkmetric.ManualReader, *bytes.Buffer) {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	reader := sdkmetric.NewManualReader()
	logs := &bytes.Buffer{}
	svc := New(inner,
		WithTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)).Tracer("test")),
		WithMeter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")),
		WithLogger(slog.New(slog.NewJSONHandler(logs, nil))),
	)
	return svc, spans, reader, logs
}

func counterTotal(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestDelete_FailureIsRecorded(t *testing.T) {
	svc, spans, reader, logs := newDecorated(t, &stubService{deleteErr: errors.New("cms unavailable")})

	err := svc.Delete(context.Background(), 7)
	require.Error(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "BannerService.Delete", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.EqualValues(t, 1, counterTotal(t, reader, "banners.service.mutation_failed"))
	assert.Contains(t, logs.String(), "failed to delete banner collection")
}

func TestPublish_CountsMutation(t *testing.T) {
	svc, spans, reader, logs := newDecorated(t, &stubService{})

	collection, err := svc.Publish(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, collection.Published)

	require.Len(t, spans.Ended(), 1)
	assert.EqualValues(t, 1, counterTotal(t, reader, "banners.service.mutations"))
	assert.Zero(t, counterTotal(t, reader, "banners.service.mutation_failed"))
	assert.Contains(t, logs.String(), "banner collection published")
}
