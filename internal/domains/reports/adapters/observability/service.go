package observability

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/shop-admin/internal/domains/reports/domain"
	"github.com/Apurer/shop-admin/internal/domains/reports/ports"
)

const tracerName = "github.com/Apurer/shop-admin/internal/domains/reports/adapters/observability/service"

// Service decorates report generation with a span, a duration histogram, and logs.
type Service struct {
	inner     ports.Service
	tracer    trace.Tracer
	logger    *slog.Logger
	generated metric.Int64Counter
	failed    metric.Int64Counter
	duration  metric.Float64Histogram
	now       func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m == nil {
			return
		}
		s.generated, _ = m.Int64Counter("reports.service.generated", metric.WithDescription("Number of reports generated"))
		s.failed, _ = m.Int64Counter("reports.service.failed", metric.WithDescription("Number of failed report requests"))
		s.duration, _ = m.Float64Histogram("reports.service.duration", metric.WithUnit("s"), metric.WithDescription("Report generation latency"))
	}
}

func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{inner: inner, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) Generate(ctx context.Context, rawType string, from, to time.Time) (*domain.Report, error) {
	ctx, span := s.tracer.Start(ctx, "ReportService.Generate", trace.WithAttributes(
		attribute.String("report.type", rawType),
		attribute.String("report.from", from.Format(time.DateOnly)),
		attribute.String("report.to", to.Format(time.DateOnly)),
	))
	defer span.End()

	started := s.now()
	report, err := s.inner.Generate(ctx, rawType, from, to)
	typeAttr := metric.WithAttributes(attribute.String("report.type", rawType))
	if s.duration != nil {
		s.duration.Record(ctx, s.now().Sub(started).Seconds(), typeAttr)
	}
	if err != nil {
		if s.failed != nil {
			s.failed.Add(ctx, 1, typeAttr)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to generate report",
			slog.String("type", rawType), slog.String("error", err.Error()))
		return nil, err
	}
	if s.generated != nil {
		s.generated.Add(ctx, 1, typeAttr)
	}
	span.SetAttributes(attribute.Int("report.rows", len(report.Rows)))
	s.logger.LogAttrs(ctx, slog.LevelInfo, "report generated",
		slog.String("type", string(report.Type)), slog.Int("rows", len(report.Rows)))
	return report, nil
}

var _ ports.Service = (*Service)(nil)
