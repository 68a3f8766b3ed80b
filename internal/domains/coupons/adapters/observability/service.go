package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/shop-admin/internal/domains/coupons/domain"
	"github.com/Apurer/shop-admin/internal/domains/coupons/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const tracerName = "github.com/Apurer/shop-admin/internal/domains/coupons/adapters/observability/service"

// Service decorates the coupons port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core coupons service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.Coupon], error) {
	ctx, span := s.tracer.Start(ctx, "CouponService.List", trace.WithAttributes(attribute.Int("coupons.page", q.Page)))
	defer span.End()

	page, err := s.inner.List(ctx, q)
	if err != nil {
		s.metrics.recordFetchFailed(ctx)
		return page, s.handleError(ctx, span, err, "failed to list coupons", slog.Int("page", q.Page))
	}
	span.SetAttributes(attribute.Int("coupons.result.total", page.Meta.Total))
	return page, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Coupon, error) {
	ctx, span := s.tracer.Start(ctx, "CouponService.Get", trace.WithAttributes(attribute.Int64("coupon.id", id)))
	defer span.End()

	coupon, err := s.inner.Get(ctx, id)
	if err != nil {
		s.metrics.recordFetchFailed(ctx)
		return nil, s.handleError(ctx, span, err, "failed to load coupon", slog.Int64("coupon.id", id))
	}
	return coupon, nil
}

func (s *Service) Create(ctx context.Context, form ports.CouponForm) (*domain.Coupon, error) {
	ctx, span := s.tracer.Start(ctx, "CouponService.Create", trace.WithAttributes(
		attribute.String("coupon.discount_type", string(form.DiscountType)),
	))
	defer span.End()

	coupon, err := s.inner.Create(ctx, form)
	if err != nil {
		s.metrics.recordMutationFailed(ctx, "create")
		return nil, s.handleError(ctx, span, err, "failed to create coupon", slog.String("code", form.Code))
	}
	s.metrics.recordMutation(ctx, "create")
	s.logInfo(ctx, "coupon created", slog.Int64("coupon.id", coupon.ID), slog.String("code", coupon.Code))
	return coupon, nil
}

func (s *Service) Update(ctx context.Context, id int64, form ports.CouponForm) (*domain.Coupon, error) {
	ctx, span := s.tracer.Start(ctx, "CouponService.Update", trace.WithAttributes(attribute.Int64("coupon.id", id)))
	defer span.End()

	coupon, err := s.inner.Update(ctx, id, form)
	if err != nil {
		s.metrics.recordMutationFailed(ctx, "update")
		return nil, s.handleError(ctx, span, err, "failed to update coupon", slog.Int64("coupon.id", id))
	}
	s.metrics.recordMutation(ctx, "update")
	s.logInfo(ctx, "coupon updated", slog.Int64("coupon.id", id), slog.Bool("active", coupon.Active))
	return coupon, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "CouponService.Delete", trace.WithAttributes(attribute.Int64("coupon.id", id)))
	defer span.End()

	if err := s.inner.Delete(ctx, id); err != nil {
		s.metrics.recordMutationFailed(ctx, "delete")
		return s.handleError(ctx, span, err, "failed to delete coupon", slog.Int64("coupon.id", id))
	}
	s.metrics.recordMutation(ctx, "delete")
	s.logInfo(ctx, "coupon deleted", slog.Int64("coupon.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	mutations      metric.Int64Counter
	mutationFailed metric.Int64Counter
	fetchFailed    metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	mutations, _ := m.Int64Counter("coupons.service.mutations", metric.WithDescription("Number of coupon writes"))
	mutationFailed, _ := m.Int64Counter("coupons.service.mutation_failed", metric.WithDescription("Number of failed coupon writes"))
	fetchFailed, _ := m.Int64Counter("coupons.service.fetch_failed", metric.WithDescription("Number of failed coupon reads"))
	return serviceMetrics{mutations: mutations, mutationFailed: mutationFailed, fetchFailed: fetchFailed}
}

func (m serviceMetrics) recordMutation(ctx context.Context, op string) {
	if m.mutations != nil {
		m.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
}

func (m serviceMetrics) recordMutationFailed(ctx context.Context, op string) {
	if m.mutationFailed != nil {
		m.mutationFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
}

func (m serviceMetrics) recordFetchFailed(ctx context.Context) {
	if m.fetchFailed != nil {
		m.fetchFailed.Add(ctx, 1)
	}
}

var _ ports.Service = (*Service)(nil)
