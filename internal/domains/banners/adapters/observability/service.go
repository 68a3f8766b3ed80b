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

	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
	"github.com/Apurer/shop-admin/internal/domains/banners/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const tracerName = "github.com/Apurer/shop-admin/internal/domains/banners/adapters/observability/service"

// Service decorates the banner collection port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wires a decorator around the core service.
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

func (s *Service) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.BannerCollection], error) {
	ctx, span := s.tracer.Start(ctx, "BannerService.List", trace.WithAttributes(
		attribute.Int("banners.page", q.Page),
		attribute.Bool("banners.search", q.Search != ""),
	))
	defer span.End()

	page, err := s.inner.List(ctx, q)
	if err != nil {
		s.metrics.recordFetchFailed(ctx)
		return page, s.handleError(ctx, span, err, "failed to list banner collections", slog.Int("page", q.Page))
	}
	span.SetAttributes(attribute.Int("banners.result.total", page.Meta.Total))
	return page, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.BannerCollection, error) {
	ctx, span := s.tracer.Start(ctx, "BannerService.Get", trace.WithAttributes(attribute.Int64("banner_collection.id", id)))
	defer span.End()

	collection, err := s.inner.Get(ctx, id)
	if err != nil {
		s.metrics.recordFetchFailed(ctx)
		return nil, s.handleError(ctx, span, err, "failed to load banner collection", slog.Int64("banner_collection.id", id))
	}
	return collection, nil
}

func (s *Service) Create(ctx context.Context, form ports.BannerForm) (*domain.BannerCollection, error) {
	ctx, span := s.tracer.Start(ctx, "BannerService.Create", trace.WithAttributes(
		attribute.String("banner_collection.slug", form.Slug),
		attribute.Int("banner_collection.banners", len(form.Banners)),
	))
	defer span.End()

	collection, err := s.inner.Create(ctx, form)
	if err != nil {
		s.metrics.recordMutationFailed(ctx, "create")
		return nil, s.handleError(ctx, span, err, "failed to create banner collection", slog.String("slug", form.Slug))
	}
	s.metrics.recordMutation(ctx, "create")
	s.logInfo(ctx, "banner collection created", slog.Int64("banner_collection.id", collection.ID), slog.String("slug", collection.Slug))
	return collection, nil
}

func (s *Service) Update(ctx context.Context, id int64, form ports.BannerForm) (*domain.BannerCollection, error) {
	ctx, span := s.tracer.Start(ctx, "BannerService.Update", trace.WithAttributes(attribute.Int64("banner_collection.id", id)))
	defer span.End()

	collection, err := s.inner.Update(ctx, id, form)
	if err != nil {
		s.metrics.recordMutationFailed(ctx, "update")
		return nil, s.handleError(ctx, span, err, "failed to update banner collection", slog.Int64("banner_collection.id", id))
	}
	s.metrics.recordMutation(ctx, "update")
	s.logInfo(ctx, "banner collection updated", slog.Int64("banner_collection.id", id))
	return collection, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "BannerService.Delete", trace.WithAttributes(attribute.Int64("banner_collection.id", id)))
	defer span.End()

	if err := s.inner.Delete(ctx, id); err != nil {
		s.metrics.recordMutationFailed(ctx, "delete")
		return s.handleError(ctx, span, err, "failed to delete banner collection", slog.Int64("banner_collection.id", id))
	}
	s.metrics.recordMutation(ctx, "delete")
	s.logInfo(ctx, "banner collection deleted", slog.Int64("banner_collection.id", id))
	return nil
}

func (s *Service) Publish(ctx context.Context, id int64) (*domain.BannerCollection, error) {
	return s.setPublished(ctx, id, "publish", s.inner.Publish)
}

func (s *Service) Unpublish(ctx context.Context, id int64) (*domain.BannerCollection, error) {
	return s.setPublished(ctx, id, "unpublish", s.inner.Unpublish)
}

func (s *Service) setPublished(ctx context.Context, id int64, op string, fn func(context.Context, int64) (*domain.BannerCollection, error)) (*domain.BannerCollection, error) {
	ctx, span := s.tracer.Start(ctx, "BannerService."+op, trace.WithAttributes(attribute.Int64("banner_collection.id", id)))
	defer span.End()

	collection, err := fn(ctx, id)
	if err != nil {
		s.metrics.recordMutationFailed(ctx, op)
		return nil, s.handleError(ctx, span, err, "failed to "+op+" banner collection", slog.Int64("banner_collection.id", id))
	}
	s.metrics.recordMutation(ctx, op)
	s.logInfo(ctx, "banner collection "+op+"ed", slog.Int64("banner_collection.id", id))
	return collection, nil
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
	mutations, _ := m.Int64Counter("banners.service.mutations", metric.WithDescription("Number of banner collection writes"))
	mutationFailed, _ := m.Int64Counter("banners.service.mutation_failed", metric.WithDescription("Number of failed banner collection writes"))
	fetchFailed, _ := m.Int64Counter("banners.service.fetch_failed", metric.WithDescription("Number of failed banner collection reads"))
	return serviceMetrics{mutations: mutations, mutationFailed: mutationFailed, fetchFailed: fetchFailed}
}

func (m serviceMetrics) recordMutation(ctx context.Context, op string) {
	addCounter(ctx, m.mutations, attribute.String("operation", op))
}

func (m serviceMetrics) recordMutationFailed(ctx context.Context, op string) {
	addCounter(ctx, m.mutationFailed, attribute.String("operation", op))
}

func (m serviceMetrics) recordFetchFailed(ctx context.Context) {
	addCounter(ctx, m.fetchFailed)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
