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

	"github.com/Apurer/shop-admin/internal/domains/users/domain"
	"github.com/Apurer/shop-admin/internal/domains/users/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const tracerName = "github.com/Apurer/shop-admin/internal/domains/users/adapters/observability/service"

// Service decorates the customers port with tracing, logging, and metrics.
// Personal data (email, document, phone) is never put on spans or logs.
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

func (s *Service) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.User], error) {
	ctx, span := s.tracer.Start(ctx, "UserService.List", trace.WithAttributes(
		attribute.Int("users.page", q.Page),
		attribute.Bool("users.search", q.Search != ""),
	))
	defer span.End()

	page, err := s.inner.List(ctx, q)
	if err != nil {
		s.metrics.recordFetchFailed(ctx)
		return page, s.handleError(ctx, span, err, "failed to list users", slog.Int("page", q.Page))
	}
	span.SetAttributes(attribute.Int("users.result.total", page.Meta.Total))
	return page, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Get", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()

	user, err := s.inner.Get(ctx, id)
	if err != nil {
		s.metrics.recordFetchFailed(ctx)
		return nil, s.handleError(ctx, span, err, "failed to load user", slog.Int64("user.id", id))
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, id int64, form ports.UserForm) (*domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Update", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()

	user, err := s.inner.Update(ctx, id, form)
	if err != nil {
		s.metrics.recordMutationFailed(ctx, "update")
		return nil, s.handleError(ctx, span, err, "failed to update user", slog.Int64("user.id", id))
	}
	s.metrics.recordMutation(ctx, "update")
	s.logInfo(ctx, "user updated", slog.Int64("user.id", id))
	return user, nil
}

func (s *Service) Block(ctx context.Context, id int64) (*domain.User, error) {
	return s.setBlocked(ctx, id, "block", s.inner.Block)
}

func (s *Service) Unblock(ctx context.Context, id int64) (*domain.User, error) {
	return s.setBlocked(ctx, id, "unblock", s.inner.Unblock)
}

func (s *Service) setBlocked(ctx context.Context, id int64, op string, fn func(context.Context, int64) (*domain.User, error)) (*domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService."+op, trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()

	user, err := fn(ctx, id)
	if err != nil {
		s.metrics.recordMutationFailed(ctx, op)
		return nil, s.handleError(ctx, span, err, "failed to "+op+" user", slog.Int64("user.id", id))
	}
	s.metrics.recordMutation(ctx, op)
	s.logInfo(ctx, "user blocked state changed", slog.Int64("user.id", id), slog.Bool("blocked", user.Blocked))
	return user, nil
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
	mutations, _ := m.Int64Counter("users.service.mutations", metric.WithDescription("Number of customer writes"))
	mutationFailed, _ := m.Int64Counter("users.service.mutation_failed", metric.WithDescription("Number of failed customer writes"))
	fetchFailed, _ := m.Int64Counter("users.service.fetch_failed", metric.WithDescription("Number of failed customer reads"))
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
