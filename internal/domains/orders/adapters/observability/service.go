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

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const tracerName = "github.com/Apurer/shop-admin/internal/domains/orders/adapters/observability/service"

// Service decorates the orders port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
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

func (s *Service) List(ctx context.Context, q domain.ListQuery) (pagination.Page[*domain.Order], error) {
	ctx, span := s.startSpan(ctx, "Service.List",
		attribute.Int("orders.page", q.Page),
		attribute.Int("orders.page_size", q.PageSize),
		attribute.String("orders.status_tab", string(q.StatusTab)),
		attribute.Bool("orders.search", q.Search != ""),
	)
	defer span.End()

	page, err := s.inner.List(ctx, q)
	if err != nil {
		s.metrics.recordFetchFailed(ctx)
		return page, s.handleError(ctx, span, err, "failed to list orders", slog.Int("page", q.Page))
	}
	span.SetAttributes(attribute.Int("orders.result.count", len(page.Items)), attribute.Int("orders.result.total", page.Meta.Total))
	s.logInfo(ctx, "listed orders", slog.Int("page", q.Page), slog.Int("count", len(page.Items)), slog.Int("total", page.Meta.Total))
	return page, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.Get", attribute.Int64("order.id", id))
	defer span.End()

	order, err := s.inner.Get(ctx, id)
	if err != nil {
		s.metrics.recordFetchFailed(ctx)
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return order, nil
}

func (s *Service) ChangeStatus(ctx context.Context, cmd ports.ChangeStatusCommand) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.ChangeStatus",
		attribute.Int64("order.id", cmd.OrderID),
		attribute.String("order.status.requested", string(cmd.Status)),
	)
	defer span.End()

	s.logInfo(ctx, "changing order status", slog.Int64("order.id", cmd.OrderID), slog.String("status", string(cmd.Status)), slog.String("actor", cmd.Actor))
	order, err := s.inner.ChangeStatus(ctx, cmd)
	if err != nil {
		s.metrics.recordMutationFailed(ctx, "change_status")
		return nil, s.handleError(ctx, span, err, "failed to change order status", slog.Int64("order.id", cmd.OrderID))
	}
	s.metrics.recordStatusChanged(ctx, cmd.Status)
	s.logInfo(ctx, "order status changed", slog.Int64("order.id", cmd.OrderID), slog.String("status", string(order.Status)))
	return order, nil
}

func (s *Service) Delete(ctx context.Context, cmd ports.DeleteCommand) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.Int64("order.id", cmd.OrderID))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int64("order.id", cmd.OrderID), slog.String("actor", cmd.Actor))
	if err := s.inner.Delete(ctx, cmd); err != nil {
		s.metrics.recordMutationFailed(ctx, "delete")
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", cmd.OrderID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", cmd.OrderID))
	return nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	statusChanged  metric.Int64Counter
	deleted        metric.Int64Counter
	mutationFailed metric.Int64Counter
	fetchFailed    metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	statusChanged, _ := m.Int64Counter("orders.service.status_changed", metric.WithDescription("Number of order status changes"))
	deleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	mutationFailed, _ := m.Int64Counter("orders.service.mutation_failed", metric.WithDescription("Number of failed order mutations"))
	fetchFailed, _ := m.Int64Counter("orders.service.fetch_failed", metric.WithDescription("Number of failed order reads"))
	return serviceMetrics{
		statusChanged:  statusChanged,
		deleted:        deleted,
		mutationFailed: mutationFailed,
		fetchFailed:    fetchFailed,
	}
}

func (m serviceMetrics) recordStatusChanged(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.statusChanged, 1, attribute.String("order.status", string(status)))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.deleted, 1)
}

func (m serviceMetrics) recordMutationFailed(ctx context.Context, op string) {
	addCounter(ctx, m.mutationFailed, 1, attribute.String("operation", op))
}

func (m serviceMetrics) recordFetchFailed(ctx context.Context) {
	addCounter(ctx, m.fetchFailed, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
