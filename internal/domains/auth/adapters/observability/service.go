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

	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
	"github.com/Apurer/shop-admin/internal/domains/auth/ports"
)

const tracerName = "github.com/Apurer/shop-admin/internal/domains/auth/adapters/observability/service"

// Service decorates the session gate with tracing, logging, and metrics.
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

// New wraps the core auth service.
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

func (s *Service) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()
	session, err := s.inner.Login(ctx, identifier, password)
	if err != nil {
		s.metrics.recordLoginFailed(ctx)
		return nil, s.handleError(ctx, span, err, "login failed", slog.String("identifier", identifier))
	}
	span.SetAttributes(attribute.Int64("auth.user_id", session.UserID))
	s.metrics.recordLogin(ctx)
	s.logInfo(ctx, "admin logged in", slog.String("username", session.Username), slog.Time("expires_at", session.ExpiresAt))
	return session, nil
}

// Authenticate runs on every admin request and does not log.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Authenticate")
	defer span.End()
	session, err := s.inner.Authenticate(ctx, token)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.metrics.recordRejected(ctx)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("auth.user_id", session.UserID))
	return session, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "AuthService.Logout")
	defer span.End()
	if err := s.inner.Logout(ctx, token); err != nil {
		return s.handleError(ctx, span, err, "logout failed")
	}
	s.metrics.recordLogout(ctx)
	return nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
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

type serviceMetrics struct {
	logins       metric.Int64Counter
	loginsFailed metric.Int64Counter
	logouts      metric.Int64Counter
	rejected     metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	logins, _ := m.Int64Counter("auth.service.logins", metric.WithDescription("Number of successful admin logins"))
	failed, _ := m.Int64Counter("auth.service.logins_failed", metric.WithDescription("Number of rejected admin logins"))
	logouts, _ := m.Int64Counter("auth.service.logouts", metric.WithDescription("Number of admin logouts"))
	rejected, _ := m.Int64Counter("auth.service.rejected", metric.WithDescription("Number of requests with an unknown or expired session"))
	return serviceMetrics{logins: logins, loginsFailed: failed, logouts: logouts, rejected: rejected}
}

func (m serviceMetrics) recordLogin(ctx context.Context) {
	if m.logins != nil {
		m.logins.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordLoginFailed(ctx context.Context) {
	if m.loginsFailed != nil {
		m.loginsFailed.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordLogout(ctx context.Context) {
	if m.logouts != nil {
		m.logouts.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context) {
	if m.rejected != nil {
		m.rejected.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ ports.Service = (*Service)(nil)
