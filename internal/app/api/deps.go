package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	authmemory "github.com/Apurer/shop-admin/internal/domains/auth/adapters/memory"
	authpostgres "github.com/Apurer/shop-admin/internal/domains/auth/adapters/persistence/postgres"
	authports "github.com/Apurer/shop-admin/internal/domains/auth/ports"
	ordercms "github.com/Apurer/shop-admin/internal/domains/orders/adapters/cms"
	orderevents "github.com/Apurer/shop-admin/internal/domains/orders/adapters/events"
	ordermemory "github.com/Apurer/shop-admin/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/shop-admin/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/shop-admin/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/Apurer/shop-admin/internal/domains/orders/application"
	orderports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
	platformobservability "github.com/Apurer/shop-admin/internal/platform/observability"
)

// NewCMSClient builds the instrumented CMS client. CMS request metrics are
// registered on reg when it is not nil.
func NewCMSClient(cfg Config, reg prometheus.Registerer) (*cmsclient.Client, error) {
	opts := []cmsclient.Option{
		cmsclient.WithAPIToken(cfg.CMSAPIToken),
		cmsclient.WithHTTPClient(&http.Client{
			Timeout:   cfg.CMSTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	}
	if reg != nil {
		opts = append(opts, cmsclient.WithMetrics(cmsclient.NewMetrics(reg)))
	}
	return cmsclient.NewClient(cfg.CMSBaseURL, opts...)
}

// OrderServiceDeps are the outbound adapters behind the orders service.
type OrderServiceDeps struct {
	Audit  orderports.AuditLog
	Events orderports.EventPublisher
	close  func()
}

// Close releases the event publisher.
func (d OrderServiceDeps) Close() {
	if d.close != nil {
		d.close()
	}
}

// BuildOrderServiceDeps picks the PostgreSQL audit log when db is set and the
// Kafka publisher when brokers are configured, falling back to in-process adapters.
func BuildOrderServiceDeps(cfg Config, db *gorm.DB, logger *slog.Logger) OrderServiceDeps {
	deps := OrderServiceDeps{close: func() {}}
	if db != nil {
		deps.Audit = orderpostgres.NewAuditLog(db)
	} else {
		deps.Audit = ordermemory.NewAuditLog()
	}
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warn("KAFKA_BROKERS not set, order events are dropped")
		deps.Events = orderevents.NoopPublisher{}
		return deps
	}
	publisher, err := orderevents.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic, orderevents.WithLogger(logger))
	if err != nil {
		logger.Warn("kafka publisher unavailable, order events are dropped", slog.String("error", err.Error()))
		deps.Events = orderevents.NoopPublisher{}
		return deps
	}
	logger.Info("order events published to kafka", slog.String("topic", cfg.KafkaOrderTopic))
	deps.Events = publisher
	deps.close = func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close kafka publisher", slog.String("error", err.Error()))
		}
	}
	return deps
}

// NewOrderService wires the CMS-backed orders service inside its observability decorator.
func NewOrderService(cms *cmsclient.Client, deps OrderServiceDeps, instruments *platformobservability.Instruments) orderports.Service {
	core := ordersapp.NewService(
		ordercms.NewRepository(cms),
		ordersapp.WithAuditLog(deps.Audit),
		ordersapp.WithEventPublisher(deps.Events),
		ordersapp.WithLogger(instruments.Logger),
	)
	return orderobs.New(
		core,
		orderobs.WithLogger(instruments.Logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
}

// NewSessionStore prefers PostgreSQL so sessions survive restarts and can be purged.
func NewSessionStore(db *gorm.DB) authports.SessionStore {
	if db != nil {
		return authpostgres.NewSessionStore(db)
	}
	return authmemory.NewSessionStore()
}

// ConnectTemporal dials Temporal with the OpenTelemetry tracing interceptor.
func ConnectTemporal(cfg Config, instruments *platformobservability.Instruments, component string) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer(component),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

// shutdownContext bounds graceful shutdown of servers and telemetry.
func shutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), shutdownTimeout)
}
