package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Instruments bundles the process-wide logger, tracer and meter providers.
type Instruments struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Options configures Init.
type Options struct {
	ServiceName string
	Environment string
	LogLevel    slog.Level
	// LogOutput defaults to stdout.
	LogOutput io.Writer
	// Registerer receives every OTel instrument through the Prometheus exporter.
	// Without one, meters are no-ops.
	Registerer prometheus.Registerer
	// SpanExporter overrides the OTLP exporter chosen from OTEL_EXPORTER_OTLP_* variables.
	SpanExporter sdktrace.SpanExporter
}

// Init configures slog and the OpenTelemetry providers for the process. The
// returned shutdown flushes pending spans and detaches the metric exporter.
func Init(ctx context.Context, opts Options) (*Instruments, func(context.Context) error, error) {
	logger := newLogger(opts.LogOutput, opts.LogLevel)

	environment := strings.TrimSpace(opts.Environment)
	if environment == "" {
		environment = "local"
	}
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithAttributes(
			attribute.String("service.name", opts.ServiceName),
			attribute.String("deployment.environment", environment),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	spanExporter := opts.SpanExporter
	if spanExporter == nil {
		if spanExporter, err = newSpanExporter(ctx, logger); err != nil {
			return nil, nil, err
		}
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(spanExporter),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	instruments := &Instruments{
		Logger:         logger,
		TracerProvider: tracerProvider,
		MeterProvider:  metricnoop.NewMeterProvider(),
	}
	var meterProvider *sdkmetric.MeterProvider
	if opts.Registerer != nil {
		exporter, err := otelprom.New(otelprom.WithRegisterer(opts.Registerer))
		if err != nil {
			_ = tracerProvider.Shutdown(ctx)
			return nil, nil, fmt.Errorf("prometheus metric exporter: %w", err)
		}
		meterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		)
		instruments.MeterProvider = meterProvider
	}
	otel.SetMeterProvider(instruments.MeterProvider)

	shutdown := func(ctx context.Context) error {
		var shutdownErr error
		if meterProvider != nil {
			shutdownErr = errors.Join(shutdownErr, meterProvider.Shutdown(ctx))
		}
		return errors.Join(shutdownErr, tracerProvider.Shutdown(ctx))
	}
	return instruments, shutdown, nil
}

// Tracer returns a named tracer from the configured provider.
func (i *Instruments) Tracer(name string) trace.Tracer {
	if i == nil || i.TracerProvider == nil {
		return otel.Tracer(name)
	}
	return i.TracerProvider.Tracer(name)
}

// Meter returns a named meter from the configured provider.
func (i *Instruments) Meter(name string) metric.Meter {
	if i == nil || i.MeterProvider == nil {
		return metricnoop.NewMeterProvider().Meter(name)
	}
	return i.MeterProvider.Meter(name)
}

func newLogger(out io.Writer, level slog.Level) *slog.Logger {
	if out == nil {
		out = os.Stdout
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level, AddSource: true}))
	slog.SetDefault(logger)
	return logger
}

func newSpanExporter(ctx context.Context, logger *slog.Logger) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{}
	if endpoint := strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")); endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") != "0" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err == nil {
		return exporter, nil
	}
	logger.Warn("OTLP trace exporter unavailable, writing spans to stdout", slog.String("error", err.Error()))
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}
