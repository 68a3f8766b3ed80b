package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_CountersReachPrometheusRegistry(t *testing.T) {
	ctx := context.Background()
	registry := prometheus.NewRegistry()
	instruments, shutdown, err := Init(ctx, Options{
		ServiceName:  "shop-admin-test",
		Environment:  "test",
		LogOutput:    &bytes.Buffer{},
		Registerer:   registry,
		SpanExporter: tracetest.NewInMemoryExporter(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	counter, err := instruments.Meter("test").Int64Counter("shop_admin.test.events")
	require.NoError(t, err)
	counter.Add(ctx, 2)

	families, err := registry.Gather()
	require.NoError(t, err)
	var value float64
	found := false
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "shop_admin_test_events") {
			continue
		}
		found = true
		for _, m := range family.GetMetric() {
			value += m.GetCounter().GetValue()
		}
	}
	require.True(t, found, "counter not exported")
	assert.Equal(t, float64(2), value)
}

func TestInit_LogLevel(t *testing.T) {
	logs := &bytes.Buffer{}
	instruments, shutdown, err := Init(context.Background(), Options{
		ServiceName:  "shop-admin-test",
		LogLevel:     slog.LevelWarn,
		LogOutput:    logs,
		SpanExporter: tracetest.NewInMemoryExporter(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	instruments.Logger.Info("hidden")
	instruments.Logger.Warn("shown")
	assert.NotContains(t, logs.String(), "hidden")
	assert.Contains(t, logs.String(), "shown")
}
