package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/shop-admin/internal/domains/users/domain"
	"github.com/Apurer/shop-admin/internal/domains/users/ports"
)

type blockingService struct {
	ports.Service
}

func (blockingService) Block(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id, Email: "ana@example.com", Blocked: true}, nil
}

func TestBlock_LogsWithoutPersonalData(t *testing.T) {
	spans := tracetest.NewSpanRecorder()
	logs := &bytes.Buffer{}
	svc := New(blockingService{},
		WithTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)).Tracer("test")),
		WithLogger(slog.New(slog.NewJSONHandler(logs, nil))),
	)

	user, err := svc.Block(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, user.Blocked)

	require.Len(t, spans.Ended(), 1)
	assert.Equal(t, "UserService.block", spans.Ended()[0].Name())
	assert.Contains(t, logs.String(), `"blocked":true`)
	assert.NotContains(t, logs.String(), "ana@example.com")
}
