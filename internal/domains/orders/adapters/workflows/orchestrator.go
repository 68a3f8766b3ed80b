package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/shop-admin/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.StatusChangeOrchestrator = (*TemporalOrderWorkflows)(nil)
	_ ports.StatusChangeOrchestrator = (*InlineOrderWorkflows)(nil)
)

// TemporalOrderWorkflows starts order workflows on a Temporal cluster.
type TemporalOrderWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalOrderWorkflows wires a Temporal client into the orchestrator.
func NewTemporalOrderWorkflows(c client.Client) *TemporalOrderWorkflows {
	return &TemporalOrderWorkflows{client: c, taskQueue: orderworkflows.StatusChangeTaskQueue}
}

// ChangeStatus runs the status change workflow and waits for its result.
func (o *TemporalOrderWorkflows) ChangeStatus(ctx context.Context, cmd ports.ChangeStatusCommand) (*domain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        buildStatusChangeWorkflowID(cmd, traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.StatusChangeWorkflow,
		orderworkflows.StatusChangeWorkflowInput{Command: cmd, TraceID: traceComponent},
	)
	if err != nil {
		// A retried request within the same trace joins the run already in flight.
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, options.ID, alreadyStarted.RunId)
	}
	var order domain.Order
	if err := run.Get(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// InlineOrderWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineOrderWorkflows struct {
	service ports.Service
}

// NewInlineOrderWorkflows wraps the orders service for synchronous execution.
func NewInlineOrderWorkflows(service ports.Service) *InlineOrderWorkflows {
	return &InlineOrderWorkflows{service: service}
}

// ChangeStatus delegates to the application service without durable orchestration.
func (o *InlineOrderWorkflows) ChangeStatus(ctx context.Context, cmd ports.ChangeStatusCommand) (*domain.Order, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline order workflows not configured")
	}
	return o.service.ChangeStatus(ctx, cmd)
}

// IDs are unique per order, target status and request trace.
func buildStatusChangeWorkflowID(cmd ports.ChangeStatusCommand, traceComponent string) string {
	return fmt.Sprintf("order-status-%d-%s-%s", cmd.OrderID, cmd.Status, traceComponent)
}

func workflowTraceComponent(ctx context.Context) string {
	traceComponent := workflowTraceID(ctx)
	if traceComponent != "" {
		return traceComponent
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
