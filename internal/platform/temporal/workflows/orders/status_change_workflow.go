package orders

import (
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	orderports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
	"github.com/Apurer/shop-admin/internal/platform/temporal/sequences"
)

const (
	// StatusChangeWorkflowName is the public identifier for registering the workflow.
	StatusChangeWorkflowName = "orders.workflows.StatusChange"
	// StatusChangeTaskQueue is the queue consumed by the worker processing order workflows.
	StatusChangeTaskQueue = "ORDER_STATUS_CHANGE"
)

// StatusChangeWorkflowInput carries the admin command plus the caller's trace id.
type StatusChangeWorkflowInput struct {
	Command orderports.ChangeStatusCommand
	TraceID string
}

// StatusChangeWorkflow moves an order to a new status.
func StatusChangeWorkflow(ctx workflow.Context, input StatusChangeWorkflowInput) (*domain.Order, error) {
	logger := workflow.GetLogger(ctx)
	orderID := input.Command.OrderID
	logger.Info("StatusChangeWorkflow started", withTraceID(input.TraceID, "orderId", orderID)...)
	order, err := sequences.RunOrderStatusSequence(ctx, input.Command)
	if err != nil {
		logger.Error("StatusChangeWorkflow failed", withTraceID(input.TraceID, "orderId", orderID, "error", err)...)
		return nil, err
	}
	logger.Info("StatusChangeWorkflow completed", withTraceID(input.TraceID, "orderId", orderID, "status", string(order.Status))...)
	return order, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
