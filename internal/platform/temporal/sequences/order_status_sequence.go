package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	orderports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/shop-admin/internal/platform/temporal/activities/orders"
)

// RunOrderStatusSequence executes the status change activity exactly once.
// A failed CMS write surfaces to the operator instead of being retried.
func RunOrderStatusSequence(ctx workflow.Context, cmd orderports.ChangeStatusCommand) (*domain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order status sequence started", "orderId", cmd.OrderID, "status", string(cmd.Status))
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}

	var order domain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options), orderactivities.ChangeOrderStatusActivityName, cmd).Get(ctx, &order)
	if err != nil {
		logger.Error("order status sequence failed", "orderId", cmd.OrderID, "error", err)
		return nil, err
	}
	logger.Info("order status sequence completed", "orderId", order.ID, "status", string(order.Status))
	return &order, nil
}
