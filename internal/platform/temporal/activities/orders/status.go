package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	orderports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
)

const (
	// ChangeOrderStatusActivityName writes the new status to the CMS.
	ChangeOrderStatusActivityName = "orders.activities.ChangeStatus"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service orderports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
// The service must not itself route status changes back through Temporal.
func NewActivities(service orderports.Service) *Activities {
	return &Activities{service: service}
}

// ChangeOrderStatus applies a status change and returns the reloaded order.
func (a *Activities) ChangeOrderStatus(ctx context.Context, cmd orderports.ChangeStatusCommand) (*domain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order status activity not initialized", "orderId", cmd.OrderID)
		return nil, errors.New("order status activity not initialized")
	}
	logger.Info("ChangeOrderStatus activity started", "orderId", cmd.OrderID, "status", string(cmd.Status))
	order, err := a.service.ChangeStatus(ctx, cmd)
	if err != nil {
		logger.Error("ChangeOrderStatus activity failed", "orderId", cmd.OrderID, "error", err)
		return nil, err
	}
	logger.Info("ChangeOrderStatus activity completed", "orderId", cmd.OrderID)
	return order, nil
}
