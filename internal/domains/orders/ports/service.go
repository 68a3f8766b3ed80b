package ports

import (
	"context"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// ChangeStatusCommand moves an order to a new status on behalf of an admin.
type ChangeStatusCommand struct {
	OrderID int64
	Status  domain.Status
	Actor   string
}

// DeleteCommand removes an order on behalf of an admin.
type DeleteCommand struct {
	OrderID int64
	Actor   string
}

// Service defines the orders use cases exposed to adapters (inbound/driving port).
type Service interface {
	List(ctx context.Context, query domain.ListQuery) (pagination.Page[*domain.Order], error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ChangeStatus(ctx context.Context, cmd ChangeStatusCommand) (*domain.Order, error)
	Delete(ctx context.Context, cmd DeleteCommand) error
}

// StatusChangeOrchestrator runs status changes, durably when a workflow engine is available.
type StatusChangeOrchestrator interface {
	ChangeStatus(ctx context.Context, cmd ChangeStatusCommand) (*domain.Order, error)
}
