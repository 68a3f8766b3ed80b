package ports

import (
	"context"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
)

// AuditLog stores the trail of admin mutations.
type AuditLog interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
	ListByOrder(ctx context.Context, orderID int64) ([]domain.AuditEntry, error)
}

// EventPublisher announces completed mutations to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
