package domain

import "time"

// AuditAction names an admin mutation on an order.
type AuditAction string

const (
	AuditStatusChanged AuditAction = "status_changed"
	AuditDeleted       AuditAction = "deleted"
)

// AuditEntry records who changed an order and how.
type AuditEntry struct {
	ID         string
	OrderID    int64
	OrderCode  string
	Action     AuditAction
	FromStatus Status
	ToStatus   Status
	Actor      string
	Fields     []string
	OccurredAt time.Time
}

// Event is published after a successful mutation.
type Event struct {
	ID         string      `json:"id"`
	Type       AuditAction `json:"type"`
	OrderID    int64       `json:"orderId"`
	OrderCode  string      `json:"orderCode"`
	FromStatus Status      `json:"fromStatus,omitempty"`
	ToStatus   Status      `json:"toStatus,omitempty"`
	Actor      string      `json:"actor,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// EventFromAudit mirrors an audit entry as an outbound event.
func EventFromAudit(e AuditEntry) Event {
	return Event{
		ID:         e.ID,
		Type:       e.Action,
		OrderID:    e.OrderID,
		OrderCode:  e.OrderCode,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Actor:      e.Actor,
		OccurredAt: e.OccurredAt,
	}
}
