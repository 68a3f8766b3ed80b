package mapper

import (
	"time"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
)

type AuditEntryView struct {
	ID         string      `json:"id"`
	Action     string      `json:"action"`
	FromStatus *StatusView `json:"fromStatus,omitempty"`
	ToStatus   *StatusView `json:"toStatus,omitempty"`
	Actor      string      `json:"actor"`
	Fields     []string    `json:"fields"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// ToHistory maps an order's audit trail, oldest first.
func ToHistory(entries []domain.AuditEntry) []AuditEntryView {
	out := make([]AuditEntryView, 0, len(entries))
	for _, e := range entries {
		v := AuditEntryView{
			ID:         e.ID,
			Action:     string(e.Action),
			Actor:      e.Actor,
			Fields:     e.Fields,
			OccurredAt: e.OccurredAt,
		}
		if v.Fields == nil {
			v.Fields = []string{}
		}
		if e.FromStatus != "" {
			s := StatusOf(e.FromStatus)
			v.FromStatus = &s
		}
		if e.ToStatus != "" {
			s := StatusOf(e.ToStatus)
			v.ToStatus = &s
		}
		out = append(out, v)
	}
	return out
}
