package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
)

// AuditLog keeps audit entries in process.
type AuditLog struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (a *AuditLog) Record(_ context.Context, entry domain.AuditEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	entry.Fields = append([]string(nil), entry.Fields...)
	a.entries = append(a.entries, entry)
	return nil
}

func (a *AuditLog) ListByOrder(_ context.Context, orderID int64) ([]domain.AuditEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []domain.AuditEntry
	for _, e := range a.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

var _ ports.AuditLog = (*AuditLog)(nil)
