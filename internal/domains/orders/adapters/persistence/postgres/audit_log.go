package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
)

// AuditLog stores order audit entries in PostgreSQL. Caller owns DB lifecycle.
type AuditLog struct {
	db *gorm.DB
}

func NewAuditLog(db *gorm.DB) *AuditLog {
	return &AuditLog{db: db}
}

type auditRecord struct {
	ID         string         `gorm:"primaryKey;column:id;size:36"`
	OrderID    int64          `gorm:"column:order_id;index"`
	OrderCode  string         `gorm:"column:order_code"`
	Action     string         `gorm:"column:action;type:varchar(32)"`
	FromStatus string         `gorm:"column:from_status;type:varchar(32)"`
	ToStatus   string         `gorm:"column:to_status;type:varchar(32)"`
	Actor      string         `gorm:"column:actor"`
	Fields     pq.StringArray `gorm:"column:fields;type:text[]"`
	OccurredAt time.Time      `gorm:"column:occurred_at;index"`
}

func (auditRecord) TableName() string { return "order_audit_entries" }

// Record appends one entry.
func (a *AuditLog) Record(ctx context.Context, entry domain.AuditEntry) error {
	if err := a.ensureDB(); err != nil {
		return err
	}
	if entry.ID == "" {
		return errors.New("audit entry id is required")
	}
	rec := auditRecord{
		ID:         entry.ID,
		OrderID:    entry.OrderID,
		OrderCode:  entry.OrderCode,
		Action:     string(entry.Action),
		FromStatus: string(entry.FromStatus),
		ToStatus:   string(entry.ToStatus),
		Actor:      entry.Actor,
		Fields:     pq.StringArray(entry.Fields),
		OccurredAt: entry.OccurredAt,
	}
	return a.db.WithContext(ctx).Create(&rec).Error
}

// ListByOrder returns the order's entries, oldest first.
func (a *AuditLog) ListByOrder(ctx context.Context, orderID int64) ([]domain.AuditEntry, error) {
	if err := a.ensureDB(); err != nil {
		return nil, err
	}
	var recs []auditRecord
	if err := a.db.WithContext(ctx).Where("order_id = ?", orderID).Order("occurred_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]domain.AuditEntry, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.AuditEntry{
			ID:         r.ID,
			OrderID:    r.OrderID,
			OrderCode:  r.OrderCode,
			Action:     domain.AuditAction(r.Action),
			FromStatus: domain.Status(r.FromStatus),
			ToStatus:   domain.Status(r.ToStatus),
			Actor:      r.Actor,
			Fields:     []string(r.Fields),
			OccurredAt: r.OccurredAt.UTC(),
		})
	}
	return out, nil
}

func (a *AuditLog) ensureDB() error {
	if a == nil || a.db == nil {
		return errors.New("postgres audit log not configured")
	}
	return nil
}

var _ ports.AuditLog = (*AuditLog)(nil)
