package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema owned by the admin service. Everything else lives in the CMS.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&sessionRecord{},
		&orderAuditRecord{},
	)
}

// Session schema mirrors the auth session store.
type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:64"`
	UserID    int64     `gorm:"column:user_id;index"`
	Username  string    `gorm:"column:username"`
	Email     string    `gorm:"column:email"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (sessionRecord) TableName() string { return "admin_sessions" }

// Audit schema mirrors the orders audit log.
type orderAuditRecord struct {
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

func (orderAuditRecord) TableName() string { return "order_audit_entries" }
