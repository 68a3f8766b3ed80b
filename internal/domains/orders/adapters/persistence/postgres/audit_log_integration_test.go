//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("shop_admin_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		_ = pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func TestAuditLog_RecordAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	log := NewAuditLog(db)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, log.Record(ctx, domain.AuditEntry{
		ID: "00000000-0000-0000-0000-000000000002", OrderID: 7, OrderCode: "PED-7",
		Action: domain.AuditDeleted, FromStatus: domain.StatusCanceled, Actor: "admin", OccurredAt: at.Add(time.Hour),
	}))
	require.NoError(t, log.Record(ctx, domain.AuditEntry{
		ID: "00000000-0000-0000-0000-000000000001", OrderID: 7, OrderCode: "PED-7",
		Action: domain.AuditStatusChanged, FromStatus: domain.StatusPaid, ToStatus: domain.StatusCanceled,
		Actor: "admin", Fields: []string{"status"}, OccurredAt: at,
	}))
	require.NoError(t, log.Record(ctx, domain.AuditEntry{ID: "00000000-0000-0000-0000-000000000003", OrderID: 8, OccurredAt: at}))

	entries, err := log.ListByOrder(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.AuditStatusChanged, entries[0].Action)
	assert.Equal(t, []string{"status"}, entries[0].Fields)
	assert.Equal(t, at, entries[0].OccurredAt)
	assert.Equal(t, domain.AuditDeleted, entries[1].Action)

	require.Error(t, log.Record(ctx, domain.AuditEntry{OrderID: 9}))
}
