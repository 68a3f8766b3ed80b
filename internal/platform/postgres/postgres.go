package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/shop-admin/internal/platform/migrations"
)

// Connect opens a PostgreSQL connection via GORM and verifies connectivity.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// ConnectOptional dials PostgreSQL when dsn is set and migrates the admin tables.
// A missing DSN or a failed connection is logged and yields a nil DB with a no-op
// cleanup, letting callers fall back to in-memory adapters.
func ConnectOptional(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, func()) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory sessions and audit log")
		return nil, func() {}
	}
	db, err := Connect(ctx, dsn)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory adapters", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory adapters", slog.String("error", err.Error()))
		return nil, func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to migrate postgres schema, falling back to in-memory adapters", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}
