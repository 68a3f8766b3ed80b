package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Apurer/shop-admin/internal/app/api"
	authpostgres "github.com/Apurer/shop-admin/internal/domains/auth/adapters/persistence/postgres"
	platformpostgres "github.com/Apurer/shop-admin/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, cleanup := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge sessions")
	}

	purged, err := authpostgres.NewSessionStore(db).PurgeExpired(ctx)
	if err != nil {
		log.Fatalf("failed to purge sessions: %v", err)
	}
	logger.Info("session purge completed", slog.Int64("purged", purged))
}
