package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/shop-admin/internal/app/api"
	platformobservability "github.com/Apurer/shop-admin/internal/platform/observability"
	platformpostgres "github.com/Apurer/shop-admin/internal/platform/postgres"
	orderactivities "github.com/Apurer/shop-admin/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/shop-admin/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "shop-admin-worker"
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Options{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		LogLevel:    cfg.SlogLevel(),
	})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cms, err := api.NewCMSClient(cfg, nil)
	if err != nil {
		logger.Error("failed to configure cms client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	db, cleanupDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	orderDeps := api.BuildOrderServiceDeps(cfg, db, logger)
	defer orderDeps.Close()
	// The activity talks to the service directly; routing it back through Temporal would loop.
	orderService := api.NewOrderService(cms, orderDeps, instruments)
	activities := orderactivities.NewActivities(orderService)

	temporalClient, err := api.ConnectTemporal(cfg, instruments, "temporal-worker")
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.StatusChangeTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.StatusChangeWorkflow, workflow.RegisterOptions{Name: orderworkflows.StatusChangeWorkflowName})
	w.RegisterActivityWithOptions(activities.ChangeOrderStatus, activity.RegisterOptions{Name: orderactivities.ChangeOrderStatusActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.StatusChangeTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
