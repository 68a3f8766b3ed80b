package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	authcms "github.com/Apurer/shop-admin/internal/domains/auth/adapters/cms"
	authobs "github.com/Apurer/shop-admin/internal/domains/auth/adapters/observability"
	authapp "github.com/Apurer/shop-admin/internal/domains/auth/application"
	bannercms "github.com/Apurer/shop-admin/internal/domains/banners/adapters/cms"
	bannerobs "github.com/Apurer/shop-admin/internal/domains/banners/adapters/observability"
	bannersapp "github.com/Apurer/shop-admin/internal/domains/banners/application"
	couponcms "github.com/Apurer/shop-admin/internal/domains/coupons/adapters/cms"
	couponobs "github.com/Apurer/shop-admin/internal/domains/coupons/adapters/observability"
	couponsapp "github.com/Apurer/shop-admin/internal/domains/coupons/application"
	orderworkflows "github.com/Apurer/shop-admin/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Apurer/shop-admin/internal/domains/orders/application"
	orderports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
	productcms "github.com/Apurer/shop-admin/internal/domains/products/adapters/cms"
	productobs "github.com/Apurer/shop-admin/internal/domains/products/adapters/observability"
	productsapp "github.com/Apurer/shop-admin/internal/domains/products/application"
	reportcms "github.com/Apurer/shop-admin/internal/domains/reports/adapters/cms"
	reportobs "github.com/Apurer/shop-admin/internal/domains/reports/adapters/observability"
	reportsapp "github.com/Apurer/shop-admin/internal/domains/reports/application"
	usercms "github.com/Apurer/shop-admin/internal/domains/users/adapters/cms"
	userobs "github.com/Apurer/shop-admin/internal/domains/users/adapters/observability"
	usersapp "github.com/Apurer/shop-admin/internal/domains/users/application"
	platformobservability "github.com/Apurer/shop-admin/internal/platform/observability"
	platformpostgres "github.com/Apurer/shop-admin/internal/platform/postgres"
	adminserver "github.com/Apurer/shop-admin/server"
)

const (
	serviceName     = "shop-admin-api"
	shutdownTimeout = 5 * time.Second
)

// Run boots the admin HTTP API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Options{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		LogLevel:    cfg.SlogLevel(),
		Registerer:  registry,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := shutdownContext()
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cms, err := NewCMSClient(cfg, registry)
	if err != nil {
		return fmt.Errorf("failed to configure cms client: %w", err)
	}

	db, cleanupDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()

	orderDeps := BuildOrderServiceDeps(cfg, db, logger)
	defer orderDeps.Close()
	orderService := NewOrderService(cms, orderDeps, instruments)

	var statuses orderports.StatusChangeOrchestrator = orderworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := ConnectTemporal(cfg, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, running status changes inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		statuses = orderworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	listings := ordersapp.NewListingRegistry(
		orderService,
		ordersapp.WithSearchDebounce(cfg.SearchDebounce),
		ordersapp.WithPageSize(cfg.DefaultPageSize),
		ordersapp.WithStatusChanger(statuses),
	)
	defer listings.Close()

	coreAuth := authapp.NewService(
		authcms.NewAuthenticator(cms),
		NewSessionStore(db),
		authapp.WithSessionTTL(cfg.SessionTTL()),
	)
	if cfg.SessionPurgeInterval > 0 {
		go purgeSessions(ctx, coreAuth, cfg.SessionPurgeInterval, logger)
	}
	authService := authobs.New(
		coreAuth,
		authobs.WithLogger(logger),
		authobs.WithTracer(instruments.Tracer("internal.auth.application")),
		authobs.WithMeter(instruments.Meter("internal.auth.application")),
	)

	handlers := adminserver.Handlers{
		Auth:   adminserver.NewAuthAPI(authService, listings),
		Orders: adminserver.NewOrdersAPI(orderService, statuses, orderDeps.Audit, listings, cfg.DefaultPageSize),
		Banners: adminserver.NewBannersAPI(bannerobs.New(
			bannersapp.NewService(bannercms.NewRepository(cms)),
			bannerobs.WithLogger(logger),
			bannerobs.WithTracer(instruments.Tracer("internal.banners.application")),
			bannerobs.WithMeter(instruments.Meter("internal.banners.application")),
		)),
		Products: adminserver.NewProductsAPI(productobs.New(
			productsapp.NewService(productcms.NewRepository(cms)),
			productobs.WithLogger(logger),
			productobs.WithTracer(instruments.Tracer("internal.products.application")),
			productobs.WithMeter(instruments.Meter("internal.products.application")),
		)),
		Coupons: adminserver.NewCouponsAPI(couponobs.New(
			couponsapp.NewService(couponcms.NewRepository(cms)),
			couponobs.WithLogger(logger),
			couponobs.WithTracer(instruments.Tracer("internal.coupons.application")),
			couponobs.WithMeter(instruments.Meter("internal.coupons.application")),
		)),
		Users: adminserver.NewUsersAPI(userobs.New(
			usersapp.NewService(usercms.NewRepository(cms)),
			userobs.WithLogger(logger),
			userobs.WithTracer(instruments.Tracer("internal.users.application")),
			userobs.WithMeter(instruments.Meter("internal.users.application")),
		)),
		Reports: adminserver.NewReportsAPI(reportobs.New(
			reportsapp.NewService(reportcms.NewSource(cms)),
			reportobs.WithLogger(logger),
			reportobs.WithTracer(instruments.Tracer("internal.reports.application")),
			reportobs.WithMeter(instruments.Meter("internal.reports.application")),
		)),
	}
	router := adminserver.NewRouter(handlers, authService, adminserver.RouterOptions{
		ServiceName: serviceName,
		Gatherer:    registry,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("admin API listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("admin API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := shutdownContext()
		defer cancel()
		logger.Info("shutting down admin API")
		return srv.Shutdown(shutdownCtx)
	}
}

// purgeSessions drops expired sessions until ctx is done.
func purgeSessions(ctx context.Context, auth *authapp.Service, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := auth.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("session purge failed", slog.String("error", err.Error()))
				continue
			}
			if purged > 0 {
				logger.Info("expired sessions purged", slog.Int64("purged", purged))
			}
		}
	}
}
