package adminserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	authports "github.com/Apurer/shop-admin/internal/domains/auth/ports"
)

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Auth     AuthAPI
	Orders   OrdersAPI
	Banners  BannersAPI
	Products ProductsAPI
	Coupons  CouponsAPI
	Users    UsersAPI
	Reports  ReportsAPI
}

// RouterOptions configures the non-API parts of the router.
type RouterOptions struct {
	// ServiceName names the otelgin spans; tracing middleware is skipped when empty.
	ServiceName string
	// Gatherer backs GET /metrics; the endpoint is not mounted when nil.
	Gatherer prometheus.Gatherer
}

// Route is the information for every URI.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a gin engine serving the auth routes and the session-gated admin API.
func NewRouter(h Handlers, sessions authports.Service, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.ServiceName != "" {
		router.Use(otelgin.Middleware(opts.ServiceName))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	router.POST("/auth/login", h.Auth.Login)
	router.POST("/auth/logout", h.Auth.Logout)

	admin := router.Group("/admin", RequireSession(sessions))
	for _, route := range adminRoutes(h) {
		admin.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

func adminRoutes(h Handlers) []Route {
	return []Route{
		{"ListOrders", http.MethodGet, "/orders", h.Orders.ListOrders},
		{"GetListing", http.MethodGet, "/orders/view", h.Orders.GetListing},
		{"PatchListing", http.MethodPatch, "/orders/view", h.Orders.PatchListing},
		{"RequestAction", http.MethodPost, "/orders/view/actions", h.Orders.RequestAction},
		{"ConfirmAction", http.MethodPost, "/orders/view/actions/confirm", h.Orders.ConfirmAction},
		{"CancelAction", http.MethodDelete, "/orders/view/actions", h.Orders.CancelAction},
		{"DismissToast", http.MethodDelete, "/orders/view/toast", h.Orders.DismissToast},
		{"GetOrder", http.MethodGet, "/orders/:id", h.Orders.GetOrder},
		{"GetOrderHistory", http.MethodGet, "/orders/:id/history", h.Orders.GetOrderHistory},
		{"ChangeOrderStatus", http.MethodPut, "/orders/:id/status", h.Orders.ChangeOrderStatus},
		{"DeleteOrder", http.MethodDelete, "/orders/:id", h.Orders.DeleteOrder},

		{"ListBannerCollections", http.MethodGet, "/banners", h.Banners.ListBannerCollections},
		{"CreateBannerCollection", http.MethodPost, "/banners", h.Banners.CreateBannerCollection},
		{"GetBannerCollection", http.MethodGet, "/banners/:id", h.Banners.GetBannerCollection},
		{"UpdateBannerCollection", http.MethodPut, "/banners/:id", h.Banners.UpdateBannerCollection},
		{"DeleteBannerCollection", http.MethodDelete, "/banners/:id", h.Banners.DeleteBannerCollection},
		{"PublishBannerCollection", http.MethodPost, "/banners/:id/publish", h.Banners.PublishBannerCollection},
		{"UnpublishBannerCollection", http.MethodPost, "/banners/:id/unpublish", h.Banners.UnpublishBannerCollection},

		{"ListProducts", http.MethodGet, "/products", h.Products.ListProducts},
		{"CreateProduct", http.MethodPost, "/products", h.Products.CreateProduct},
		{"GetProduct", http.MethodGet, "/products/:id", h.Products.GetProduct},
		{"UpdateProduct", http.MethodPut, "/products/:id", h.Products.UpdateProduct},
		{"DeleteProduct", http.MethodDelete, "/products/:id", h.Products.DeleteProduct},
		{"PublishProduct", http.MethodPost, "/products/:id/publish", h.Products.PublishProduct},
		{"UnpublishProduct", http.MethodPost, "/products/:id/unpublish", h.Products.UnpublishProduct},

		{"ListCoupons", http.MethodGet, "/coupons", h.Coupons.ListCoupons},
		{"CreateCoupon", http.MethodPost, "/coupons", h.Coupons.CreateCoupon},
		{"GetCoupon", http.MethodGet, "/coupons/:id", h.Coupons.GetCoupon},
		{"UpdateCoupon", http.MethodPut, "/coupons/:id", h.Coupons.UpdateCoupon},
		{"DeleteCoupon", http.MethodDelete, "/coupons/:id", h.Coupons.DeleteCoupon},

		{"ListUsers", http.MethodGet, "/users", h.Users.ListUsers},
		{"GetUser", http.MethodGet, "/users/:id", h.Users.GetUser},
		{"UpdateUser", http.MethodPut, "/users/:id", h.Users.UpdateUser},
		{"BlockUser", http.MethodPost, "/users/:id/block", h.Users.BlockUser},
		{"UnblockUser", http.MethodPost, "/users/:id/unblock", h.Users.UnblockUser},

		{"GetReport", http.MethodGet, "/reports/:type", h.Reports.GetReport},
	}
}
