package adminserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmemory "github.com/Apurer/shop-admin/internal/domains/auth/adapters/memory"
	authapp "github.com/Apurer/shop-admin/internal/domains/auth/application"
	authdomain "github.com/Apurer/shop-admin/internal/domains/auth/domain"
	authports "github.com/Apurer/shop-admin/internal/domains/auth/ports"
	ordermemory "github.com/Apurer/shop-admin/internal/domains/orders/adapters/memory"
	ordersapp "github.com/Apurer/shop-admin/internal/domains/orders/application"
	orderdomain "github.com/Apurer/shop-admin/internal/domains/orders/domain"
	ordersports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
	productsapp "github.com/Apurer/shop-admin/internal/domains/products/application"
	productsports "github.com/Apurer/shop-admin/internal/domains/products/ports"
	reportsapp "github.com/Apurer/shop-admin/internal/domains/reports/application"
	reportsports "github.com/Apurer/shop-admin/internal/domains/reports/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
)

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, identifier, password string) (authdomain.Identity, error) {
	if identifier == "admin" && password == "secret" {
		return authdomain.Identity{UserID: 1, Username: "admin", Email: "admin@shop.test"}, nil
	}
	return authdomain.Identity{}, authports.ErrInvalidCredentials
}

// flakyRepository fails the selected calls and delegates the rest.
type flakyRepository struct {
	ordersports.Repository
	failGet    bool
	failUpdate bool
}

var errCMSDown = errors.New("cms unavailable")

func (r *flakyRepository) GetByID(ctx context.Context, id int64) (*orderdomain.Order, error) {
	if r.failGet {
		return nil, errCMSDown
	}
	return r.Repository.GetByID(ctx, id)
}

func (r *flakyRepository) UpdateStatus(ctx context.Context, id int64, s orderdomain.Status) (*orderdomain.Order, error) {
	if r.failUpdate {
		return nil, errCMSDown
	}
	return r.Repository.UpdateStatus(ctx, id, s)
}

// unusedProductRepository is never reached by requests that fail validation.
type unusedProductRepository struct {
	productsports.Repository
}

type unusedReportSource struct {
	reportsports.Source
}

type harness struct {
	router *gin.Engine
	repo   *flakyRepository
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	created := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	repo := &flakyRepository{Repository: ordermemory.NewRepository(
		&orderdomain.Order{ID: 1, Code: "PED-0001", Status: orderdomain.StatusPending, CreatedAt: created},
		&orderdomain.Order{ID: 2, Code: "PED-0002", Status: orderdomain.StatusPaid, CreatedAt: created.Add(time.Hour)},
	)}
	audit := ordermemory.NewAuditLog()
	orders := ordersapp.NewService(repo, ordersapp.WithAuditLog(audit))
	listings := ordersapp.NewListingRegistry(orders, ordersapp.WithSearchDebounce(time.Millisecond))
	t.Cleanup(listings.Close)

	auth := authapp.NewService(stubAuthenticator{}, authmemory.NewSessionStore())
	handlers := Handlers{
		Auth:     NewAuthAPI(auth, listings),
		Orders:   NewOrdersAPI(orders, nil, audit, listings, 10),
		Products: NewProductsAPI(productsapp.NewService(unusedProductRepository{})),
		Reports:  NewReportsAPI(reportsapp.NewService(unusedReportSource{})),
	}
	router := NewRouter(handlers, auth, RouterOptions{Gatherer: prometheus.NewRegistry()})
	return &harness{router: router, repo: repo}
}

func (h *harness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) login(t *testing.T) string {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/auth/login", "", map[string]string{"identifier": "admin", "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session sessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func extensions(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	ext, ok := decode(t, rec)["extensions"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	return ext
}

func TestAdminRoutesRequireBearerToken(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/admin/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

	rec = h.do(t, http.MethodGet, "/admin/orders", "not-a-session", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
}

func TestLoginLogout(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodPost, "/auth/login", "", map[string]string{"identifier": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := h.login(t)
	rec = h.do(t, http.MethodGet, "/admin/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(t, http.MethodGet, "/admin/orders", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListOrders_SearchByStatusLabelResetsPage(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodGet, "/admin/orders?q=pago", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)

	orders := body["orders"].([]any)
	require.Len(t, orders, 1)
	assert.Equal(t, "PED-0002", orders[0].(map[string]any)["code"])
	filters := body["filters"].(map[string]any)
	assert.EqualValues(t, 1, filters["page"])
	assert.Equal(t, "pago", filters["search"])
}

func TestListOrders_InvalidStatus(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodGet, "/admin/orders?status=LOST", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, extensions(t, rec)["fields"], "status")
}

func TestDeleteOrder_RequiresConfirmation(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodDelete, "/admin/orders/1", token, nil)
	require.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Equal(t, ordersapp.DeletePrompt(1, "PED-0001"), extensions(t, rec)["prompt"])

	rec = h.do(t, http.MethodGet, "/admin/orders/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, "order must survive an unconfirmed delete")

	rec = h.do(t, http.MethodDelete, "/admin/orders/1?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	toast := decode(t, rec)["toast"].(map[string]any)
	assert.Equal(t, ordersapp.MessageOrderDeleted, toast["message"])

	rec = h.do(t, http.MethodGet, "/admin/orders/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, http.MethodGet, "/admin/orders/1/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "deleted", history[0]["action"])
	assert.Equal(t, "admin", history[0]["actor"])
}

func TestChangeOrderStatus(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodPut, "/admin/orders/1/status", token, map[string]string{"status": "PAID"})
	require.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Contains(t, extensions(t, rec)["prompt"], "Pago")

	rec = h.do(t, http.MethodPut, "/admin/orders/1/status?confirm=true", token, map[string]string{"status": "PAID"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	order := decode(t, rec)["order"].(map[string]any)
	status := order["status"].(map[string]any)
	assert.Equal(t, "PAID", status["key"])
}

func TestChangeOrderStatus_FailureCarriesGenericToast(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)
	h.repo.failUpdate = true

	rec := h.do(t, http.MethodPut, "/admin/orders/1/status?confirm=true", token, map[string]string{"status": "PAID"})
	require.Equal(t, http.StatusBadGateway, rec.Code)
	toast := extensions(t, rec)["toast"].(map[string]any)
	assert.Equal(t, apierrors.GenericFailureMessage, toast["message"])
	assert.Equal(t, string(apierrors.ToastError), toast["kind"])
}

func TestGetOrder_ReadFailureRendersNotFound(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)
	h.repo.failGet = true

	rec := h.do(t, http.MethodGet, "/admin/orders/2", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Não foi possível carregar os dados.", decode(t, rec)["detail"])
}

func TestGetOrder_InvalidID(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodGet, "/admin/orders/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListingConfirmationFlow(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodGet, "/admin/orders/view", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode(t, rec)["orders"], 2)

	rec = h.do(t, http.MethodPost, "/admin/orders/view/actions", token, map[string]any{"kind": "delete", "orderId": 1})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	pending := decode(t, rec)
	assert.Equal(t, ordersapp.DeletePrompt(1, "PED-0001"), pending["prompt"])
	confirmToken := pending["token"].(string)

	rec = h.do(t, http.MethodPost, "/admin/orders/view/actions/confirm", token, map[string]string{"token": "stale"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(t, http.MethodPost, "/admin/orders/view/actions/confirm", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = h.do(t, http.MethodDelete, "/admin/orders/view/actions", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(t, http.MethodPost, "/admin/orders/view/actions/confirm", token, map[string]string{"token": confirmToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode(t, rec)
	assert.Len(t, view["orders"], 1)
	assert.Nil(t, view["pending"])
	assert.Equal(t, ordersapp.MessageOrderDeleted, view["toast"].(map[string]any)["message"])

	rec = h.do(t, http.MethodDelete, "/admin/orders/view/toast", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec)["toast"])

	rec = h.do(t, http.MethodPost, "/admin/orders/view/actions/confirm", token, map[string]string{"token": confirmToken})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListingPatchResetsPage(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodPatch, "/admin/orders/view", token, map[string]any{"pageSize": 1, "page": 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 2, decode(t, rec)["filters"].(map[string]any)["page"])

	rec = h.do(t, http.MethodPatch, "/admin/orders/view", token, map[string]any{"status": "PAID"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	filters := decode(t, rec)["filters"].(map[string]any)
	assert.EqualValues(t, 1, filters["page"])
	assert.Equal(t, "PAID", filters["status"])
}

func TestListing_CancelWithoutPending(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodDelete, "/admin/orders/view/actions?token=x", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateProduct_ValidationProblem(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodPost, "/admin/products", token, map[string]any{"price": "10.00", "promotionalPrice": "12.00"})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	fields := extensions(t, rec)["fields"].(map[string]any)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "promotionalPrice")
}

func TestGetReport_InvalidInput(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	rec := h.do(t, http.MethodGet, "/admin/reports/orders?from=yesterday", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, extensions(t, rec)["fields"], "from")

	rec = h.do(t, http.MethodGet, "/admin/reports/weather", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
}

func TestBannerRoutesMountedUnderAdmin(t *testing.T) {
	h := newHarness(t)

	mounted := map[string]bool{}
	for _, route := range h.router.Routes() {
		mounted[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /admin/banners",
		"POST /admin/banners",
		"GET /admin/banners/:id",
		"PUT /admin/banners/:id",
		"DELETE /admin/banners/:id",
		"POST /admin/banners/:id/publish",
		"POST /admin/banners/:id/unpublish",
	} {
		assert.True(t, mounted[want], want)
	}
	assert.False(t, mounted["GET /admin/banner-collections"])
}
