package adminserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/shop-admin/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/Apurer/shop-admin/internal/domains/orders/application"
	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	ordersports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

// OrdersAPI serves the stateless order endpoints and the per-session listing.
type OrdersAPI struct {
	service         ordersports.Service
	statuses        ordersports.StatusChangeOrchestrator
	audit           ordersports.AuditLog
	listings        *ordersapp.ListingRegistry
	defaultPageSize int
	now             func() time.Time
}

// NewOrdersAPI creates an OrdersAPI. statuses falls back to the service and audit may be nil.
func NewOrdersAPI(service ordersports.Service, statuses ordersports.StatusChangeOrchestrator, audit ordersports.AuditLog, listings *ordersapp.ListingRegistry, defaultPageSize int) OrdersAPI {
	if statuses == nil {
		statuses = service
	}
	return OrdersAPI{
		service:         service,
		statuses:        statuses,
		audit:           audit,
		listings:        listings,
		defaultPageSize: defaultPageSize,
		now:             time.Now,
	}
}

type statusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

type mutationResult struct {
	Toast apierrors.Toast          `json:"toast"`
	Order *ordermapper.OrderDetail `json:"order,omitempty"`
}

// Get /admin/orders
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	query, err := api.bindListQuery(c)
	if err != nil {
		clientErrors.RespondError(c, err)
		return
	}
	page, err := api.service.List(c.Request.Context(), query)
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"filters":    ordermapper.ToFilters(query.Normalized()),
		"orders":     mapSummaries(page.Items),
		"pagination": page.Meta,
		"statusTabs": ordermapper.StatusTabs(),
	})
}

// Get /admin/orders/:id
func (api *OrdersAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.ToDetail(order, api.now()))
}

// Get /admin/orders/:id/history
func (api *OrdersAPI) GetOrderHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if api.audit == nil {
		c.JSON(http.StatusOK, []ordermapper.AuditEntryView{})
		return
	}
	entries, err := api.audit.ListByOrder(c.Request.Context(), id)
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.ToHistory(entries))
}

// Put /admin/orders/:id/status
// Without confirm=true nothing is written and the confirmation prompt comes back as 428.
func (api *OrdersAPI) ChangeOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload statusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	status, err := domain.ParseStatus(payload.Status)
	if err != nil {
		apierrors.Respond(c, apierrors.NewValidationProblem(map[string]string{"status": "status desconhecido"}))
		return
	}
	ctx := c.Request.Context()
	if !confirmed(c) {
		apierrors.Respond(c, apierrors.NewConfirmationProblem(ordersapp.StatusChangePrompt(id, api.codeFor(c, id), status)))
		return
	}
	order, err := api.statuses.ChangeStatus(ctx, ordersports.ChangeStatusCommand{
		OrderID: id,
		Status:  status,
		Actor:   sessionFrom(c).Actor(),
	})
	if err != nil {
		respondMutation(c, err)
		return
	}
	detail := ordermapper.ToDetail(order, api.now())
	c.JSON(http.StatusOK, mutationResult{Toast: apierrors.SuccessToast(ordersapp.MessageStatusChanged), Order: &detail})
}

// Delete /admin/orders/:id
func (api *OrdersAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		apierrors.Respond(c, apierrors.NewConfirmationProblem(ordersapp.DeletePrompt(id, api.codeFor(c, id))))
		return
	}
	err := api.service.Delete(c.Request.Context(), ordersports.DeleteCommand{OrderID: id, Actor: sessionFrom(c).Actor()})
	if err != nil {
		respondMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, mutationResult{Toast: apierrors.SuccessToast(ordersapp.MessageOrderDeleted)})
}

// Get /admin/orders/view
// The first call of a session loads page one; a first load that fails answers 404.
func (api *OrdersAPI) GetListing(c *gin.Context) {
	session := sessionFrom(c)
	listing, created := api.listings.Get(session.Token, session.Actor())
	snap := listing.Snapshot()
	if created {
		snap = listing.Load(c.Request.Context())
	}
	if snap.FetchFailed && snap.FetchedAt.IsZero() {
		api.listings.Drop(session.Token)
		respondRead(c, errors.New("orders listing could not be loaded"))
		return
	}
	c.JSON(http.StatusOK, ordermapper.ToListingView(snap))
}

// Patch /admin/orders/view
func (api *OrdersAPI) PatchListing(c *gin.Context) {
	var patch ordermapper.ListingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, err)
		return
	}
	change, err := patch.ToChange()
	if err != nil {
		clientErrors.RespondError(c, err)
		return
	}
	listing := api.listing(c)
	snap, err := listing.Update(c.Request.Context(), change)
	if err != nil {
		clientErrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.ToListingView(snap))
}

// Post /admin/orders/view/actions
func (api *OrdersAPI) RequestAction(c *gin.Context) {
	var payload ordermapper.ActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	listing := api.listing(c)
	var (
		action ordersapp.PendingAction
		err    error
	)
	switch ordersapp.ActionKind(payload.Kind) {
	case ordersapp.ActionStatusChange:
		action, err = listing.RequestStatusChange(payload.OrderID, domain.Status(strings.TrimSpace(payload.Status)))
	default:
		action, err = listing.RequestDelete(payload.OrderID)
	}
	if err != nil {
		clientErrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, ordermapper.ToPendingAction(action))
}

// Post /admin/orders/view/actions/confirm
// A failed mutation still answers 200; the view carries the failure toast.
func (api *OrdersAPI) ConfirmAction(c *gin.Context) {
	var payload ordermapper.ConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	snap, err := api.listing(c).Confirm(c.Request.Context(), payload.Token)
	if err != nil {
		respondPendingError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.ToListingView(snap))
}

// Delete /admin/orders/view/actions
func (api *OrdersAPI) CancelAction(c *gin.Context) {
	var token string
	if err := bindQuery(c, "token", &token); err != nil {
		respondBadRequest(c, err)
		return
	}
	listing := api.listing(c)
	if err := listing.Cancel(token); err != nil {
		respondPendingError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.ToListingView(listing.Snapshot()))
}

// Delete /admin/orders/view/toast
func (api *OrdersAPI) DismissToast(c *gin.Context) {
	listing := api.listing(c)
	listing.DismissToast()
	c.JSON(http.StatusOK, ordermapper.ToListingView(listing.Snapshot()))
}

// listing returns the session's listing, loading it when it did not exist yet.
func (api *OrdersAPI) listing(c *gin.Context) *ordersapp.Listing {
	session := sessionFrom(c)
	listing, created := api.listings.Get(session.Token, session.Actor())
	if created {
		listing.Load(c.Request.Context())
	}
	return listing
}

// codeFor looks up the order code for a prompt; the id alone is used when the lookup fails.
func (api *OrdersAPI) codeFor(c *gin.Context, id int64) string {
	order, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		return ""
	}
	return order.Code
}

func (api *OrdersAPI) bindListQuery(c *gin.Context) (domain.ListQuery, error) {
	params, err := bindListParams(c)
	if err != nil {
		return domain.ListQuery{}, validation.FieldErrors{"query": err.Error()}
	}
	var rawStatus, rawPayment, rawFrom, rawTo, rawSort string
	for name, dest := range map[string]*string{
		"status":        &rawStatus,
		"paymentMethod": &rawPayment,
		"from":          &rawFrom,
		"to":            &rawTo,
		"sort":          &rawSort,
	} {
		if err := bindQuery(c, name, dest); err != nil {
			return domain.ListQuery{}, validation.FieldErrors{name: err.Error()}
		}
	}

	patch := ordermapper.ListingPatch{Search: &params.Search, Status: &rawStatus, PaymentMethod: &rawPayment}
	if rawFrom != "" || rawTo != "" {
		patch.From, patch.To = &rawFrom, &rawTo
	}
	if rawSort != "" {
		patch.Sort = &rawSort
	}
	change, err := patch.ToChange()
	if err != nil {
		return domain.ListQuery{}, err
	}

	q := domain.NewListQuery(api.defaultPageSize).
		WithSearch(*change.Search).
		WithStatusTab(*change.StatusTab).
		WithPaymentMethod(*change.PaymentMethod)
	if change.DateRange != nil {
		q = q.WithDateRange(change.DateRange[0], change.DateRange[1])
	}
	if change.Sort != nil {
		q = q.WithSort(*change.Sort)
	}
	if params.PageSize > 0 {
		q = q.WithPageSize(params.PageSize)
	}
	if params.Page > 0 {
		q = q.WithPage(params.Page)
	}
	return q, nil
}

func mapSummaries(orders []*domain.Order) []ordermapper.OrderSummary {
	out := make([]ordermapper.OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, ordermapper.ToSummary(o))
	}
	return out
}

func respondPendingError(c *gin.Context, err error) {
	if errors.Is(err, ordersapp.ErrNoPendingAction) || errors.Is(err, ordersapp.ErrActionMismatch) {
		apierrors.Respond(c, apierrors.ErrConflict.WithDetail(err.Error()))
		return
	}
	clientErrors.RespondError(c, err)
}
