package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
	"github.com/Apurer/shop-admin/internal/shared/debounce"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// Listing defaults.
const (
	DefaultSearchDebounce = 500 * time.Millisecond
	DefaultFetchTimeout   = 15 * time.Second
)

// Messages shown as toasts by the listing screen.
const (
	MessageLoadFailed    = "Não foi possível carregar os pedidos."
	MessageStatusChanged = "Status do pedido atualizado com sucesso."
	MessageOrderDeleted  = "Pedido excluído com sucesso."
)

var (
	ErrNoPendingAction = errors.New("no pending confirmation")
	ErrActionMismatch  = errors.New("confirmation token does not match the pending action")
)

// ActionKind is a mutation that waits for operator confirmation.
type ActionKind string

const (
	ActionStatusChange ActionKind = "status_change"
	ActionDelete       ActionKind = "delete"
)

// PendingAction is a requested mutation that has not fired yet.
type PendingAction struct {
	Token       string
	Kind        ActionKind
	OrderID     int64
	OrderCode   string
	Status      domain.Status
	Prompt      string
	RequestedAt time.Time
}

// ListingSnapshot is a copy of the listing state safe to hand to other goroutines.
type ListingSnapshot struct {
	Query         domain.ListQuery
	SearchInput   string
	SearchPending bool
	Loading       bool
	FetchFailed   bool
	Page          pagination.Page[*domain.Order]
	FetchedAt     time.Time
	Pending       *PendingAction
	Toast         *apierrors.Toast
}

// ListingChange carries the filters a single request wants to change. Nil fields are left alone.
type ListingChange struct {
	Search        *string
	StatusTab     *domain.Status
	PaymentMethod *domain.PaymentMethod
	DateRange     *[2]time.Time
	Sort          *domain.Sort
	PageSize      *int
	Page          *int
}

type ListingOption func(*Listing)

// WithSearchDebounce sets the quiet period before a search refetches.
func WithSearchDebounce(d time.Duration) ListingOption {
	return func(l *Listing) { l.debounceDelay = d }
}

// WithFetchTimeout bounds every list call.
func WithFetchTimeout(d time.Duration) ListingOption {
	return func(l *Listing) {
		if d > 0 {
			l.fetchTimeout = d
		}
	}
}

// WithPageSize sets the initial page size.
func WithPageSize(size int) ListingOption {
	return func(l *Listing) { l.query = l.query.WithPageSize(size) }
}

// WithActor names the admin recorded on confirmed mutations.
func WithActor(actor string) ListingOption {
	return func(l *Listing) { l.actor = actor }
}

// WithStatusChanger routes confirmed status changes through an orchestrator.
func WithStatusChanger(o ports.StatusChangeOrchestrator) ListingOption {
	return func(l *Listing) {
		if o != nil {
			l.statuses = o
		}
	}
}

// WithListingClock overrides time.Now.
func WithListingClock(now func() time.Time) ListingOption {
	return func(l *Listing) { l.now = now }
}

// Listing owns the order listing state of one admin session. Filter changes reset
// the page and refetch, search is debounced, and mutations wait for Confirm.
type Listing struct {
	service       ports.Service
	statuses      ports.StatusChangeOrchestrator
	debouncer     *debounce.Debouncer
	debounceDelay time.Duration
	fetchTimeout  time.Duration
	actor         string
	now           func() time.Time

	mu          sync.Mutex
	query       domain.ListQuery
	searchInput string
	loading     bool
	fetchFailed bool
	page        pagination.Page[*domain.Order]
	fetchedAt   time.Time
	pending     *PendingAction
	toast       *apierrors.Toast
	generation  uint64
	cancelFetch context.CancelFunc
	closed      bool
}

// NewListing creates a listing at page 1 with the default sort.
func NewListing(service ports.Service, opts ...ListingOption) *Listing {
	l := &Listing{
		service:       service,
		statuses:      service,
		debounceDelay: DefaultSearchDebounce,
		fetchTimeout:  DefaultFetchTimeout,
		now:           time.Now,
		query:         domain.NewListQuery(pagination.DefaultPageSize),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	l.debouncer = debounce.New(l.debounceDelay)
	return l
}

// Load fetches the current query and returns the resulting state.
func (l *Listing) Load(ctx context.Context) ListingSnapshot {
	l.refetch(ctx)
	return l.Snapshot()
}

// SetSearch records the typed text and refetches once typing pauses.
func (l *Listing) SetSearch(search string) ListingSnapshot {
	l.mu.Lock()
	l.searchInput = search
	l.mu.Unlock()
	l.debouncer.Call(func() {
		l.mu.Lock()
		if l.closed {
			l.mu.Unlock()
			return
		}
		l.query = l.query.WithSearch(search)
		l.mu.Unlock()
		ctx, cancel := context.WithTimeout(context.Background(), l.fetchTimeout)
		defer cancel()
		l.refetch(ctx)
	})
	return l.Snapshot()
}

// SetStatusTab filters by one status; "" shows every status.
func (l *Listing) SetStatusTab(ctx context.Context, status domain.Status) (ListingSnapshot, error) {
	return l.Update(ctx, ListingChange{StatusTab: &status})
}

func (l *Listing) SetPaymentMethod(ctx context.Context, method domain.PaymentMethod) (ListingSnapshot, error) {
	return l.Update(ctx, ListingChange{PaymentMethod: &method})
}

func (l *Listing) SetDateRange(ctx context.Context, from, to time.Time) (ListingSnapshot, error) {
	r := [2]time.Time{from, to}
	return l.Update(ctx, ListingChange{DateRange: &r})
}

func (l *Listing) SetSort(ctx context.Context, sort domain.Sort) (ListingSnapshot, error) {
	return l.Update(ctx, ListingChange{Sort: &sort})
}

func (l *Listing) SetPageSize(ctx context.Context, size int) (ListingSnapshot, error) {
	return l.Update(ctx, ListingChange{PageSize: &size})
}

// GoToPage moves to page n keeping every filter.
func (l *Listing) GoToPage(ctx context.Context, n int) (ListingSnapshot, error) {
	return l.Update(ctx, ListingChange{Page: &n})
}

// Update applies every non-search change at once and refetches a single time.
// An explicit Page is applied last so it survives the page reset of the other changes.
// A Search change is debounced like SetSearch.
func (l *Listing) Update(ctx context.Context, change ListingChange) (ListingSnapshot, error) {
	l.mu.Lock()
	next := l.query
	if change.StatusTab != nil {
		next = next.WithStatusTab(*change.StatusTab)
	}
	if change.PaymentMethod != nil {
		next = next.WithPaymentMethod(*change.PaymentMethod)
	}
	if change.DateRange != nil {
		next = next.WithDateRange(change.DateRange[0], change.DateRange[1])
	}
	if change.Sort != nil {
		next = next.WithSort(*change.Sort)
	}
	if change.PageSize != nil {
		next = next.WithPageSize(*change.PageSize)
	}
	if change.Page != nil {
		next = next.WithPage(*change.Page)
	}
	if err := next.Validate(); err != nil {
		l.mu.Unlock()
		return l.Snapshot(), mapError(fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}
	changed := next != l.query
	l.query = next
	l.mu.Unlock()

	if change.Search != nil {
		l.SetSearch(*change.Search)
	}
	if changed {
		l.refetch(ctx)
	}
	return l.Snapshot(), nil
}

// RequestStatusChange stores a status change until Confirm or Cancel.
func (l *Listing) RequestStatusChange(orderID int64, status domain.Status) (PendingAction, error) {
	if orderID <= 0 {
		return PendingAction{}, fmt.Errorf("%w: order id must be positive", ErrInvalidInput)
	}
	parsed, err := domain.ParseStatus(string(status))
	if err != nil {
		return PendingAction{}, mapError(err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	code := l.codeFor(orderID)
	action := PendingAction{
		Token:       uuid.NewString(),
		Kind:        ActionStatusChange,
		OrderID:     orderID,
		OrderCode:   code,
		Status:      parsed,
		Prompt:      StatusChangePrompt(orderID, code, parsed),
		RequestedAt: l.now(),
	}
	l.pending = &action
	return action, nil
}

// RequestDelete stores a deletion until Confirm or Cancel.
func (l *Listing) RequestDelete(orderID int64) (PendingAction, error) {
	if orderID <= 0 {
		return PendingAction{}, fmt.Errorf("%w: order id must be positive", ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	code := l.codeFor(orderID)
	action := PendingAction{
		Token:       uuid.NewString(),
		Kind:        ActionDelete,
		OrderID:     orderID,
		OrderCode:   code,
		Prompt:      DeletePrompt(orderID, code),
		RequestedAt: l.now(),
	}
	l.pending = &action
	return action, nil
}

// Confirm fires the pending mutation and refetches whatever the outcome.
// token must be the one issued with the prompt. A failed mutation only shows
// up as the generic toast.
func (l *Listing) Confirm(ctx context.Context, token string) (ListingSnapshot, error) {
	l.mu.Lock()
	action := l.pending
	switch {
	case action == nil:
		l.mu.Unlock()
		return l.Snapshot(), ErrNoPendingAction
	case token == "" || token != action.Token:
		l.mu.Unlock()
		return l.Snapshot(), ErrActionMismatch
	}
	l.pending = nil
	l.mu.Unlock()

	var (
		err     error
		message string
	)
	switch action.Kind {
	case ActionStatusChange:
		_, err = l.statuses.ChangeStatus(ctx, ports.ChangeStatusCommand{OrderID: action.OrderID, Status: action.Status, Actor: l.actor})
		message = MessageStatusChanged
	case ActionDelete:
		err = l.service.Delete(ctx, ports.DeleteCommand{OrderID: action.OrderID, Actor: l.actor})
		message = MessageOrderDeleted
	}

	toast := apierrors.SuccessToast(message)
	if err != nil {
		toast = apierrors.GenericFailureToast()
	}
	l.mu.Lock()
	l.toast = &toast
	l.mu.Unlock()

	l.refetch(ctx)
	return l.Snapshot(), nil
}

// Cancel discards the pending mutation without calling the CMS.
func (l *Listing) Cancel(token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil {
		return ErrNoPendingAction
	}
	if token == "" || token != l.pending.Token {
		return ErrActionMismatch
	}
	l.pending = nil
	return nil
}

// DismissToast clears the current notification.
func (l *Listing) DismissToast() {
	l.mu.Lock()
	l.toast = nil
	l.mu.Unlock()
}

// Snapshot copies the current state.
func (l *Listing) Snapshot() ListingSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := ListingSnapshot{
		Query:         l.query,
		SearchInput:   l.searchInput,
		SearchPending: l.debouncer.Pending(),
		Loading:       l.loading,
		FetchFailed:   l.fetchFailed,
		Page:          pagination.Page[*domain.Order]{Items: append([]*domain.Order(nil), l.page.Items...), Meta: l.page.Meta},
		FetchedAt:     l.fetchedAt,
	}
	if l.pending != nil {
		p := *l.pending
		snap.Pending = &p
	}
	if l.toast != nil {
		t := *l.toast
		snap.Toast = &t
	}
	return snap
}

// Close drops any waiting search and cancels the fetch in flight.
func (l *Listing) Close() {
	l.debouncer.Stop()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.cancelFetch != nil {
		l.cancelFetch()
		l.cancelFetch = nil
	}
}

// refetch supersedes any fetch in flight; results of older generations are dropped.
func (l *Listing) refetch(ctx context.Context) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.cancelFetch != nil {
		l.cancelFetch()
	}
	fetchCtx, cancel := context.WithTimeout(ctx, l.fetchTimeout)
	defer cancel()
	l.generation++
	gen := l.generation
	l.cancelFetch = cancel
	l.loading = true
	query := l.query
	l.mu.Unlock()

	page, err := l.service.List(fetchCtx, query)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		return
	}
	l.cancelFetch = nil
	l.loading = false
	if err != nil {
		l.fetchFailed = true
		toast := apierrors.Toast{Kind: apierrors.ToastError, Message: MessageLoadFailed}
		l.toast = &toast
		return
	}
	l.fetchFailed = false
	l.page = page
	l.fetchedAt = l.now()
}

func (l *Listing) codeFor(orderID int64) string {
	for _, o := range l.page.Items {
		if o != nil && o.ID == orderID {
			return o.Code
		}
	}
	return ""
}

// StatusChangePrompt is the question shown before a status change fires.
func StatusChangePrompt(orderID int64, code string, status domain.Status) string {
	return fmt.Sprintf("Deseja alterar o status do pedido %s para \"%s\"?", orderRef(orderID, code), status.Label())
}

// DeletePrompt is the question shown before an order is deleted.
func DeletePrompt(orderID int64, code string) string {
	return fmt.Sprintf("Deseja excluir o pedido %s? Esta ação não pode ser desfeita.", orderRef(orderID, code))
}

func orderRef(id int64, code string) string {
	if code != "" {
		return "#" + code
	}
	return fmt.Sprintf("#%d", id)
}
