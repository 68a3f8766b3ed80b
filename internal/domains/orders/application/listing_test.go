package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-admin/internal/domains/orders/adapters/memory"
	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// recordingService counts calls and can be told to fail mutations.
type recordingService struct {
	ports.Service

	mu        sync.Mutex
	queries   []domain.ListQuery
	deletes   []int64
	changes   []ports.ChangeStatusCommand
	mutateErr error
}

func newRecordingService(orders ...*domain.Order) *recordingService {
	return &recordingService{Service: NewService(memory.NewRepository(orders...))}
}

func (r *recordingService) List(ctx context.Context, q domain.ListQuery) (pagination.Page[*domain.Order], error) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
	return r.Service.List(ctx, q)
}

func (r *recordingService) Delete(ctx context.Context, cmd ports.DeleteCommand) error {
	r.mu.Lock()
	r.deletes = append(r.deletes, cmd.OrderID)
	err := r.mutateErr
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.Service.Delete(ctx, cmd)
}

func (r *recordingService) ChangeStatus(ctx context.Context, cmd ports.ChangeStatusCommand) (*domain.Order, error) {
	r.mu.Lock()
	r.changes = append(r.changes, cmd)
	err := r.mutateErr
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.Service.ChangeStatus(ctx, cmd)
}

func (r *recordingService) listCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queries)
}

func (r *recordingService) lastQuery() domain.ListQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries[len(r.queries)-1]
}

func TestListing_FilterChangesResetPage(t *testing.T) {
	svc := newRecordingService(seedOrders(30)...)
	l := NewListing(svc, WithSearchDebounce(0), WithPageSize(5))
	ctx := context.Background()

	snap, err := l.GoToPage(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, 4, snap.Query.Page)
	require.Equal(t, 4, snap.Page.Meta.Page)

	snap, err = l.SetStatusTab(ctx, domain.StatusPaid)
	require.NoError(t, err)
	require.Equal(t, 1, snap.Query.Page)
	require.Equal(t, domain.StatusPaid, svc.lastQuery().StatusTab)

	_, err = l.GoToPage(ctx, 2)
	require.NoError(t, err)
	snap, err = l.SetPaymentMethod(ctx, domain.PaymentPix)
	require.NoError(t, err)
	require.Equal(t, 1, snap.Query.Page)

	_, err = l.GoToPage(ctx, 2)
	require.NoError(t, err)
	snap, err = l.SetDateRange(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	require.NoError(t, err)
	require.Equal(t, 1, snap.Query.Page)

	_, err = l.GoToPage(ctx, 2)
	require.NoError(t, err)
	snap = l.SetSearch("PED")
	require.Equal(t, 1, snap.Query.Page)
	require.Equal(t, "PED", svc.lastQuery().Search)
}

func TestListing_UpdateAppliesExplicitPageLast(t *testing.T) {
	svc := newRecordingService(seedOrders(30)...)
	l := NewListing(svc, WithSearchDebounce(0), WithPageSize(5))
	status := domain.StatusPaid
	page := 2

	snap, err := l.Update(context.Background(), ListingChange{StatusTab: &status, Page: &page})
	require.NoError(t, err)
	require.Equal(t, 2, snap.Query.Page)
	require.Equal(t, 1, svc.listCalls())
}

func TestListing_UpdateRejectsInvalidFilters(t *testing.T) {
	svc := newRecordingService()
	l := NewListing(svc, WithSearchDebounce(0))
	bad := domain.Status("LOST")

	_, err := l.Update(context.Background(), ListingChange{StatusTab: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, 0, svc.listCalls())
	require.Equal(t, domain.Status(""), l.Snapshot().Query.StatusTab)
}

func TestListing_SearchIsDebounced(t *testing.T) {
	svc := newRecordingService(seedOrders(3)...)
	l := NewListing(svc, WithSearchDebounce(40*time.Millisecond))
	defer l.Close()

	l.SetSearch("P")
	l.SetSearch("PE")
	snap := l.SetSearch("PED")
	require.Equal(t, "PED", snap.SearchInput)
	require.True(t, snap.SearchPending)
	require.Equal(t, 0, svc.listCalls())

	require.Eventually(t, func() bool { return svc.listCalls() == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, "PED", svc.lastQuery().Search)
	require.Eventually(t, func() bool {
		s := l.Snapshot()
		return !s.Loading && !s.SearchPending && s.Query.Search == "PED"
	}, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, 1, svc.listCalls())
}

func TestListing_DeleteOnlyFiresOnConfirm(t *testing.T) {
	svc := newRecordingService(seedOrders(3)...)
	l := NewListing(svc, WithSearchDebounce(0))
	ctx := context.Background()
	l.Load(ctx)
	callsAfterLoad := svc.listCalls()

	action, err := l.RequestDelete(2)
	require.NoError(t, err)
	require.Equal(t, ActionDelete, action.Kind)
	require.Contains(t, action.Prompt, "#PED-B")
	require.Empty(t, svc.deletes)
	require.NotNil(t, l.Snapshot().Pending)

	snap, err := l.Confirm(ctx, action.Token)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, svc.deletes)
	require.Nil(t, snap.Pending)
	require.Equal(t, &apierrors.Toast{Kind: apierrors.ToastSuccess, Message: MessageOrderDeleted}, snap.Toast)
	require.Equal(t, callsAfterLoad+1, svc.listCalls())
	require.Len(t, snap.Page.Items, 2)

	_, err = l.Confirm(ctx, action.Token)
	require.ErrorIs(t, err, ErrNoPendingAction)
	require.Len(t, svc.deletes, 1)
}

func TestListing_CancelDiscardsAction(t *testing.T) {
	svc := newRecordingService(seedOrders(2)...)
	l := NewListing(svc, WithSearchDebounce(0))

	action, err := l.RequestDelete(1)
	require.NoError(t, err)
	require.ErrorIs(t, l.Cancel("other-token"), ErrActionMismatch)
	require.NoError(t, l.Cancel(action.Token))
	require.Nil(t, l.Snapshot().Pending)
	require.ErrorIs(t, l.Cancel(action.Token), ErrNoPendingAction)
	require.Empty(t, svc.deletes)
}

func TestListing_FailedMutationShowsGenericToastAndRefetches(t *testing.T) {
	svc := newRecordingService(seedOrders(2)...)
	svc.mutateErr = errors.New("cms unavailable")
	l := NewListing(svc, WithSearchDebounce(0), WithActor("admin"))
	ctx := context.Background()

	action, err := l.RequestStatusChange(1, domain.StatusCanceled)
	require.NoError(t, err)
	require.Contains(t, action.Prompt, "Cancelado")

	before := svc.listCalls()
	snap, err := l.Confirm(ctx, action.Token)
	require.NoError(t, err)
	require.Equal(t, before+1, svc.listCalls())
	require.NotNil(t, snap.Toast)
	require.Equal(t, apierrors.GenericFailureToast(), *snap.Toast)
	require.Equal(t, "admin", svc.changes[0].Actor)
}

func TestListing_ConfirmRequiresToken(t *testing.T) {
	svc := newRecordingService(seedOrders(2)...)
	l := NewListing(svc, WithSearchDebounce(0))
	ctx := context.Background()

	action, err := l.RequestDelete(1)
	require.NoError(t, err)

	_, err = l.Confirm(ctx, "")
	require.ErrorIs(t, err, ErrActionMismatch)
	require.ErrorIs(t, l.Cancel(""), ErrActionMismatch)
	require.Empty(t, svc.deletes)

	snap := l.Snapshot()
	require.NotNil(t, snap.Pending)
	require.Equal(t, action.Token, snap.Pending.Token)
}

func TestListing_RequestStatusChangeValidates(t *testing.T) {
	l := NewListing(newRecordingService(), WithSearchDebounce(0))
	_, err := l.RequestStatusChange(1, "LOST")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = l.RequestDelete(0)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Nil(t, l.Snapshot().Pending)
}

type failingListService struct {
	*recordingService
}

func (f failingListService) List(context.Context, domain.ListQuery) (pagination.Page[*domain.Order], error) {
	return pagination.Page[*domain.Order]{}, errors.New("timeout")
}

func TestListing_FetchFailureKeepsPreviousPage(t *testing.T) {
	svc := newRecordingService(seedOrders(3)...)
	l := NewListing(svc, WithSearchDebounce(0))
	snap := l.Load(context.Background())
	require.Len(t, snap.Page.Items, 3)

	l.service = failingListService{svc}
	snap = l.Load(context.Background())
	require.True(t, snap.FetchFailed)
	require.Len(t, snap.Page.Items, 3)
	require.Equal(t, MessageLoadFailed, snap.Toast.Message)
}

func TestListingRegistry(t *testing.T) {
	reg := NewListingRegistry(newRecordingService(), WithSearchDebounce(0))
	a, created := reg.Get("session-a", "alice")
	require.True(t, created)
	again, created := reg.Get("session-a", "alice")
	require.False(t, created)
	require.Same(t, a, again)
	require.Equal(t, "alice", a.actor)

	reg.Get("session-b", "bob")
	require.Equal(t, 2, reg.Len())
	reg.Drop("session-a")
	require.Equal(t, 1, reg.Len())
	reg.Close()
	require.Equal(t, 0, reg.Len())
}
