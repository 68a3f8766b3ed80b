package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// Repository keeps orders in process and applies the same filters the CMS does.
// It backs local development without a CMS and the listing tests.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
}

func NewRepository(seed ...*domain.Order) *Repository {
	r := &Repository{orders: make(map[int64]*domain.Order)}
	for _, o := range seed {
		if o != nil {
			r.orders[o.ID] = clone(o)
		}
	}
	return r
}

// Put inserts or replaces an order.
func (r *Repository) Put(o *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = clone(o)
}

func (r *Repository) List(_ context.Context, q domain.ListQuery) (pagination.Page[*domain.Order], error) {
	q = q.Normalized()
	r.mu.RLock()
	matched := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if Matches(o, q) {
			matched = append(matched, clone(o))
		}
	}
	r.mu.RUnlock()

	sortOrders(matched, q.Sort)
	total := len(matched)
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return pagination.Page[*domain.Order]{
		Items: matched[start:end],
		Meta: pagination.Meta{
			Page:      q.Page,
			PageSize:  q.PageSize,
			PageCount: pagination.PageCount(total, q.PageSize),
			Total:     total,
		},
	}, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return clone(o), nil
}

func (r *Repository) UpdateStatus(_ context.Context, id int64, status domain.Status) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	return clone(o), nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

// Matches evaluates q against one order the way the CMS filter tree does.
func Matches(o *domain.Order, q domain.ListQuery) bool {
	if q.StatusTab != "" && o.Status != q.StatusTab {
		return false
	}
	if q.PaymentMethod != "" && o.Payment.Method != q.PaymentMethod {
		return false
	}
	if !q.From.IsZero() && o.CreatedAt.Before(q.From) {
		return false
	}
	if !q.To.IsZero() && o.CreatedAt.After(q.To) {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	for _, field := range []string{o.Code, o.Customer.FirstName, o.Customer.LastName, o.Customer.Email} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, s := range domain.StatusesMatchingLabel(q.Search) {
		if o.Status == s {
			return true
		}
	}
	return false
}

func sortOrders(orders []*domain.Order, s domain.Sort) {
	less := func(a, b *domain.Order) bool {
		switch s.Field {
		case domain.SortCode:
			return a.Code < b.Code
		case domain.SortStatus:
			return a.Status < b.Status
		case domain.SortUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if s.Desc {
			return less(orders[j], orders[i])
		}
		return less(orders[i], orders[j])
	})
}

func clone(o *domain.Order) *domain.Order {
	c := *o
	c.Items = append([]domain.Item(nil), o.Items...)
	c.Coupons = append([]domain.Coupon(nil), o.Coupons...)
	c.Metadata = append(domain.Metadata(nil), o.Metadata...)
	return &c
}

var _ ports.Repository = (*Repository)(nil)
