package cms

import (
	"context"
	"errors"
	"fmt"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const ordersPath = "/orders"

// Repository reads and writes orders through the CMS REST API.
type Repository struct {
	client *cmsclient.Client
}

func NewRepository(client *cmsclient.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) ensureClient() error {
	if r == nil || r.client == nil {
		return errors.New("orders cms repository not initialized")
	}
	return nil
}

func (r *Repository) List(ctx context.Context, q domain.ListQuery) (pagination.Page[*domain.Order], error) {
	if err := r.ensureClient(); err != nil {
		return pagination.Page[*domain.Order]{}, err
	}
	var res cmsclient.Collection[OrderAttributes]
	if err := r.client.Get(ctx, ordersPath, BuildQuery(q), &res); err != nil {
		return pagination.Page[*domain.Order]{}, err
	}
	orders, err := ConvertOrders(res.Data)
	if err != nil {
		return pagination.Page[*domain.Order]{}, err
	}
	return pagination.Page[*domain.Order]{Items: orders, Meta: res.Meta.Pagination}, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureClient(); err != nil {
		return nil, err
	}
	var res cmsclient.Single[OrderAttributes]
	q := &cmsclient.Query{Populate: orderPopulate}
	if err := r.client.Get(ctx, orderPath(id), q, &res); err != nil {
		return nil, translate(err)
	}
	if res.Data == nil {
		return nil, ports.ErrNotFound
	}
	return ConvertOrder(*res.Data)
}

// UpdateStatus writes the status then reloads the order with its relations.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error) {
	if err := r.ensureClient(); err != nil {
		return nil, err
	}
	body := cmsclient.Payload[map[string]any]{Data: map[string]any{"status": string(status)}}
	if err := r.client.Put(ctx, orderPath(id), body, nil); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureClient(); err != nil {
		return err
	}
	return translate(r.client.Delete(ctx, orderPath(id), nil))
}

func orderPath(id int64) string {
	return fmt.Sprintf("%s/%d", ordersPath, id)
}

func translate(err error) error {
	if errors.Is(err, cmsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	return err
}

var _ ports.Repository = (*Repository)(nil)
