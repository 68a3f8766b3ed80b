package cms

import (
	"context"
	"errors"
	"fmt"
	"time"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	"github.com/Apurer/shop-admin/internal/domains/products/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const productsPath = "/products"

var productPopulate = map[string]any{
	"category": "*",
	"images":   "*",
}

type Repository struct {
	res *cmsclient.Resource[ProductAttributes]
	now func() time.Time
}

func NewRepository(client *cmsclient.Client) *Repository {
	return &Repository{
		res: cmsclient.NewResource[ProductAttributes](client, productsPath),
		now: time.Now,
	}
}

// BuildQuery lists drafts too, newest first, matching Search against name or SKU.
func BuildQuery(q ports.ListQuery) *cmsclient.Query {
	query := &cmsclient.Query{
		Sort:             []string{"updatedAt:desc"},
		Page:             q.Page,
		PageSize:         q.PageSize,
		Populate:         productPopulate,
		PublicationState: "preview",
	}
	if q.Search != "" {
		query.Filters = cmsclient.Filters{"$or": []any{
			map[string]any{"name": map[string]any{"$containsi": q.Search}},
			map[string]any{"sku": map[string]any{"$containsi": q.Search}},
		}}
	}
	return query
}

func (r *Repository) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.Product], error) {
	res, err := r.res.List(ctx, BuildQuery(q))
	if err != nil {
		return pagination.Page[*domain.Product]{}, err
	}
	return pagination.Page[*domain.Product]{Items: ConvertProducts(res.Data), Meta: res.Meta.Pagination}, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	rec, err := r.res.Get(ctx, id, &cmsclient.Query{Populate: productPopulate, PublicationState: "preview"})
	if err != nil {
		return nil, translate(err)
	}
	return ConvertProduct(rec), nil
}

// Create stores the product as a draft.
func (r *Repository) Create(ctx context.Context, form ports.ProductForm) (*domain.Product, error) {
	rec, err := r.res.Create(ctx, productCreate{productWrite: toWrite(form)})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, rec.ID)
}

func (r *Repository) Update(ctx context.Context, id int64, form ports.ProductForm) (*domain.Product, error) {
	if _, err := r.res.Update(ctx, id, toWrite(form)); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return translate(r.res.Delete(ctx, id))
}

func (r *Repository) SetPublished(ctx context.Context, id int64, published bool) (*domain.Product, error) {
	if _, err := r.res.SetPublished(ctx, id, published, r.now()); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

func translate(err error) error {
	if errors.Is(err, cmsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	return err
}

var _ ports.Repository = (*Repository)(nil)
