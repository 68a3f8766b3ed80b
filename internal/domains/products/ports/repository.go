package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

var ErrNotFound = errors.New("product not found")

// ListQuery narrows the product list; Search matches name or SKU.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
}

type Repository interface {
	List(ctx context.Context, q ListQuery) (pagination.Page[*domain.Product], error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, form ProductForm) (*domain.Product, error)
	Update(ctx context.Context, id int64, form ProductForm) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	SetPublished(ctx context.Context, id int64, published bool) (*domain.Product, error)
}
