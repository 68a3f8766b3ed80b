package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// ProductForm is the payload of the product editor. Prices are checked by the
// service since the validator cannot compare decimals.
type ProductForm struct {
	Name             string          `json:"name" validate:"required,max=200"`
	Slug             string          `json:"slug" validate:"required,max=200"`
	Description      string          `json:"description" validate:"max=5000"`
	SKU              string          `json:"sku" validate:"required,max=64"`
	Price            decimal.Decimal `json:"price"`
	PromotionalPrice decimal.Decimal `json:"promotionalPrice"`
	Stock            int             `json:"stock" validate:"gte=0"`
	CategoryID       int64           `json:"categoryId" validate:"omitempty,gt=0"`
	ImageIDs         []int64         `json:"imageIds" validate:"dive,gt=0"`
}

type Service interface {
	List(ctx context.Context, q ListQuery) (pagination.Page[*domain.Product], error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, form ProductForm) (*domain.Product, error)
	Update(ctx context.Context, id int64, form ProductForm) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Publish(ctx context.Context, id int64) (*domain.Product, error)
	Unpublish(ctx context.Context, id int64) (*domain.Product, error)
}
