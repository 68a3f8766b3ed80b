package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

var ErrNotFound = errors.New("banner collection not found")

// ListQuery narrows the collection list.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
}

// Repository abstracts banner collection persistence.
type Repository interface {
	List(ctx context.Context, q ListQuery) (pagination.Page[*domain.BannerCollection], error)
	GetByID(ctx context.Context, id int64) (*domain.BannerCollection, error)
	Create(ctx context.Context, form BannerForm) (*domain.BannerCollection, error)
	Update(ctx context.Context, id int64, form BannerForm) (*domain.BannerCollection, error)
	Delete(ctx context.Context, id int64) error
	SetPublished(ctx context.Context, id int64, published bool) (*domain.BannerCollection, error)
}
