package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-admin/internal/domains/coupons/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

var ErrNotFound = errors.New("coupon not found")

type ListQuery struct {
	Page     int
	PageSize int
	Search   string
}

type Repository interface {
	List(ctx context.Context, q ListQuery) (pagination.Page[*domain.Coupon], error)
	GetByID(ctx context.Context, id int64) (*domain.Coupon, error)
	Create(ctx context.Context, form CouponForm) (*domain.Coupon, error)
	Update(ctx context.Context, id int64, form CouponForm) (*domain.Coupon, error)
	Delete(ctx context.Context, id int64) error
}
