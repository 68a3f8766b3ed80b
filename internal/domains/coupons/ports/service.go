package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-admin/internal/domains/coupons/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// CouponForm is the coupon editor payload.
type CouponForm struct {
	Code         string              `json:"code" validate:"required,max=32"`
	Description  string              `json:"description" validate:"max=255"`
	DiscountType domain.DiscountType `json:"discountType" validate:"required,oneof=percentage fixed"`
	Value        decimal.Decimal     `json:"value"`
	MinimumOrder decimal.Decimal     `json:"minimumOrder"`
	StartsAt     *time.Time          `json:"startsAt"`
	ExpiresAt    *time.Time          `json:"expiresAt"`
	UsageLimit   int                 `json:"usageLimit" validate:"gte=0"`
	Active       bool                `json:"active"`
}

type Service interface {
	List(ctx context.Context, q ListQuery) (pagination.Page[*domain.Coupon], error)
	Get(ctx context.Context, id int64) (*domain.Coupon, error)
	Create(ctx context.Context, form CouponForm) (*domain.Coupon, error)
	Update(ctx context.Context, id int64, form CouponForm) (*domain.Coupon, error)
	Delete(ctx context.Context, id int64) error
}
