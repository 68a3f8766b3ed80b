package mapper

import (
	"time"

	"github.com/Apurer/shop-admin/internal/domains/coupons/domain"
	"github.com/Apurer/shop-admin/internal/shared/masks"
)

type CouponView struct {
	ID                int64      `json:"id"`
	Code              string     `json:"code"`
	Description       string     `json:"description"`
	DiscountType      string     `json:"discountType"`
	DiscountTypeLabel string     `json:"discountTypeLabel"`
	Value             string     `json:"value"`
	ValueFormatted    string     `json:"valueFormatted"`
	MinimumOrder      string     `json:"minimumOrder"`
	StartsAt          *time.Time `json:"startsAt,omitempty"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
	UsageLimit        int        `json:"usageLimit"`
	Active            bool       `json:"active"`
	Usable            bool       `json:"usable"`
}

// ToCouponView formats the value as money or percentage depending on the type.
func ToCouponView(c *domain.Coupon, now time.Time) CouponView {
	view := CouponView{
		ID:                c.ID,
		Code:              c.Code,
		Description:       c.Description,
		DiscountType:      string(c.DiscountType),
		DiscountTypeLabel: c.DiscountType.Label(),
		Value:             c.Value.StringFixed(2),
		MinimumOrder:      c.MinimumOrder.StringFixed(2),
		StartsAt:          c.StartsAt,
		ExpiresAt:         c.ExpiresAt,
		UsageLimit:        c.UsageLimit,
		Active:            c.Active,
		Usable:            c.Usable(now),
	}
	if c.DiscountType == domain.DiscountPercentage {
		view.ValueFormatted = masks.Percentage(c.Value)
	} else {
		view.ValueFormatted = masks.Currency(c.Value)
	}
	return view
}
