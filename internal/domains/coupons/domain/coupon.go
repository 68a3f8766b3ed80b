package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Label is the pt-BR name shown in the coupon table.
func (t DiscountType) Label() string {
	switch t {
	case DiscountPercentage:
		return "Percentual"
	case DiscountFixed:
		return "Valor fixo"
	default:
		return string(t)
	}
}

// Coupon is a storefront discount code.
type Coupon struct {
	ID           int64
	Code         string
	Description  string
	DiscountType DiscountType
	Value        decimal.Decimal
	MinimumOrder decimal.Decimal
	StartsAt     *time.Time
	ExpiresAt    *time.Time
	UsageLimit   int
	Active       bool
}

// Expired reports whether the coupon can no longer be used at now.
func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// Usable is true when the coupon is active and now is inside its validity window.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.Active || c.Expired(now) {
		return false
	}
	return c.StartsAt == nil || !now.Before(*c.StartsAt)
}
