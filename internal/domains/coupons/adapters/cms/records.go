package cms

import (
	"time"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
)

type CouponRecord = cmsclient.Entity[CouponAttributes]

type CouponAttributes struct {
	Code         string               `json:"code"`
	Description  string               `json:"description"`
	DiscountType string               `json:"discountType"`
	Value        cmsclient.FlexString `json:"value"`
	MinimumOrder cmsclient.FlexString `json:"minimumOrder"`
	StartsAt     *time.Time           `json:"startsAt"`
	ExpiresAt    *time.Time           `json:"expiresAt"`
	UsageLimit   int                  `json:"usageLimit"`
	Active       bool                 `json:"active"`
}

type couponWrite struct {
	Code         string     `json:"code"`
	Description  string     `json:"description"`
	DiscountType string     `json:"discountType"`
	Value        string     `json:"value"`
	MinimumOrder string     `json:"minimumOrder"`
	StartsAt     *time.Time `json:"startsAt"`
	ExpiresAt    *time.Time `json:"expiresAt"`
	UsageLimit   int        `json:"usageLimit"`
	Active       bool       `json:"active"`
}
