package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Product is a catalog entry as the admin edits it.
type Product struct {
	ID               int64
	Name             string
	Slug             string
	Description      string
	SKU              string
	Price            decimal.Decimal
	PromotionalPrice decimal.Decimal
	Stock            int
	Category         string
	ImageURLs        []string
	Published        bool
	PublishedAt      *time.Time
	UpdatedAt        time.Time
}

// OnSale reports whether the promotional price undercuts the regular one.
func (p *Product) OnSale() bool {
	return DiscountPercentage(p.Price, p.PromotionalPrice).IsPositive()
}

// DiscountPercentage is how much promotional takes off price, in percent rounded
// to two places. It is zero when either price is not positive or when promotional
// does not undercut price.
func DiscountPercentage(price, promotional decimal.Decimal) decimal.Decimal {
	if !price.IsPositive() || !promotional.IsPositive() || promotional.GreaterThanOrEqual(price) {
		return decimal.Zero
	}
	return price.Sub(promotional).Div(price).Mul(hundred).Round(2)
}
