package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	"github.com/Apurer/shop-admin/internal/shared/masks"
)

// ProductView carries both raw amounts and their display strings.
type ProductView struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Slug               string     `json:"slug"`
	Description        string     `json:"description"`
	SKU                string     `json:"sku"`
	Price              string     `json:"price"`
	PriceFormatted     string     `json:"priceFormatted"`
	PromotionalPrice   string     `json:"promotionalPrice,omitempty"`
	PromotionFormatted string     `json:"promotionalPriceFormatted,omitempty"`
	Discount           string     `json:"discountPercentage"`
	DiscountFormatted  string     `json:"discountFormatted"`
	Stock              int        `json:"stock"`
	Category           string     `json:"category"`
	ImageURLs          []string   `json:"imageUrls"`
	Published          bool       `json:"published"`
	PublishedAt        *time.Time `json:"publishedAt,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func ToProductView(p *domain.Product) ProductView {
	discount := domain.DiscountPercentage(p.Price, p.PromotionalPrice)
	view := ProductView{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		SKU:               p.SKU,
		Price:             p.Price.StringFixed(2),
		PriceFormatted:    masks.Currency(p.Price),
		Discount:          discountString(discount),
		DiscountFormatted: masks.Percentage(discount),
		Stock:             p.Stock,
		Category:          p.Category,
		ImageURLs:         p.ImageURLs,
		Published:         p.Published,
		PublishedAt:       p.PublishedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if view.ImageURLs == nil {
		view.ImageURLs = []string{}
	}
	if p.PromotionalPrice.IsPositive() {
		view.PromotionalPrice = p.PromotionalPrice.StringFixed(2)
		view.PromotionFormatted = masks.Currency(p.PromotionalPrice)
	}
	return view
}

// discountString renders "0" for no discount and two decimals otherwise.
func discountString(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	return d.StringFixed(2)
}
