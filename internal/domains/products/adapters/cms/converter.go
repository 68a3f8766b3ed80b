package cms

import (
	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	"github.com/Apurer/shop-admin/internal/domains/products/ports"
)

// ConvertProduct flattens a CMS product. A missing category is "" and missing images an empty list.
func ConvertProduct(rec ProductRecord) *domain.Product {
	a := rec.Attributes
	p := &domain.Product{
		ID:               rec.ID,
		Name:             a.Name,
		Slug:             a.Slug,
		Description:      a.Description,
		SKU:              a.SKU,
		Price:            a.Price.Decimal(),
		PromotionalPrice: a.PromotionalPrice.Decimal(),
		Stock:            a.Stock,
		ImageURLs:        cmsclient.MediaURLs(a.Images),
		Published:        a.PublishedAt != nil,
		PublishedAt:      a.PublishedAt,
	}
	if c, ok := a.Category.Get(); ok {
		p.Category = c.Attributes.Name
	}
	if a.UpdatedAt != nil {
		p.UpdatedAt = *a.UpdatedAt
	}
	return p
}

func ConvertProducts(recs []ProductRecord) []*domain.Product {
	out := make([]*domain.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ConvertProduct(rec))
	}
	return out
}

func toWrite(form ports.ProductForm) productWrite {
	w := productWrite{
		Name:        form.Name,
		Slug:        form.Slug,
		Description: form.Description,
		SKU:         form.SKU,
		Price:       form.Price.StringFixed(2),
		Stock:       form.Stock,
		Images:      append([]int64{}, form.ImageIDs...),
	}
	if form.PromotionalPrice.IsPositive() {
		promo := form.PromotionalPrice.StringFixed(2)
		w.PromotionalPrice = &promo
	}
	if form.CategoryID > 0 {
		id := form.CategoryID
		w.Category = &id
	}
	return w
}
