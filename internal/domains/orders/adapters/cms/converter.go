package cms

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
)

// ConvertOrder flattens a CMS order. Missing nested data falls back to fixed
// defaults; only an unknown status is an error.
func ConvertOrder(rec OrderRecord) (*domain.Order, error) {
	attrs := rec.Attributes
	status, err := domain.StatusFromKey(attrs.Status)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", rec.ID, err)
	}

	items := make([]domain.Item, 0, len(attrs.Items))
	for _, raw := range attrs.Items {
		items = append(items, convertItem(raw))
	}

	metadata := convertMetadata(attrs.Metadata)
	totals := domain.ComputeTotals(items, attrs.ShippingTotal.Decimal(), attrs.DiscountTotal.Decimal())
	if total := attrs.Total.String(); total != "" {
		totals.Total = attrs.Total.Decimal()
	}

	order := &domain.Order{
		ID:         rec.ID,
		Code:       attrs.Code,
		CreatedAt:  timeOrZero(attrs.CreatedAt),
		UpdatedAt:  timeOrZero(attrs.UpdatedAt),
		Status:     status,
		Items:      items,
		Totals:     totals,
		Customer:   convertCustomer(attrs.Customer),
		Payment:    convertPayment(attrs.Payment),
		Shipment:   convertShipment(attrs.Shipment),
		Coupons:    convertCoupons(attrs.Coupons),
		Metadata:   metadata,
		PaymentID:  metadata.Lookup(domain.MetaPaymentID),
		Commission: metadata.Lookup(domain.MetaCommission),
		ERPNumber:  metadata.Lookup(domain.MetaERPNumber),
		ERPOrderID: metadata.Lookup(domain.MetaERPOrderID),
	}
	return order, nil
}

// ConvertOrders converts a page of records, failing on the first bad one.
func ConvertOrders(recs []OrderRecord) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := ConvertOrder(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func convertItem(raw ItemComponent) domain.Item {
	item := domain.Item{
		ID:        raw.ID,
		Quantity:  raw.Quantity,
		UnitPrice: raw.UnitPrice.Decimal(),
		Metadata:  convertMetadata(raw.Metadata),
	}
	if p, ok := raw.Product.Get(); ok {
		item.ProductID = p.ID
		item.ProductName = p.Attributes.Name
		item.SKU = p.Attributes.SKU
	}
	item.Total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	item.ActivationDate = item.Metadata.Lookup(domain.MetaActivationDate)
	return item
}

func convertCustomer(rel *cmsclient.Relation[CustomerAttributes]) domain.Customer {
	entity, ok := rel.Get()
	if !ok {
		return domain.PlaceholderCustomer()
	}
	a := entity.Attributes
	c := domain.Customer{
		ID:           entity.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		Document:     a.Document,
		DocumentType: domain.DocumentType(a.DocumentType),
		HomePhone:    convertPhone(a.HomePhone),
		MobilePhone:  convertPhone(a.MobilePhone),
	}
	return c.WithPlaceholders()
}

func convertPhone(p *PhoneComponent) domain.Phone {
	if p == nil {
		return domain.Phone{}
	}
	return domain.Phone{
		CountryCode: p.CountryCode.String(),
		AreaCode:    p.AreaCode.String(),
		Number:      p.Number.String(),
	}
}

func convertPayment(p *PaymentComponent) domain.Payment {
	if p == nil {
		return domain.Payment{}
	}
	return domain.Payment{
		Method:        domain.PaymentMethod(p.Method),
		Status:        p.Status,
		Installments:  p.Installments,
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
	}
}

func convertShipment(s *ShipmentComponent) domain.Shipment {
	if s == nil {
		return domain.Shipment{}
	}
	out := domain.Shipment{
		Carrier:      s.Carrier,
		TrackingCode: s.TrackingCode,
		TrackingURL:  s.TrackingURL,
		ShippedAt:    s.ShippedAt,
		DeliveredAt:  s.DeliveredAt,
	}
	if a := s.Address; a != nil {
		out.Address = domain.Address{
			Street:     a.Street,
			Number:     a.Number.String(),
			Complement: a.Complement,
			District:   a.District,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode.String(),
		}
	}
	return out
}

func convertCoupons(rel *cmsclient.RelationList[CouponAttributes]) []domain.Coupon {
	entities := rel.All()
	out := make([]domain.Coupon, 0, len(entities))
	for _, e := range entities {
		out = append(out, domain.Coupon{
			ID:           e.ID,
			Code:         e.Attributes.Code,
			DiscountType: e.Attributes.DiscountType,
			Value:        e.Attributes.Value.Decimal(),
		})
	}
	return out
}

func convertMetadata(raw []MetadataComponent) domain.Metadata {
	out := make(domain.Metadata, 0, len(raw))
	for _, m := range raw {
		out = append(out, domain.MetadataEntry{Key: m.Key, Type: m.Type, Value: m.Value.String()})
	}
	return out
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
