package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/shared/masks"
)

// Money carries both the raw decimal and the masked value.
type Money struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

// StatusView pairs the status key with its label.
type StatusView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// OrderSummary is one row of the orders table.
type OrderSummary struct {
	ID            int64      `json:"id"`
	Code          string     `json:"code"`
	CreatedAt     time.Time  `json:"createdAt"`
	Status        StatusView `json:"status"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	PaymentMethod string     `json:"paymentMethod"`
	Total         Money      `json:"total"`
	ItemCount     int        `json:"itemCount"`
}

type PhoneView struct {
	CountryCode string `json:"countryCode"`
	AreaCode    string `json:"areaCode"`
	Number      string `json:"number"`
	Formatted   string `json:"formatted"`
}

type CustomerView struct {
	ID                int64     `json:"id,omitempty"`
	Name              string    `json:"name"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Document          string    `json:"document"`
	DocumentType      string    `json:"documentType"`
	DocumentFormatted string    `json:"documentFormatted"`
	HomePhone         PhoneView `json:"homePhone"`
	MobilePhone       PhoneView `json:"mobilePhone"`
}

type ItemView struct {
	ID             int64  `json:"id"`
	ProductID      int64  `json:"productId,omitempty"`
	ProductName    string `json:"productName"`
	SKU            string `json:"sku"`
	Quantity       int    `json:"quantity"`
	UnitPrice      Money  `json:"unitPrice"`
	Total          Money  `json:"total"`
	ActivationDate string `json:"activationDate,omitempty"`
}

type TotalsView struct {
	Subtotal Money `json:"subtotal"`
	Shipping Money `json:"shipping"`
	Discount Money `json:"discount"`
	Total    Money `json:"total"`
}

type PaymentView struct {
	Method        string     `json:"method"`
	MethodLabel   string     `json:"methodLabel"`
	Status        string     `json:"status"`
	Installments  int        `json:"installments"`
	TransactionID string     `json:"transactionId"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

type ShipmentView struct {
	Carrier      string     `json:"carrier"`
	TrackingCode string     `json:"trackingCode"`
	TrackingURL  string     `json:"trackingUrl"`
	ShippedAt    *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
	Street       string     `json:"street"`
	Number       string     `json:"number"`
	Complement   string     `json:"complement"`
	District     string     `json:"district"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	PostalCode   string     `json:"postalCode"`
}

type CouponView struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	DiscountType string `json:"discountType"`
	Value        string `json:"value"`
}

// OrderDetail is the order page.
type OrderDetail struct {
	OrderSummary
	UpdatedAt          time.Time    `json:"updatedAt"`
	Customer           CustomerView `json:"customer"`
	Items              []ItemView   `json:"items"`
	Totals             TotalsView   `json:"totals"`
	Payment            PaymentView  `json:"payment"`
	Shipment           ShipmentView `json:"shipment"`
	Coupons            []CouponView `json:"coupons"`
	PaymentID          string       `json:"paymentId"`
	Commission         string       `json:"commission"`
	ERPNumber          string       `json:"erpNumber"`
	ERPOrderID         string       `json:"erpOrderId"`
	NextActivationDate *time.Time   `json:"nextActivationDate,omitempty"`
}

// NewMoney renders an amount for the dashboard.
func NewMoney(d decimal.Decimal) Money {
	return Money{Amount: d.StringFixed(2), Formatted: masks.Currency(d)}
}

// StatusOf renders a status key with its label.
func StatusOf(s domain.Status) StatusView {
	return StatusView{Key: string(s), Label: s.Label()}
}

// ToSummary maps an order to its table row.
func ToSummary(o *domain.Order) OrderSummary {
	if o == nil {
		return OrderSummary{}
	}
	return OrderSummary{
		ID:            o.ID,
		Code:          o.Code,
		CreatedAt:     o.CreatedAt,
		Status:        StatusOf(o.Status),
		CustomerName:  o.CustomerName(),
		CustomerEmail: o.Customer.Email,
		PaymentMethod: o.Payment.Method.Label(),
		Total:         NewMoney(o.Totals.Total),
		ItemCount:     len(o.Items),
	}
}

// ToDetail maps an order to its detail page; now picks the next activation date.
func ToDetail(o *domain.Order, now time.Time) OrderDetail {
	if o == nil {
		return OrderDetail{}
	}
	d := OrderDetail{
		OrderSummary: ToSummary(o),
		UpdatedAt:    o.UpdatedAt,
		Customer:     toCustomer(o.Customer),
		Items:        make([]ItemView, 0, len(o.Items)),
		Totals: TotalsView{
			Subtotal: NewMoney(o.Totals.Subtotal),
			Shipping: NewMoney(o.Totals.Shipping),
			Discount: NewMoney(o.Totals.Discount),
			Total:    NewMoney(o.Totals.Total),
		},
		Payment: PaymentView{
			Method:        string(o.Payment.Method),
			MethodLabel:   o.Payment.Method.Label(),
			Status:        o.Payment.Status,
			Installments:  o.Payment.Installments,
			TransactionID: o.Payment.TransactionID,
			PaidAt:        o.Payment.PaidAt,
		},
		Shipment: ShipmentView{
			Carrier:      o.Shipment.Carrier,
			TrackingCode: o.Shipment.TrackingCode,
			TrackingURL:  o.Shipment.TrackingURL,
			ShippedAt:    o.Shipment.ShippedAt,
			DeliveredAt:  o.Shipment.DeliveredAt,
			Street:       o.Shipment.Address.Street,
			Number:       o.Shipment.Address.Number,
			Complement:   o.Shipment.Address.Complement,
			District:     o.Shipment.Address.District,
			City:         o.Shipment.Address.City,
			State:        o.Shipment.Address.State,
			PostalCode:   masks.PostalCode(o.Shipment.Address.PostalCode),
		},
		Coupons:    make([]CouponView, 0, len(o.Coupons)),
		PaymentID:  o.PaymentID,
		Commission: o.Commission,
		ERPNumber:  o.ERPNumber,
		ERPOrderID: o.ERPOrderID,
	}
	for _, it := range o.Items {
		d.Items = append(d.Items, ItemView{
			ID:             it.ID,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			SKU:            it.SKU,
			Quantity:       it.Quantity,
			UnitPrice:      NewMoney(it.UnitPrice),
			Total:          NewMoney(it.Total),
			ActivationDate: it.ActivationDate,
		})
	}
	for _, c := range o.Coupons {
		d.Coupons = append(d.Coupons, CouponView{ID: c.ID, Code: c.Code, DiscountType: c.DiscountType, Value: c.Value.String()})
	}
	if next, ok := domain.NextActivationDate(o, now); ok {
		d.NextActivationDate = &next
	}
	return d
}

func toCustomer(c domain.Customer) CustomerView {
	return CustomerView{
		ID:                c.ID,
		Name:              c.FullName(),
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Document:          c.Document,
		DocumentType:      string(c.DocumentType),
		DocumentFormatted: masks.Document(c.Document, string(c.DocumentType)),
		HomePhone:         toPhone(c.HomePhone),
		MobilePhone:       toPhone(c.MobilePhone),
	}
}

func toPhone(p domain.Phone) PhoneView {
	return PhoneView{
		CountryCode: p.CountryCode,
		AreaCode:    p.AreaCode,
		Number:      p.Number,
		Formatted:   masks.Phone(p.CountryCode, p.AreaCode, p.Number),
	}
}
