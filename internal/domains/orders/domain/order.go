// Package domain holds the flat order view used by the admin screens.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the flattened form of a CMS order record.
type Order struct {
	ID        int64
	Code      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Status    Status
	Items     []Item
	Totals    Totals
	Customer  Customer
	Payment   Payment
	Shipment  Shipment
	Coupons   []Coupon
	Metadata  Metadata

	PaymentID  string
	Commission string
	ERPNumber  string
	ERPOrderID string
}

// Item is one order line.
type Item struct {
	ID             int64
	ProductID      int64
	ProductName    string
	SKU            string
	Quantity       int
	UnitPrice      decimal.Decimal
	Total          decimal.Decimal
	Metadata       Metadata
	ActivationDate string
}

// Totals are kept as decimals; nothing here is float arithmetic.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums item totals and applies shipping and discount.
func ComputeTotals(items []Item, shipping, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total)
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(shipping).Sub(discount),
	}
}

// PaymentMethod is the CMS payment method key.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPix        PaymentMethod = "pix"
	PaymentBoleto     PaymentMethod = "boleto"
)

var paymentLabels = map[PaymentMethod]string{
	PaymentCreditCard: "Cartão de crédito",
	PaymentPix:        "Pix",
	PaymentBoleto:     "Boleto",
}

// Label returns the pt-BR label or the raw key for methods the dashboard does not know.
func (m PaymentMethod) Label() string {
	if label, ok := paymentLabels[m]; ok {
		return label
	}
	return string(m)
}

// Known reports whether m is one of the filterable methods.
func (m PaymentMethod) Known() bool {
	_, ok := paymentLabels[m]
	return ok
}

type Payment struct {
	Method        PaymentMethod
	Status        string
	Installments  int
	TransactionID string
	PaidAt        *time.Time
}

type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	PostalCode string
}

type Shipment struct {
	Carrier      string
	TrackingCode string
	TrackingURL  string
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	Address      Address
}

// Coupon is the snapshot of a coupon applied to the order.
type Coupon struct {
	ID           int64
	Code         string
	DiscountType string
	Value        decimal.Decimal
}

// CustomerName joins first and last name.
func (o *Order) CustomerName() string {
	return o.Customer.FullName()
}
