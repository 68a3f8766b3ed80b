package cms

import (
	"time"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
)

// OrderRecord is an order as the CMS returns it with every relation populated.
type OrderRecord = cmsclient.Entity[OrderAttributes]

type OrderAttributes struct {
	Code          string                                    `json:"code"`
	Status        string                                    `json:"status"`
	CreatedAt     *time.Time                                `json:"createdAt"`
	UpdatedAt     *time.Time                                `json:"updatedAt"`
	Items         []ItemComponent                           `json:"items"`
	ShippingTotal cmsclient.FlexString                      `json:"shippingTotal"`
	DiscountTotal cmsclient.FlexString                      `json:"discountTotal"`
	Total         cmsclient.FlexString                      `json:"total"`
	Customer      *cmsclient.Relation[CustomerAttributes]   `json:"customer"`
	Payment       *PaymentComponent                         `json:"payment"`
	Shipment      *ShipmentComponent                        `json:"shipment"`
	Coupons       *cmsclient.RelationList[CouponAttributes] `json:"coupons"`
	Metadata      []MetadataComponent                       `json:"metadata"`
}

type ItemComponent struct {
	ID        int64                                  `json:"id"`
	Product   *cmsclient.Relation[ProductAttributes] `json:"product"`
	Quantity  int                                    `json:"quantity"`
	UnitPrice cmsclient.FlexString                   `json:"unitPrice"`
	Metadata  []MetadataComponent                    `json:"metadata"`
}

type ProductAttributes struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

type CustomerAttributes struct {
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Email        string          `json:"email"`
	Document     string          `json:"document"`
	DocumentType string          `json:"documentType"`
	HomePhone    *PhoneComponent `json:"homePhone"`
	MobilePhone  *PhoneComponent `json:"mobilePhone"`
}

type PhoneComponent struct {
	CountryCode cmsclient.FlexString `json:"countryCode"`
	AreaCode    cmsclient.FlexString `json:"areaCode"`
	Number      cmsclient.FlexString `json:"number"`
}

type PaymentComponent struct {
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	Installments  int        `json:"installments"`
	TransactionID string     `json:"transactionId"`
	PaidAt        *time.Time `json:"paidAt"`
}

type ShipmentComponent struct {
	Carrier      string            `json:"carrier"`
	TrackingCode string            `json:"trackingCode"`
	TrackingURL  string            `json:"trackingUrl"`
	ShippedAt    *time.Time        `json:"shippedAt"`
	DeliveredAt  *time.Time        `json:"deliveredAt"`
	Address      *AddressComponent `json:"address"`
}

type AddressComponent struct {
	Street     string               `json:"street"`
	Number     cmsclient.FlexString `json:"number"`
	Complement string               `json:"complement"`
	District   string               `json:"district"`
	City       string               `json:"city"`
	State      string               `json:"state"`
	PostalCode cmsclient.FlexString `json:"postalCode"`
}

type CouponAttributes struct {
	Code         string               `json:"code"`
	DiscountType string               `json:"discountType"`
	Value        cmsclient.FlexString `json:"value"`
}

type MetadataComponent struct {
	Key   string               `json:"key"`
	Type  string               `json:"type"`
	Value cmsclient.FlexString `json:"value"`
}
