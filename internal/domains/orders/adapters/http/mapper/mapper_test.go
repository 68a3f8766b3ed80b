package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-admin/internal/domains/orders/application"
	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:     1,
		Code:   "PED-1",
		Status: domain.StatusShipping,
		Items: []domain.Item{{
			ID:        1,
			Quantity:  1,
			UnitPrice: decimal.RequireFromString("1234.5"),
			Total:     decimal.RequireFromString("1234.5"),
			Metadata:  domain.Metadata{{Key: domain.MetaActivationDate, Value: "2030-01-01"}},
		}},
		Totals:   domain.Totals{Total: decimal.RequireFromString("1234.5")},
		Customer: domain.PlaceholderCustomer(),
		Payment:  domain.Payment{Method: domain.PaymentCreditCard},
		Shipment: domain.Shipment{Address: domain.Address{PostalCode: "01001000"}},
	}
}

func TestToDetail(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := ToDetail(sampleOrder(), now)

	require.Equal(t, StatusView{Key: "SHIPPING", Label: "Em transporte"}, d.Status)
	require.Equal(t, "Não Informado Junior", d.CustomerName)
	require.Equal(t, "Cartão de crédito", d.PaymentMethod)
	require.Equal(t, Money{Amount: "1234.50", Formatted: "R$ 1.234,50"}, d.Total)
	require.Equal(t, "+55 (00) 00000-0000", d.Customer.MobilePhone.Formatted)
	require.Equal(t, "000.000.000-00", d.Customer.DocumentFormatted)
	require.Equal(t, "01001-000", d.Shipment.PostalCode)
	require.NotNil(t, d.NextActivationDate)
	require.Equal(t, 2030, d.NextActivationDate.Year())
	require.NotNil(t, d.Coupons)
}

func TestToListingView(t *testing.T) {
	snap := application.ListingSnapshot{
		Query: domain.NewListQuery(10).WithStatusTab(domain.StatusPaid),
		Page: pagination.Page[*domain.Order]{
			Items: []*domain.Order{sampleOrder()},
			Meta:  pagination.Meta{Page: 1, PageSize: 10, PageCount: 1, Total: 1},
		},
		Pending: &application.PendingAction{Token: "t", Kind: application.ActionDelete, OrderID: 1, Prompt: "?"},
	}
	v := ToListingView(snap)
	require.Equal(t, "PAID", v.Filters.Status)
	require.Equal(t, "createdAt:desc", v.Filters.Sort)
	require.Len(t, v.Orders, 1)
	require.Equal(t, 1, v.Pagination.Total)
	require.Equal(t, "delete", v.Pending.Kind)
	require.Nil(t, v.Pending.Status)
	require.Nil(t, v.FetchedAt)
	require.Len(t, v.StatusTabs, 8)
}

func TestListingPatchToChange(t *testing.T) {
	status, method, from, to, sort, page := "all", "pix", "2024-01-01", "2024-01-31", "code:asc", 3
	change, err := ListingPatch{Status: &status, PaymentMethod: &method, From: &from, To: &to, Sort: &sort, Page: &page}.ToChange()
	require.NoError(t, err)
	require.Equal(t, domain.Status(""), *change.StatusTab)
	require.Equal(t, domain.PaymentPix, *change.PaymentMethod)
	require.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), change.DateRange[1])
	require.Equal(t, domain.Sort{Field: "code"}, *change.Sort)
	require.Equal(t, 3, *change.Page)
	require.Nil(t, change.Search)
}

func TestListingPatchToChange_FieldErrors(t *testing.T) {
	status, method, from, size := "LOST", "cheque", "01-2024", 500
	_, err := ListingPatch{Status: &status, PaymentMethod: &method, From: &from, PageSize: &size}.ToChange()
	fields, ok := validation.As(err)
	require.True(t, ok)
	require.Contains(t, fields, "status")
	require.Contains(t, fields, "paymentMethod")
	require.Contains(t, fields, "from")
	require.Contains(t, fields, "pageSize")
}
