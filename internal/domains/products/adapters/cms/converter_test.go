package cms

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	"github.com/Apurer/shop-admin/internal/domains/products/ports"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestConvertProduct(t *testing.T) {
	var rec ProductRecord
	require.NoError(t, json.Unmarshal([]byte(`{
	  "id": 12,
	  "attributes": {
	    "name": "Chip 5G", "slug": "chip-5g", "sku": "CHIP-5G", "description": "eSIM",
	    "price": "29.90", "promotionalPrice": 19.9, "stock": 4,
	    "category": {"data": {"id": 1, "attributes": {"name": "Chips"}}},
	    "images": {"data": [
	      {"id": 1, "attributes": {"url": "/uploads/front.png"}},
	      {"id": 2, "attributes": {"url": ""}}
	    ]},
	    "updatedAt": "2024-02-01T00:00:00Z"
	  }
	}`), &rec))

	want := &domain.Product{
		ID:               12,
		Name:             "Chip 5G",
		Slug:             "chip-5g",
		Description:      "eSIM",
		SKU:              "CHIP-5G",
		Price:            decimal.RequireFromString("29.90"),
		PromotionalPrice: decimal.RequireFromString("19.9"),
		Stock:            4,
		Category:         "Chips",
		ImageURLs:        []string{"/uploads/front.png"},
		UpdatedAt:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, ConvertProduct(rec), decimalComparer); diff != "" {
		t.Fatalf("product mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertProduct_Defaults(t *testing.T) {
	var rec ProductRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "attributes": {"name": "Bare"}}`), &rec))

	got := ConvertProduct(rec)
	require.Equal(t, "", got.Category)
	require.NotNil(t, got.ImageURLs)
	require.Empty(t, got.ImageURLs)
	require.True(t, got.Price.IsZero())
}

func TestBuildQuery_SearchesNameAndSKU(t *testing.T) {
	raw, err := BuildQuery(ports.ListQuery{Page: 2, PageSize: 20, Search: "chip"}).Encode()
	require.NoError(t, err)
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)

	require.Equal(t, "chip", values.Get("filters[$or][0][name][$containsi]"))
	require.Equal(t, "chip", values.Get("filters[$or][1][sku][$containsi]"))
	require.Equal(t, "preview", values.Get("publicationState"))
	require.Equal(t, "2", values.Get("pagination[page]"))
}

func TestCreateBody_StartsAsDraft(t *testing.T) {
	body := productCreate{productWrite: toWrite(ports.ProductForm{
		Name:  "Chip",
		Slug:  "chip",
		SKU:   "CHIP",
		Price: decimal.NewFromInt(10),
	})}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	require.JSONEq(t, `{
	  "name": "Chip", "slug": "chip", "description": "", "sku": "CHIP",
	  "price": "10.00", "promotionalPrice": null, "stock": 0,
	  "category": null, "images": [], "publishedAt": null
	}`, string(raw))
}
