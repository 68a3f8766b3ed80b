package cms

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
)

func TestBuildFilters_Empty(t *testing.T) {
	require.Nil(t, BuildFilters(domain.NewListQuery(10)))
}

func TestBuildFilters_SearchResolvesStatusLabels(t *testing.T) {
	filters := BuildFilters(domain.NewListQuery(10).WithSearch("Pago"))
	or, ok := filters["$or"].([]any)
	require.True(t, ok)
	require.Len(t, or, 5)
	require.Equal(t, map[string]any{"status": map[string]any{"$in": []any{"PAID"}}}, or[4])
	require.Equal(t, map[string]any{"code": map[string]any{"$containsi": "Pago"}}, or[0])
}

func TestBuildFilters_SearchWithoutStatusMatch(t *testing.T) {
	filters := BuildFilters(domain.NewListQuery(10).WithSearch("ana@"))
	or := filters["$or"].([]any)
	require.Len(t, or, 4)
}

func TestBuildQuery_Encoded(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	q := domain.NewListQuery(20).
		WithSearch("Pago").
		WithStatusTab(domain.StatusPaid).
		WithPaymentMethod(domain.PaymentPix).
		WithDateRange(from, to).
		WithPage(2)

	encoded, err := BuildQuery(q).Encode()
	require.NoError(t, err)
	values, err := url.ParseQuery(encoded)
	require.NoError(t, err)

	require.Equal(t, "Pago", values.Get("filters[$or][0][code][$containsi]"))
	require.Equal(t, "Pago", values.Get("filters[$or][3][customer][email][$containsi]"))
	require.Equal(t, "PAID", values.Get("filters[$or][4][status][$in][0]"))
	require.Equal(t, "PAID", values.Get("filters[status][$eq]"))
	require.Equal(t, "pix", values.Get("filters[payment][method][$eq]"))
	require.Equal(t, "2024-01-01T00:00:00Z", values.Get("filters[createdAt][$gte]"))
	require.Equal(t, "2024-01-31T23:59:59Z", values.Get("filters[createdAt][$lte]"))
	require.Equal(t, "createdAt:desc", values.Get("sort[0]"))
	require.Equal(t, "2", values.Get("pagination[page]"))
	require.Equal(t, "20", values.Get("pagination[pageSize]"))
	require.Equal(t, "*", values.Get("populate[payment]"))
}
