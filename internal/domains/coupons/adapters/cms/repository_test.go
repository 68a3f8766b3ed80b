package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/coupons/domain"
	"github.com/Apurer/shop-admin/internal/domains/coupons/ports"
)

func TestRepository_CreateSendsFixedPointAmounts(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coupons", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"id":3,"attributes":{"code":"FRETE10","discountType":"fixed","value":"10.00","minimumOrder":"50.00","active":true}}}`))
	}))
	defer srv.Close()

	client, err := cmsclient.NewClient(srv.URL)
	require.NoError(t, err)
	coupon, err := NewRepository(client).Create(context.Background(), ports.CouponForm{
		Code:         "FRETE10",
		DiscountType: domain.DiscountFixed,
		Value:        decimal.NewFromInt(10),
		MinimumOrder: decimal.NewFromInt(50),
		Active:       true,
	})
	require.NoError(t, err)

	data := got["data"].(map[string]any)
	require.Equal(t, "10.00", data["value"])
	require.Equal(t, "50.00", data["minimumOrder"])
	require.Nil(t, data["expiresAt"])

	require.Equal(t, int64(3), coupon.ID)
	require.True(t, coupon.Value.Equal(decimal.NewFromInt(10)))
	require.Equal(t, domain.DiscountFixed, coupon.DiscountType)
}

func TestRepository_DeleteMissingIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := cmsclient.NewClient(srv.URL)
	require.NoError(t, err)
	err = NewRepository(client).Delete(context.Background(), 8)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
