package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/reports/domain"
)

func TestSource_Rows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/sales", r.URL.Path)
		assert.Equal(t, "2024-01-01T00:00:00Z", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-01-31T00:00:00Z", r.URL.Query().Get("to"))
		_, _ = w.Write([]byte(`{"data":{"rows":[{"label":"01/01","count":2,"amount":"150,90"},{"label":"02/01","count":1,"amount":10}]}}`))
	}))
	defer srv.Close()

	client, err := cmsclient.NewClient(srv.URL)
	require.NoError(t, err)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows, err := NewSource(client).Rows(context.Background(), domain.ReportSales, from, from.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "150.90", rows[0].Amount.StringFixed(2))
	assert.Equal(t, "10.00", rows[1].Amount.StringFixed(2))
}
