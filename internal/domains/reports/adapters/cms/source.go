package cms

import (
	"context"
	"net/url"
	"time"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/reports/domain"
	"github.com/Apurer/shop-admin/internal/domains/reports/ports"
)

// Source reads aggregated report rows from the CMS /reports/:type endpoint.
type Source struct {
	client *cmsclient.Client
}

func NewSource(client *cmsclient.Client) *Source {
	return &Source{client: client}
}

type rowRecord struct {
	Label  string               `json:"label"`
	Count  int                  `json:"count"`
	Amount cmsclient.FlexString `json:"amount"`
}

type reportEnvelope struct {
	Data struct {
		Rows []rowRecord `json:"rows"`
	} `json:"data"`
}

func (s *Source) Rows(ctx context.Context, t domain.ReportType, from, to time.Time) ([]domain.Row, error) {
	q := &cmsclient.Query{Params: url.Values{
		"from": {from.UTC().Format(time.RFC3339)},
		"to":   {to.UTC().Format(time.RFC3339)},
	}}
	var env reportEnvelope
	if err := s.client.Get(ctx, "/reports/"+string(t), q, &env); err != nil {
		return nil, err
	}
	rows := make([]domain.Row, 0, len(env.Data.Rows))
	for _, r := range env.Data.Rows {
		rows = append(rows, domain.Row{Label: r.Label, Count: r.Count, Amount: r.Amount.Decimal()})
	}
	return rows, nil
}

var _ ports.Source = (*Source)(nil)
