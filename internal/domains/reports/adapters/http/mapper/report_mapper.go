package mapper

import (
	"time"

	"github.com/Apurer/shop-admin/internal/domains/reports/domain"
	"github.com/Apurer/shop-admin/internal/shared/masks"
)

type RowView struct {
	Label           string `json:"label"`
	Count           int    `json:"count"`
	Amount          string `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
}

type ReportView struct {
	Type                 string    `json:"type"`
	Title                string    `json:"title"`
	From                 time.Time `json:"from"`
	To                   time.Time `json:"to"`
	Rows                 []RowView `json:"rows"`
	TotalCount           int       `json:"totalCount"`
	TotalAmount          string    `json:"totalAmount"`
	TotalAmountFormatted string    `json:"totalAmountFormatted"`
}

func ToReportView(r *domain.Report) ReportView {
	view := ReportView{
		Type:                 string(r.Type),
		Title:                r.Type.Title(),
		From:                 r.From,
		To:                   r.To,
		Rows:                 make([]RowView, 0, len(r.Rows)),
		TotalCount:           r.TotalCount,
		TotalAmount:          r.TotalAmount.StringFixed(2),
		TotalAmountFormatted: masks.Currency(r.TotalAmount),
	}
	for _, row := range r.Rows {
		view.Rows = append(view.Rows, RowView{
			Label:           row.Label,
			Count:           row.Count,
			Amount:          row.Amount.StringFixed(2),
			AmountFormatted: masks.Currency(row.Amount),
		})
	}
	return view
}
