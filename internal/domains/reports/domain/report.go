package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnknownReportType = errors.New("unknown report type")

type ReportType string

const (
	ReportOrders   ReportType = "orders"
	ReportSales    ReportType = "sales"
	ReportProducts ReportType = "products"
	ReportUsers    ReportType = "users"
)

// ParseReportType accepts the lower-case type names used in report URLs.
func ParseReportType(raw string) (ReportType, error) {
	t := ReportType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case ReportOrders, ReportSales, ReportProducts, ReportUsers:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportType, raw)
}

// Title is the pt-BR heading of the report page.
func (t ReportType) Title() string {
	switch t {
	case ReportOrders:
		return "Relatório de pedidos"
	case ReportSales:
		return "Relatório de vendas"
	case ReportProducts:
		return "Relatório de produtos"
	case ReportUsers:
		return "Relatório de usuários"
	default:
		return string(t)
	}
}

// Row is one aggregated line, e.g. a day, a product or a status.
type Row struct {
	Label  string
	Count  int
	Amount decimal.Decimal
}

type Report struct {
	Type        ReportType
	From        time.Time
	To          time.Time
	Rows        []Row
	TotalCount  int
	TotalAmount decimal.Decimal
}

// NewReport sums the rows into the report totals.
func NewReport(t ReportType, from, to time.Time, rows []Row) *Report {
	r := &Report{Type: t, From: from, To: to, Rows: rows, TotalAmount: decimal.Zero}
	if r.Rows == nil {
		r.Rows = []Row{}
	}
	for _, row := range r.Rows {
		r.TotalCount += row.Count
		r.TotalAmount = r.TotalAmount.Add(row.Amount)
	}
	return r
}
