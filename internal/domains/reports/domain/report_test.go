package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportType(t *testing.T) {
	got, err := ParseReportType(" Sales ")
	require.NoError(t, err)
	assert.Equal(t, ReportSales, got)

	_, err = ParseReportType("inventory")
	assert.ErrorIs(t, err, ErrUnknownReportType)
}

func TestNewReport_Totals(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewReport(ReportSales, day, day.AddDate(0, 0, 7), []Row{
		{Label: "01/01", Count: 2, Amount: decimal.RequireFromString("10.50")},
		{Label: "02/01", Count: 3, Amount: decimal.RequireFromString("4.50")},
	})
	assert.Equal(t, 5, r.TotalCount)
	assert.Equal(t, "15.00", r.TotalAmount.StringFixed(2))

	empty := NewReport(ReportUsers, day, day, nil)
	assert.NotNil(t, empty.Rows)
	assert.True(t, empty.TotalAmount.IsZero())
}
