package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListQuery_TransitionsResetPage(t *testing.T) {
	base := NewListQuery(10).WithPage(4)
	require.Equal(t, 4, base.Page)

	transitions := map[string]func(ListQuery) ListQuery{
		"search":   func(q ListQuery) ListQuery { return q.WithSearch("ana") },
		"status":   func(q ListQuery) ListQuery { return q.WithStatusTab(StatusPaid) },
		"payment":  func(q ListQuery) ListQuery { return q.WithPaymentMethod(PaymentPix) },
		"dates":    func(q ListQuery) ListQuery { return q.WithDateRange(time.Now().Add(-time.Hour), time.Now()) },
		"sort":     func(q ListQuery) ListQuery { return q.WithSort(Sort{Field: SortCode}) },
		"pageSize": func(q ListQuery) ListQuery { return q.WithPageSize(25) },
	}
	for name, fn := range transitions {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 1, fn(base).Page)
		})
	}
}

func TestListQuery_WithPageKeepsFilters(t *testing.T) {
	q := NewListQuery(10).WithSearch("ana").WithStatusTab(StatusPaid).WithPage(3)
	require.Equal(t, 3, q.Page)
	require.Equal(t, "ana", q.Search)
	require.Equal(t, StatusPaid, q.StatusTab)
	require.Equal(t, 1, q.WithPage(-2).Page)
}

func TestParseSort(t *testing.T) {
	s, err := ParseSort("")
	require.NoError(t, err)
	require.Equal(t, DefaultSort(), s)

	s, err = ParseSort("code:asc")
	require.NoError(t, err)
	require.Equal(t, Sort{Field: SortCode}, s)
	require.Equal(t, "code:asc", s.String())

	_, err = ParseSort("total:desc")
	require.ErrorIs(t, err, ErrInvalidSort)
	_, err = ParseSort("code:sideways")
	require.ErrorIs(t, err, ErrInvalidSort)
}

func TestListQueryValidate(t *testing.T) {
	require.NoError(t, NewListQuery(10).Validate())
	require.ErrorIs(t, NewListQuery(10).WithStatusTab("LOST").Validate(), ErrUnknownStatus)
	now := time.Now()
	require.Error(t, NewListQuery(10).WithDateRange(now, now.Add(-time.Hour)).Validate())
}
