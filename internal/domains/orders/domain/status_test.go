package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("PAID")
	require.NoError(t, err)
	require.Equal(t, StatusPaid, s)

	s, err = ParseStatus(" shipping_last_step ")
	require.NoError(t, err)
	require.Equal(t, StatusShippingLastStep, s)

	_, err = ParseStatus("LOST")
	require.ErrorIs(t, err, ErrUnknownStatus)
	_, err = ParseStatus("")
	require.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatusFromKey(t *testing.T) {
	s, err := StatusFromKey("SHIPPING_LAST_STEP")
	require.NoError(t, err)
	require.Equal(t, StatusShippingLastStep, s)

	for _, raw := range []string{"paid", " PAID", "Pago", ""} {
		_, err := StatusFromKey(raw)
		require.ErrorIs(t, err, ErrUnknownStatus, raw)
	}
}

func TestStatusesMatchingLabel(t *testing.T) {
	cases := []struct {
		search string
		want   []Status
	}{
		{"Pago", []Status{StatusPaid}},
		{"pago", []Status{StatusPaid}},
		{"concluido", []Status{StatusCompleted}},
		{"CONCLUÍDO", []Status{StatusCompleted}},
		{"ado", []Status{StatusCanceled, StatusRefunded}},
		{"entrega", []Status{StatusShippingLastStep}},
		{"xyz", nil},
		{"   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.search, func(t *testing.T) {
			require.Equal(t, tc.want, StatusesMatchingLabel(tc.search))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "Saiu para entrega", StatusShippingLastStep.Label())
	require.Equal(t, "WHATEVER", Status("WHATEVER").Label())
	require.Len(t, AllStatuses(), 8)
}
