package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Status enumerates the order lifecycle.
type Status string

const (
	StatusPending          Status = "PENDING"
	StatusPaid             Status = "PAID"
	StatusShipping         Status = "SHIPPING"
	StatusShippingLastStep Status = "SHIPPING_LAST_STEP"
	StatusCompleted        Status = "COMPLETED"
	StatusFailed           Status = "FAILED"
	StatusCanceled         Status = "CANCELED"
	StatusRefunded         Status = "REFUNDED"
)

var ErrUnknownStatus = errors.New("unknown order status")

var statusOrder = []Status{
	StatusPending,
	StatusPaid,
	StatusShipping,
	StatusShippingLastStep,
	StatusCompleted,
	StatusFailed,
	StatusCanceled,
	StatusRefunded,
}

var statusLabels = map[Status]string{
	StatusPending:          "Pendente",
	StatusPaid:             "Pago",
	StatusShipping:         "Em transporte",
	StatusShippingLastStep: "Saiu para entrega",
	StatusCompleted:        "Concluído",
	StatusFailed:           "Falhou",
	StatusCanceled:         "Cancelado",
	StatusRefunded:         "Reembolsado",
}

// AllStatuses returns the lifecycle in display order.
func AllStatuses() []Status {
	return append([]Status(nil), statusOrder...)
}

// StatusFromKey matches raw against the enumerated keys exactly. Records read
// from the CMS go through it so a drifting upstream value fails loudly.
func StatusFromKey(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// ParseStatus reads operator input, ignoring case and surrounding spaces.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := statusLabels[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the pt-BR label shown in the dashboard.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// StatusesMatchingLabel resolves free-text search to the statuses whose label contains it,
// ignoring case and accents ("concluido" finds COMPLETED).
func StatusesMatchingLabel(search string) []Status {
	needle := Fold(search)
	if needle == "" {
		return nil
	}
	var out []Status
	for _, s := range statusOrder {
		if strings.Contains(Fold(statusLabels[s]), needle) {
			out = append(out, s)
		}
	}
	return out
}

// Fold normalizes text for case- and accent-insensitive matching.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
