// Package masks formats raw numbers and digit strings for display in the dashboard.
// Every function is pure; inputs of unexpected length come back as their stripped digits.
package masks

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Digits drops every non-digit rune.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Currency renders a BRL amount, e.g. R$ 1.234,56.
func Currency(v decimal.Decimal) string {
	v = v.Round(2)
	neg := v.IsNegative()
	intPart, frac, _ := strings.Cut(v.Abs().StringFixed(2), ".")
	out := "R$ " + groupThousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// CurrencyFromCents renders an amount stored in cents.
func CurrencyFromCents(cents int64) string {
	return Currency(decimal.New(cents, -2))
}

// Percentage renders a percentage with two decimals and a comma separator, e.g. 20,00%.
func Percentage(v decimal.Decimal) string {
	return strings.Replace(v.StringFixed(2), ".", ",", 1) + "%"
}

// CPF renders 11 digits as 000.000.000-00.
func CPF(raw string) string {
	d := Digits(raw)
	if len(d) != 11 {
		return d
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// CNPJ renders 14 digits as 00.000.000/0000-00.
func CNPJ(raw string) string {
	d := Digits(raw)
	if len(d) != 14 {
		return d
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// Document picks the CPF or CNPJ mask. An empty docType is inferred from the digit count.
func Document(raw, docType string) string {
	switch strings.ToLower(strings.TrimSpace(docType)) {
	case "cnpj":
		return CNPJ(raw)
	case "cpf":
		return CPF(raw)
	}
	if len(Digits(raw)) == 14 {
		return CNPJ(raw)
	}
	return CPF(raw)
}

// PostalCode renders a CEP as 00000-000.
func PostalCode(raw string) string {
	d := Digits(raw)
	if len(d) != 8 {
		return d
	}
	return d[0:5] + "-" + d[5:8]
}

// Phone renders the split phone parts kept by the CMS, e.g. +55 (11) 98765-4321.
func Phone(country, area, number string) string {
	country, area, number = Digits(country), Digits(area), Digits(number)
	var b strings.Builder
	if country != "" {
		b.WriteString("+" + country + " ")
	}
	if area != "" {
		b.WriteString("(" + area + ") ")
	}
	b.WriteString(localNumber(number))
	return strings.TrimSpace(b.String())
}

// PhoneNumber splits and renders a single raw phone string.
// Accepted lengths: 13/12 (with 55 prefix), 11/10 (with area code), 9/8 (local only).
func PhoneNumber(raw string) string {
	d := Digits(raw)
	switch len(d) {
	case 12, 13:
		if strings.HasPrefix(d, "55") {
			return Phone(d[:2], d[2:4], d[4:])
		}
	case 10, 11:
		return Phone("", d[:2], d[2:])
	case 8, 9:
		return localNumber(d)
	}
	return d
}

func localNumber(d string) string {
	switch len(d) {
	case 9:
		return d[:5] + "-" + d[5:]
	case 8:
		return d[:4] + "-" + d[4:]
	default:
		return d
	}
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
