package masks

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := map[string]string{
		"0":        "R$ 0,00",
		"9.5":      "R$ 9,50",
		"1234.56":  "R$ 1.234,56",
		"1000000":  "R$ 1.000.000,00",
		"-10":      "-R$ 10,00",
		"123.456":  "R$ 123,46",
		"999999.9": "R$ 999.999,90",
		"-0.001":   "R$ 0,00",
		"-0.005":   "-R$ 0,01",
	}
	for in, want := range cases {
		assert.Equal(t, want, Currency(decimal.RequireFromString(in)), in)
	}
	assert.Equal(t, "R$ 12,34", CurrencyFromCents(1234))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "20,00%", Percentage(decimal.NewFromInt(20)))
	assert.Equal(t, "12,35%", Percentage(decimal.RequireFromString("12.345")))
}

func TestDocuments(t *testing.T) {
	assert.Equal(t, "123.456.789-01", CPF("12345678901"))
	assert.Equal(t, "123.456.789-01", CPF("123.456.789-01"))
	assert.Equal(t, "12.345.678/0001-90", CNPJ("12345678000190"))
	assert.Equal(t, "123", CPF("123"))

	assert.Equal(t, "12.345.678/0001-90", Document("12345678000190", ""))
	assert.Equal(t, "123.456.789-01", Document("12345678901", "CPF"))
	assert.Equal(t, "12.345.678/0001-90", Document("12345678000190", "cnpj"))
}

func TestPostalCode(t *testing.T) {
	assert.Equal(t, "01310-100", PostalCode("01310100"))
	assert.Equal(t, "0131", PostalCode("0131"))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+55 (11) 98765-4321", Phone("55", "11", "987654321"))
	assert.Equal(t, "(11) 3456-7890", Phone("", "11", "34567890"))
	assert.Equal(t, "98765-4321", Phone("", "", "987654321"))

	assert.Equal(t, "+55 (11) 98765-4321", PhoneNumber("+55 11 98765-4321"))
	assert.Equal(t, "(21) 3456-7890", PhoneNumber("2134567890"))
	assert.Equal(t, "3456-7890", PhoneNumber("34567890"))
	assert.Equal(t, "123", PhoneNumber("123"))
}
