package domain

import "strings"

// DocumentType distinguishes individual (CPF) from company (CNPJ) documents.
type DocumentType string

const (
	DocumentCPF  DocumentType = "cpf"
	DocumentCNPJ DocumentType = "cnpj"
)

type Phone struct {
	CountryCode string
	AreaCode    string
	Number      string
}

// IsZero reports whether no part of the phone is set.
func (p Phone) IsZero() bool {
	return p.CountryCode == "" && p.AreaCode == "" && p.Number == ""
}

// Customer is the snapshot of the buyer shown on the order screens.
type Customer struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Document     string
	DocumentType DocumentType
	HomePhone    Phone
	MobilePhone  Phone
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// PlaceholderPhone is shown when the CMS has no phone for the customer.
func PlaceholderPhone() Phone {
	return Phone{CountryCode: "55", AreaCode: "00", Number: "000000000"}
}

// PlaceholderCustomer stands in for orders whose customer relation is missing.
func PlaceholderCustomer() Customer {
	return Customer{
		FirstName:    "Não",
		LastName:     "Informado Junior",
		Email:        "nao@informado.com",
		Document:     "000.000.000-00",
		DocumentType: DocumentCPF,
		HomePhone:    PlaceholderPhone(),
		MobilePhone:  PlaceholderPhone(),
	}
}

// WithPlaceholders fills every empty field from the placeholder customer.
func (c Customer) WithPlaceholders() Customer {
	p := PlaceholderCustomer()
	if c.FirstName == "" {
		c.FirstName = p.FirstName
	}
	if c.LastName == "" {
		c.LastName = p.LastName
	}
	if c.Email == "" {
		c.Email = p.Email
	}
	if c.Document == "" {
		c.Document = p.Document
	}
	if c.DocumentType == "" {
		c.DocumentType = p.DocumentType
	}
	if c.HomePhone.IsZero() {
		c.HomePhone = p.HomePhone
	}
	if c.MobilePhone.IsZero() {
		c.MobilePhone = p.MobilePhone
	}
	return c
}
