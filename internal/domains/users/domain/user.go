package domain

import (
	"strings"
	"time"
)

type DocumentType string

const (
	DocumentCPF  DocumentType = "cpf"
	DocumentCNPJ DocumentType = "cnpj"
)

// User is a storefront customer account kept by the CMS.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Document     string
	DocumentType DocumentType
	MobilePhone  string
	Blocked      bool
	Confirmed    bool
	CreatedAt    time.Time
}

// FullName joins first and last name, falling back to the username.
func (u *User) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return u.Username
	}
	return name
}

// InferDocumentType guesses the type from the digit count: 11 is a CPF, 14 a CNPJ.
func InferDocumentType(digits string) (DocumentType, bool) {
	switch len(digits) {
	case 11:
		return DocumentCPF, true
	case 14:
		return DocumentCNPJ, true
	default:
		return "", false
	}
}
