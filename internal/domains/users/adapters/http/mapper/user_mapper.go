package mapper

import (
	"time"

	userdomain "github.com/Apurer/shop-admin/internal/domains/users/domain"
	"github.com/Apurer/shop-admin/internal/shared/masks"
)

// User is the transport-level customer payload with masked display fields.
type User struct {
	ID                   int64     `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	FullName             string    `json:"fullName"`
	Document             string    `json:"document"`
	DocumentType         string    `json:"documentType"`
	DocumentFormatted    string    `json:"documentFormatted"`
	MobilePhone          string    `json:"mobilePhone"`
	MobilePhoneFormatted string    `json:"mobilePhoneFormatted"`
	Blocked              bool      `json:"blocked"`
	Confirmed            bool      `json:"confirmed"`
	CreatedAt            time.Time `json:"createdAt"`
}

// FromDomainUser converts a domain user into a transport representation.
func FromDomainUser(u *userdomain.User) User {
	return User{
		ID:                   u.ID,
		Username:             u.Username,
		Email:                u.Email,
		FirstName:            u.FirstName,
		LastName:             u.LastName,
		FullName:             u.FullName(),
		Document:             u.Document,
		DocumentType:         string(u.DocumentType),
		DocumentFormatted:    masks.Document(u.Document, string(u.DocumentType)),
		MobilePhone:          u.MobilePhone,
		MobilePhoneFormatted: masks.PhoneNumber(u.MobilePhone),
		Blocked:              u.Blocked,
		Confirmed:            u.Confirmed,
		CreatedAt:            u.CreatedAt,
	}
}
