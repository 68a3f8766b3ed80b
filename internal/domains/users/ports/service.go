package ports

import (
	"context"

	"github.com/Apurer/shop-admin/internal/domains/users/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// UserForm is the customer editor payload. Document and phone are stored as digits.
type UserForm struct {
	Username     string              `json:"username" validate:"required,min=3,max=60"`
	Email        string              `json:"email" validate:"required,email"`
	FirstName    string              `json:"firstName" validate:"required,max=80"`
	LastName     string              `json:"lastName" validate:"max=80"`
	Document     string              `json:"document" validate:"omitempty,numeric"`
	DocumentType domain.DocumentType `json:"documentType" validate:"omitempty,oneof=cpf cnpj"`
	MobilePhone  string              `json:"mobilePhone" validate:"omitempty,numeric,min=10,max=13"`
}

// Service exposes customer use cases to adapters.
type Service interface {
	List(ctx context.Context, q ListQuery) (pagination.Page[*domain.User], error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, form UserForm) (*domain.User, error)
	Block(ctx context.Context, id int64) (*domain.User, error)
	Unblock(ctx context.Context, id int64) (*domain.User, error)
}
