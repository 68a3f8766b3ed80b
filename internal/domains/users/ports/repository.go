package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-admin/internal/domains/users/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

var ErrNotFound = errors.New("user not found")

// ListQuery narrows the customer list; Search matches username, e-mail or name.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
}

// Repository abstracts customer persistence.
type Repository interface {
	List(ctx context.Context, q ListQuery) (pagination.Page[*domain.User], error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, form UserForm) (*domain.User, error)
	SetBlocked(ctx context.Context, id int64, blocked bool) (*domain.User, error)
}
