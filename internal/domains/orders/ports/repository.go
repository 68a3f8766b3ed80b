package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

var ErrNotFound = errors.New("order not found")

// Repository reads and writes orders in the CMS.
type Repository interface {
	List(ctx context.Context, query domain.ListQuery) (pagination.Page[*domain.Order], error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
