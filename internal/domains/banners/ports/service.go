package ports

import (
	"context"

	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// BannerForm is the payload of the create and edit screens.
type BannerForm struct {
	Name    string           `json:"name" validate:"required,max=120"`
	Slug    string           `json:"slug" validate:"required,max=120"`
	Banners []BannerItemForm `json:"banners" validate:"dive"`
}

// BannerItemForm references uploaded media by id.
type BannerItemForm struct {
	ID             int64  `json:"id,omitempty"`
	Title          string `json:"title" validate:"required,max=120"`
	Link           string `json:"link" validate:"omitempty,url"`
	Position       int    `json:"position" validate:"gte=0"`
	DesktopImageID int64  `json:"desktopImageId" validate:"required,gt=0"`
	MobileImageID  int64  `json:"mobileImageId" validate:"omitempty,gt=0"`
}

// Service exposes banner collection use-cases.
type Service interface {
	List(ctx context.Context, q ListQuery) (pagination.Page[*domain.BannerCollection], error)
	Get(ctx context.Context, id int64) (*domain.BannerCollection, error)
	Create(ctx context.Context, form BannerForm) (*domain.BannerCollection, error)
	Update(ctx context.Context, id int64, form BannerForm) (*domain.BannerCollection, error)
	Delete(ctx context.Context, id int64) error
	Publish(ctx context.Context, id int64) (*domain.BannerCollection, error)
	Unpublish(ctx context.Context, id int64) (*domain.BannerCollection, error)
}
