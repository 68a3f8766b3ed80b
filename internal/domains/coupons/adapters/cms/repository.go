package cms

import (
	"context"
	"errors"
	"fmt"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/coupons/domain"
	"github.com/Apurer/shop-admin/internal/domains/coupons/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const couponsPath = "/coupons"

type Repository struct {
	res *cmsclient.Resource[CouponAttributes]
}

func NewRepository(client *cmsclient.Client) *Repository {
	return &Repository{res: cmsclient.NewResource[CouponAttributes](client, couponsPath)}
}

// ConvertCoupon maps a CMS coupon; unknown discount types are kept verbatim.
func ConvertCoupon(rec CouponRecord) *domain.Coupon {
	a := rec.Attributes
	return &domain.Coupon{
		ID:           rec.ID,
		Code:         a.Code,
		Description:  a.Description,
		DiscountType: domain.DiscountType(a.DiscountType),
		Value:        a.Value.Decimal(),
		MinimumOrder: a.MinimumOrder.Decimal(),
		StartsAt:     a.StartsAt,
		ExpiresAt:    a.ExpiresAt,
		UsageLimit:   a.UsageLimit,
		Active:       a.Active,
	}
}

func toWrite(form ports.CouponForm) couponWrite {
	return couponWrite{
		Code:         form.Code,
		Description:  form.Description,
		DiscountType: string(form.DiscountType),
		Value:        form.Value.StringFixed(2),
		MinimumOrder: form.MinimumOrder.StringFixed(2),
		StartsAt:     form.StartsAt,
		ExpiresAt:    form.ExpiresAt,
		UsageLimit:   form.UsageLimit,
		Active:       form.Active,
	}
}

func (r *Repository) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.Coupon], error) {
	query := &cmsclient.Query{Sort: []string{"createdAt:desc"}, Page: q.Page, PageSize: q.PageSize}
	if q.Search != "" {
		query.Filters = cmsclient.Filters{"code": map[string]any{"$containsi": q.Search}}
	}
	res, err := r.res.List(ctx, query)
	if err != nil {
		return pagination.Page[*domain.Coupon]{}, err
	}
	items := make([]*domain.Coupon, 0, len(res.Data))
	for _, rec := range res.Data {
		items = append(items, ConvertCoupon(rec))
	}
	return pagination.Page[*domain.Coupon]{Items: items, Meta: res.Meta.Pagination}, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Coupon, error) {
	rec, err := r.res.Get(ctx, id, nil)
	if err != nil {
		return nil, translate(err)
	}
	return ConvertCoupon(rec), nil
}

func (r *Repository) Create(ctx context.Context, form ports.CouponForm) (*domain.Coupon, error) {
	rec, err := r.res.Create(ctx, toWrite(form))
	if err != nil {
		return nil, err
	}
	return ConvertCoupon(rec), nil
}

func (r *Repository) Update(ctx context.Context, id int64, form ports.CouponForm) (*domain.Coupon, error) {
	rec, err := r.res.Update(ctx, id, toWrite(form))
	if err != nil {
		return nil, translate(err)
	}
	return ConvertCoupon(rec), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return translate(r.res.Delete(ctx, id))
}

func translate(err error) error {
	if errors.Is(err, cmsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	return err
}

var _ ports.Repository = (*Repository)(nil)
