package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-admin/internal/domains/coupons/domain"
	"github.com/Apurer/shop-admin/internal/domains/coupons/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

var ErrInvalidInput = errors.New("invalid coupon input")

var maxPercentage = decimal.NewFromInt(100)

type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.Coupon], error) {
	q.Page, q.PageSize = pagination.Normalize(q.Page, q.PageSize)
	q.Search = strings.TrimSpace(q.Search)
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Coupon, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, form ports.CouponForm) (*domain.Coupon, error) {
	form, err := ValidateForm(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, form)
}

func (s *Service) Update(ctx context.Context, id int64, form ports.CouponForm) (*domain.Coupon, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	form, err := ValidateForm(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, form)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ValidateForm upper-cases the code and checks value and date rules on top of the tags.
func ValidateForm(form ports.CouponForm) (ports.CouponForm, error) {
	form.Code = strings.ToUpper(strings.TrimSpace(form.Code))
	form.Description = strings.TrimSpace(form.Description)
	form.DiscountType = domain.DiscountType(strings.ToLower(strings.TrimSpace(string(form.DiscountType))))

	fields := validation.FieldErrors{}
	if err := validation.Struct(form); err != nil {
		fe, ok := validation.As(err)
		if !ok {
			return form, err
		}
		fields = fe
	}
	if strings.ContainsAny(form.Code, " \t") {
		fields["code"] = "O código não pode conter espaços."
	}
	switch {
	case !form.Value.IsPositive():
		fields["value"] = "Informe um valor maior que zero."
	case form.DiscountType == domain.DiscountPercentage && form.Value.GreaterThan(maxPercentage):
		fields["value"] = "O percentual não pode passar de 100."
	}
	if form.MinimumOrder.IsNegative() {
		fields["minimumOrder"] = "O pedido mínimo não pode ser negativo."
	}
	if form.StartsAt != nil && form.ExpiresAt != nil && !form.ExpiresAt.After(*form.StartsAt) {
		fields["expiresAt"] = "A data de expiração deve ser posterior ao início."
	}
	if len(fields) > 0 {
		return form, fields
	}
	return form, nil
}

func checkID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ports.ErrNotFound)
}

var _ ports.Service = (*Service)(nil)
