package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	"github.com/Apurer/shop-admin/internal/domains/products/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

var ErrInvalidInput = errors.New("invalid product input")

type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.Product], error) {
	q.Page, q.PageSize = pagination.Normalize(q.Page, q.PageSize)
	q.Search = strings.TrimSpace(q.Search)
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, form ports.ProductForm) (*domain.Product, error) {
	form, err := validateForm(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, form)
}

func (s *Service) Update(ctx context.Context, id int64, form ports.ProductForm) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	form, err := validateForm(form)
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

func (s *Service) Publish(ctx context.Context, id int64) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.SetPublished(ctx, id, true)
}

func (s *Service) Unpublish(ctx context.Context, id int64) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.SetPublished(ctx, id, false)
}

// validateForm trims text fields then runs tag rules plus the price rules.
func validateForm(form ports.ProductForm) (ports.ProductForm, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Slug = strings.ToLower(strings.TrimSpace(form.Slug))
	form.SKU = strings.ToUpper(strings.TrimSpace(form.SKU))
	form.Description = strings.TrimSpace(form.Description)

	fields := validation.FieldErrors{}
	if err := validation.Struct(form); err != nil {
		fe, ok := validation.As(err)
		if !ok {
			return form, err
		}
		fields = fe
	}
	if !form.Price.IsPositive() {
		fields["price"] = "Informe um preço maior que zero."
	}
	if form.PromotionalPrice.IsNegative() {
		fields["promotionalPrice"] = "O preço promocional não pode ser negativo."
	} else if form.PromotionalPrice.IsPositive() && form.PromotionalPrice.GreaterThanOrEqual(form.Price) {
		fields["promotionalPrice"] = "O preço promocional deve ser menor que o preço."
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
