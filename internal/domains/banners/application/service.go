package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
	"github.com/Apurer/shop-admin/internal/domains/banners/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

// ErrInvalidInput signals a bad id or query.
var ErrInvalidInput = errors.New("invalid banner input")

// Service implements ports.Service on top of a Repository.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.BannerCollection], error) {
	q.Page, q.PageSize = pagination.Normalize(q.Page, q.PageSize)
	q.Search = strings.TrimSpace(q.Search)
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.BannerCollection, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, form ports.BannerForm) (*domain.BannerCollection, error) {
	form = normalizeForm(form)
	if err := validation.Struct(form); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, form)
}

func (s *Service) Update(ctx context.Context, id int64, form ports.BannerForm) (*domain.BannerCollection, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	form = normalizeForm(form)
	if err := validation.Struct(form); err != nil {
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

func (s *Service) Publish(ctx context.Context, id int64) (*domain.BannerCollection, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.SetPublished(ctx, id, true)
}

func (s *Service) Unpublish(ctx context.Context, id int64) (*domain.BannerCollection, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.SetPublished(ctx, id, false)
}

func normalizeForm(form ports.BannerForm) ports.BannerForm {
	form.Name = strings.TrimSpace(form.Name)
	form.Slug = strings.ToLower(strings.TrimSpace(form.Slug))
	items := make([]ports.BannerItemForm, len(form.Banners))
	for i, b := range form.Banners {
		b.Title = strings.TrimSpace(b.Title)
		b.Link = strings.TrimSpace(b.Link)
		items[i] = b
	}
	form.Banners = items
	return form
}

func checkID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	return nil
}

// IsNotFound reports whether err means the collection does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ports.ErrNotFound)
}

var _ ports.Service = (*Service)(nil)
