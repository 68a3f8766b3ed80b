package cms

import (
	"context"
	"errors"
	"fmt"
	"time"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
	"github.com/Apurer/shop-admin/internal/domains/banners/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const collectionsPath = "/banner-collections"

var bannerPopulate = map[string]any{
	"banners": map[string]any{
		"populate": []string{"desktopImage", "mobileImage"},
	},
}

// Repository stores banner collections in the CMS.
type Repository struct {
	res *cmsclient.Resource[BannerCollectionAttributes]
	now func() time.Time
}

func NewRepository(client *cmsclient.Client) *Repository {
	return &Repository{
		res: cmsclient.NewResource[BannerCollectionAttributes](client, collectionsPath),
		now: time.Now,
	}
}

func (r *Repository) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.BannerCollection], error) {
	query := &cmsclient.Query{
		Sort:             []string{"updatedAt:desc"},
		Page:             q.Page,
		PageSize:         q.PageSize,
		Populate:         bannerPopulate,
		PublicationState: "preview",
	}
	if q.Search != "" {
		query.Filters = cmsclient.Filters{"$or": []any{
			map[string]any{"name": map[string]any{"$containsi": q.Search}},
			map[string]any{"slug": map[string]any{"$containsi": q.Search}},
		}}
	}
	res, err := r.res.List(ctx, query)
	if err != nil {
		return pagination.Page[*domain.BannerCollection]{}, err
	}
	return pagination.Page[*domain.BannerCollection]{
		Items: ConvertBannerCollections(res.Data),
		Meta:  res.Meta.Pagination,
	}, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BannerCollection, error) {
	rec, err := r.res.Get(ctx, id, &cmsclient.Query{Populate: bannerPopulate, PublicationState: "preview"})
	if err != nil {
		return nil, translate(err)
	}
	return ConvertBannerCollection(rec), nil
}

// Create stores the collection as a draft.
func (r *Repository) Create(ctx context.Context, form ports.BannerForm) (*domain.BannerCollection, error) {
	w := toWrite(form)
	body := map[string]any{"name": w.Name, "slug": w.Slug, "banners": w.Banners, "publishedAt": nil}
	rec, err := r.res.Create(ctx, body)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, rec.ID)
}

func (r *Repository) Update(ctx context.Context, id int64, form ports.BannerForm) (*domain.BannerCollection, error) {
	if _, err := r.res.Update(ctx, id, toWrite(form)); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return translate(r.res.Delete(ctx, id))
}

func (r *Repository) SetPublished(ctx context.Context, id int64, published bool) (*domain.BannerCollection, error) {
	if _, err := r.res.SetPublished(ctx, id, published, r.now()); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

func translate(err error) error {
	if errors.Is(err, cmsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	return err
}

var _ ports.Repository = (*Repository)(nil)
