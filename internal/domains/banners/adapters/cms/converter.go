package cms

import (
	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
	"github.com/Apurer/shop-admin/internal/domains/banners/ports"
)

// ConvertBannerCollection flattens a CMS record. Missing media become "" and
// a missing banner list becomes empty.
func ConvertBannerCollection(rec BannerCollectionRecord) *domain.BannerCollection {
	a := rec.Attributes
	out := &domain.BannerCollection{
		ID:          rec.ID,
		Name:        a.Name,
		Slug:        a.Slug,
		Banners:     make([]domain.Banner, 0, len(a.Banners)),
		Published:   a.PublishedAt != nil,
		PublishedAt: a.PublishedAt,
	}
	if a.UpdatedAt != nil {
		out.UpdatedAt = *a.UpdatedAt
	}
	for _, b := range a.Banners {
		out.Banners = append(out.Banners, domain.Banner{
			ID:              b.ID,
			Title:           b.Title,
			Link:            b.Link,
			Position:        b.Position,
			DesktopImageURL: cmsclient.MediaURL(b.DesktopImage),
			MobileImageURL:  cmsclient.MediaURL(b.MobileImage),
		})
	}
	domain.SortBanners(out.Banners)
	return out
}

func ConvertBannerCollections(recs []BannerCollectionRecord) []*domain.BannerCollection {
	out := make([]*domain.BannerCollection, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ConvertBannerCollection(rec))
	}
	return out
}

func toWrite(form ports.BannerForm) collectionWrite {
	w := collectionWrite{Name: form.Name, Slug: form.Slug, Banners: make([]bannerWrite, 0, len(form.Banners))}
	for _, b := range form.Banners {
		bw := bannerWrite{
			ID:           b.ID,
			Title:        b.Title,
			Link:         b.Link,
			Position:     b.Position,
			DesktopImage: b.DesktopImageID,
		}
		if b.MobileImageID > 0 {
			id := b.MobileImageID
			bw.MobileImage = &id
		}
		w.Banners = append(w.Banners, bw)
	}
	return w
}
