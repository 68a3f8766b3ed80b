package mapper

import (
	"time"

	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
)

type BannerView struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Link            string `json:"link"`
	Position        int    `json:"position"`
	DesktopImageURL string `json:"desktopImageUrl"`
	MobileImageURL  string `json:"mobileImageUrl"`
}

type BannerCollectionView struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Banners     []BannerView `json:"banners"`
	Published   bool         `json:"published"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func ToBannerCollectionView(c *domain.BannerCollection) BannerCollectionView {
	view := BannerCollectionView{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Banners:     make([]BannerView, 0, len(c.Banners)),
		Published:   c.Published,
		PublishedAt: c.PublishedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, b := range c.Banners {
		view.Banners = append(view.Banners, BannerView(b))
	}
	return view
}
