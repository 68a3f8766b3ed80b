package domain

import (
	"sort"
	"time"
)

// Banner is one slide of a collection.
type Banner struct {
	ID              int64
	Title           string
	Link            string
	Position        int
	DesktopImageURL string
	MobileImageURL  string
}

// BannerCollection groups the banners rendered in one storefront slot.
type BannerCollection struct {
	ID          int64
	Name        string
	Slug        string
	Banners     []Banner
	Published   bool
	PublishedAt *time.Time
	UpdatedAt   time.Time
}

// SortBanners orders slides by position, keeping CMS order for ties.
func SortBanners(banners []Banner) {
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].Position < banners[j].Position
	})
}
