package cms

import (
	"time"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
)

// BannerCollectionRecord is a banner collection with its slides and media populated.
type BannerCollectionRecord = cmsclient.Entity[BannerCollectionAttributes]

type BannerCollectionAttributes struct {
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Banners     []BannerComponent `json:"banners"`
	PublishedAt *time.Time        `json:"publishedAt"`
	UpdatedAt   *time.Time        `json:"updatedAt"`
}

type BannerComponent struct {
	ID           int64                                          `json:"id"`
	Title        string                                         `json:"title"`
	Link         string                                         `json:"link"`
	Position     int                                            `json:"position"`
	DesktopImage *cmsclient.Relation[cmsclient.MediaAttributes] `json:"desktopImage"`
	MobileImage  *cmsclient.Relation[cmsclient.MediaAttributes] `json:"mobileImage"`
}

// bannerWrite is the component shape the CMS accepts on create and update.
type bannerWrite struct {
	ID           int64  `json:"id,omitempty"`
	Title        string `json:"title"`
	Link         string `json:"link"`
	Position     int    `json:"position"`
	DesktopImage int64  `json:"desktopImage"`
	MobileImage  *int64 `json:"mobileImage"`
}

type collectionWrite struct {
	Name    string        `json:"name"`
	Slug    string        `json:"slug"`
	Banners []bannerWrite `json:"banners"`
}
