package cms

import (
	"time"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
)

type ProductRecord = cmsclient.Entity[ProductAttributes]

type ProductAttributes struct {
	Name             string                                             `json:"name"`
	Slug             string                                             `json:"slug"`
	Description      string                                             `json:"description"`
	SKU              string                                             `json:"sku"`
	Price            cmsclient.FlexString                               `json:"price"`
	PromotionalPrice cmsclient.FlexString                               `json:"promotionalPrice"`
	Stock            int                                                `json:"stock"`
	Category         *cmsclient.Relation[CategoryAttributes]            `json:"category"`
	Images           *cmsclient.RelationList[cmsclient.MediaAttributes] `json:"images"`
	PublishedAt      *time.Time                                         `json:"publishedAt"`
	UpdatedAt        *time.Time                                         `json:"updatedAt"`
}

type CategoryAttributes struct {
	Name string `json:"name"`
}

type productWrite struct {
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description"`
	SKU              string  `json:"sku"`
	Price            string  `json:"price"`
	PromotionalPrice *string `json:"promotionalPrice"`
	Stock            int     `json:"stock"`
	Category         *int64  `json:"category"`
	Images           []int64 `json:"images"`
}

// productCreate adds a null publishedAt so new products start as drafts.
type productCreate struct {
	productWrite
	PublishedAt *time.Time `json:"publishedAt"`
}
