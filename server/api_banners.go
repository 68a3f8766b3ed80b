package adminserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/shop-admin/internal/domains/banners/adapters/http/mapper"
	"github.com/Apurer/shop-admin/internal/domains/banners/domain"
	bannersports "github.com/Apurer/shop-admin/internal/domains/banners/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
)

// Messages shown after banner collection mutations.
const (
	messageBannerSaved       = "Coleção de banners salva com sucesso."
	messageBannerDeleted     = "Coleção de banners excluída com sucesso."
	messageBannerPublished   = "Coleção de banners publicada."
	messageBannerUnpublished = "Coleção de banners despublicada."
)

type BannersAPI struct {
	service bannersports.Service
}

func NewBannersAPI(service bannersports.Service) BannersAPI {
	return BannersAPI{service: service}
}

type bannerResult struct {
	Toast      apierrors.Toast              `json:"toast"`
	Collection *mapper.BannerCollectionView `json:"collection,omitempty"`
}

// Get /admin/banners
func (api *BannersAPI) ListBannerCollections(c *gin.Context) {
	params, err := bindListParams(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	page, err := api.service.List(c.Request.Context(), bannersports.ListQuery{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
	})
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, mapper.ToBannerCollectionView))
}

// Get /admin/banners/:id
func (api *BannersAPI) GetBannerCollection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	collection, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBannerCollectionView(collection))
}

// Post /admin/banners
// New collections start as drafts.
func (api *BannersAPI) CreateBannerCollection(c *gin.Context) {
	var form bannersports.BannerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	collection, err := api.service.Create(c.Request.Context(), form)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusCreated, messageBannerSaved, collection)
}

// Put /admin/banners/:id
func (api *BannersAPI) UpdateBannerCollection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var form bannersports.BannerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	collection, err := api.service.Update(c.Request.Context(), id, form)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusOK, messageBannerSaved, collection)
}

// Delete /admin/banners/:id
func (api *BannersAPI) DeleteBannerCollection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		apierrors.Respond(c, apierrors.NewConfirmationProblem("Deseja excluir esta coleção de banners?"))
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, bannerResult{Toast: apierrors.SuccessToast(messageBannerDeleted)})
}

// Post /admin/banners/:id/publish
func (api *BannersAPI) PublishBannerCollection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	collection, err := api.service.Publish(c.Request.Context(), id)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusOK, messageBannerPublished, collection)
}

// Post /admin/banners/:id/unpublish
func (api *BannersAPI) UnpublishBannerCollection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		apierrors.Respond(c, apierrors.NewConfirmationProblem("Deseja despublicar esta coleção de banners?"))
		return
	}
	collection, err := api.service.Unpublish(c.Request.Context(), id)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusOK, messageBannerUnpublished, collection)
}

func (api *BannersAPI) respond(c *gin.Context, status int, message string, collection *domain.BannerCollection) {
	view := mapper.ToBannerCollectionView(collection)
	c.JSON(status, bannerResult{Toast: apierrors.SuccessToast(message), Collection: &view})
}
