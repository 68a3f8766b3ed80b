package adminserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/shop-admin/internal/domains/products/adapters/http/mapper"
	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	productsports "github.com/Apurer/shop-admin/internal/domains/products/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
)

const (
	messageProductSaved       = "Produto salvo com sucesso."
	messageProductDeleted     = "Produto excluído com sucesso."
	messageProductPublished   = "Produto publicado."
	messageProductUnpublished = "Produto despublicado."
)

type ProductsAPI struct {
	service productsports.Service
}

func NewProductsAPI(service productsports.Service) ProductsAPI {
	return ProductsAPI{service: service}
}

type productResult struct {
	Toast   apierrors.Toast     `json:"toast"`
	Product *mapper.ProductView `json:"product,omitempty"`
}

// Get /admin/products
func (api *ProductsAPI) ListProducts(c *gin.Context) {
	params, err := bindListParams(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	page, err := api.service.List(c.Request.Context(), productsports.ListQuery{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
	})
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, mapper.ToProductView))
}

// Get /admin/products/:id
func (api *ProductsAPI) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToProductView(product))
}

// Post /admin/products
func (api *ProductsAPI) CreateProduct(c *gin.Context) {
	var form productsports.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := api.service.Create(c.Request.Context(), form)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusCreated, messageProductSaved, product)
}

// Put /admin/products/:id
func (api *ProductsAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var form productsports.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := api.service.Update(c.Request.Context(), id, form)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusOK, messageProductSaved, product)
}

// Delete /admin/products/:id
func (api *ProductsAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		apierrors.Respond(c, apierrors.NewConfirmationProblem("Deseja excluir este produto? Esta ação não pode ser desfeita."))
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, productResult{Toast: apierrors.SuccessToast(messageProductDeleted)})
}

// Post /admin/products/:id/publish
func (api *ProductsAPI) PublishProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := api.service.Publish(c.Request.Context(), id)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusOK, messageProductPublished, product)
}

// Post /admin/products/:id/unpublish
func (api *ProductsAPI) UnpublishProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		apierrors.Respond(c, apierrors.NewConfirmationProblem("Deseja despublicar este produto?"))
		return
	}
	product, err := api.service.Unpublish(c.Request.Context(), id)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusOK, messageProductUnpublished, product)
}

func (api *ProductsAPI) respond(c *gin.Context, status int, message string, product *domain.Product) {
	view := mapper.ToProductView(product)
	c.JSON(status, productResult{Toast: apierrors.SuccessToast(message), Product: &view})
}
