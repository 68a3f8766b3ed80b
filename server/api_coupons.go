package adminserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/shop-admin/internal/domains/coupons/adapters/http/mapper"
	"github.com/Apurer/shop-admin/internal/domains/coupons/domain"
	couponsports "github.com/Apurer/shop-admin/internal/domains/coupons/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
)

const (
	messageCouponSaved   = "Cupom salvo com sucesso."
	messageCouponDeleted = "Cupom excluído com sucesso."
)

type CouponsAPI struct {
	service couponsports.Service
	now     func() time.Time
}

func NewCouponsAPI(service couponsports.Service) CouponsAPI {
	return CouponsAPI{service: service, now: time.Now}
}

type couponResult struct {
	Toast  apierrors.Toast    `json:"toast"`
	Coupon *mapper.CouponView `json:"coupon,omitempty"`
}

// Get /admin/coupons
func (api *CouponsAPI) ListCoupons(c *gin.Context) {
	params, err := bindListParams(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	page, err := api.service.List(c.Request.Context(), couponsports.ListQuery{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
	})
	if err != nil {
		respondRead(c, err)
		return
	}
	now := api.now()
	c.JSON(http.StatusOK, mapPage(page, func(cp *domain.Coupon) mapper.CouponView {
		return mapper.ToCouponView(cp, now)
	}))
}

// Get /admin/coupons/:id
func (api *CouponsAPI) GetCoupon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	coupon, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCouponView(coupon, api.now()))
}

// Post /admin/coupons
func (api *CouponsAPI) CreateCoupon(c *gin.Context) {
	var form couponsports.CouponForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	coupon, err := api.service.Create(c.Request.Context(), form)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusCreated, coupon)
}

// Put /admin/coupons/:id
func (api *CouponsAPI) UpdateCoupon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var form couponsports.CouponForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	coupon, err := api.service.Update(c.Request.Context(), id, form)
	if err != nil {
		respondMutation(c, err)
		return
	}
	api.respond(c, http.StatusOK, coupon)
}

// Delete /admin/coupons/:id
func (api *CouponsAPI) DeleteCoupon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		apierrors.Respond(c, apierrors.NewConfirmationProblem("Deseja excluir este cupom?"))
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, couponResult{Toast: apierrors.SuccessToast(messageCouponDeleted)})
}

func (api *CouponsAPI) respond(c *gin.Context, status int, coupon *domain.Coupon) {
	view := mapper.ToCouponView(coupon, api.now())
	c.JSON(status, couponResult{Toast: apierrors.SuccessToast(messageCouponSaved), Coupon: &view})
}
