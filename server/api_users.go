package adminserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/shop-admin/internal/domains/users/adapters/http/mapper"
	"github.com/Apurer/shop-admin/internal/domains/users/domain"
	usersports "github.com/Apurer/shop-admin/internal/domains/users/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
)

const (
	messageUserSaved     = "Usuário atualizado com sucesso."
	messageUserBlocked   = "Usuário bloqueado."
	messageUserUnblocked = "Usuário desbloqueado."
)

// UsersAPI manages storefront customers. Accounts are created by the storefront
// so there is no create endpoint.
type UsersAPI struct {
	service usersports.Service
}

func NewUsersAPI(service usersports.Service) UsersAPI {
	return UsersAPI{service: service}
}

type userResult struct {
	Toast apierrors.Toast `json:"toast"`
	User  *mapper.User    `json:"user,omitempty"`
}

// Get /admin/users
func (api *UsersAPI) ListUsers(c *gin.Context) {
	params, err := bindListParams(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	page, err := api.service.List(c.Request.Context(), usersports.ListQuery{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
	})
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, mapper.FromDomainUser))
}

// Get /admin/users/:id
func (api *UsersAPI) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainUser(user))
}

// Put /admin/users/:id
func (api *UsersAPI) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var form usersports.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	user, err := api.service.Update(c.Request.Context(), id, form)
	if err != nil {
		respondMutation(c, err)
		return
	}
	respondUser(c, messageUserSaved, user)
}

// Post /admin/users/:id/block
func (api *UsersAPI) BlockUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		apierrors.Respond(c, apierrors.NewConfirmationProblem("Deseja bloquear este usuário?"))
		return
	}
	user, err := api.service.Block(c.Request.Context(), id)
	if err != nil {
		respondMutation(c, err)
		return
	}
	respondUser(c, messageUserBlocked, user)
}

// Post /admin/users/:id/unblock
func (api *UsersAPI) UnblockUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := api.service.Unblock(c.Request.Context(), id)
	if err != nil {
		respondMutation(c, err)
		return
	}
	respondUser(c, messageUserUnblocked, user)
}

func respondUser(c *gin.Context, message string, user *domain.User) {
	view := mapper.FromDomainUser(user)
	c.JSON(http.StatusOK, userResult{Toast: apierrors.SuccessToast(message), User: &view})
}
