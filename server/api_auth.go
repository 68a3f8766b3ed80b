package adminserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
	authports "github.com/Apurer/shop-admin/internal/domains/auth/ports"
	ordersapp "github.com/Apurer/shop-admin/internal/domains/orders/application"
)

// AuthAPI wires the session gate to HTTP.
type AuthAPI struct {
	service  authports.Service
	listings *ordersapp.ListingRegistry
}

// NewAuthAPI creates an AuthAPI. listings may be nil when the listing endpoints are not mounted.
func NewAuthAPI(service authports.Service, listings *ordersapp.ListingRegistry) AuthAPI {
	return AuthAPI{service: service, listings: listings}
}

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type sessionView struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      userRef   `json:"user"`
}

type userRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post /auth/login
func (api *AuthAPI) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	session, err := api.service.Login(c.Request.Context(), payload.Identifier, payload.Password)
	if err != nil {
		respondMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView{
		Token:     session.Token,
		TokenType: "Bearer",
		ExpiresAt: session.ExpiresAt,
		User:      userRef{ID: session.UserID, Username: session.Username, Email: session.Email},
	})
}

// Post /auth/logout
// Always succeeds; the listing kept for the session is released too.
func (api *AuthAPI) Logout(c *gin.Context) {
	token, ok := domain.BearerToken(c.GetHeader("Authorization"))
	if ok {
		_ = api.service.Logout(c.Request.Context(), token)
		if api.listings != nil {
			api.listings.Drop(token)
		}
	}
	c.Status(http.StatusNoContent)
}
