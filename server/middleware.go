package adminserver

import (
	"github.com/gin-gonic/gin"

	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
	authports "github.com/Apurer/shop-admin/internal/domains/auth/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
)

const sessionKey = "adminSession"

// RequireSession rejects requests without a live bearer session and stores the
// session on the gin context.
func RequireSession(auth authports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := domain.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Header("WWW-Authenticate", `Bearer realm="shop-admin"`)
			apierrors.Respond(c, apierrors.ErrUnauthorized.WithDetail("Informe o token de acesso."))
			return
		}
		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.Header("WWW-Authenticate", `Bearer realm="shop-admin", error="invalid_token"`)
			clientErrors.RespondError(c, err)
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// sessionFrom returns the session stored by RequireSession.
func sessionFrom(c *gin.Context) *domain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*domain.Session); ok {
			return s
		}
	}
	return &domain.Session{}
}
