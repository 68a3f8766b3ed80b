package adminserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	authapp "github.com/Apurer/shop-admin/internal/domains/auth/application"
	bannersapp "github.com/Apurer/shop-admin/internal/domains/banners/application"
	bannersports "github.com/Apurer/shop-admin/internal/domains/banners/ports"
	couponsapp "github.com/Apurer/shop-admin/internal/domains/coupons/application"
	couponsports "github.com/Apurer/shop-admin/internal/domains/coupons/ports"
	ordersapp "github.com/Apurer/shop-admin/internal/domains/orders/application"
	ordersports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
	productsapp "github.com/Apurer/shop-admin/internal/domains/products/application"
	productsports "github.com/Apurer/shop-admin/internal/domains/products/ports"
	reportsapp "github.com/Apurer/shop-admin/internal/domains/reports/application"
	usersapp "github.com/Apurer/shop-admin/internal/domains/users/application"
	usersports "github.com/Apurer/shop-admin/internal/domains/users/ports"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

// clientErrors maps the errors every endpoint reports the same way: bad
// input, unknown resources and authentication failures.
var clientMappers = []apierrors.ErrorMapper{
	mapValidation,
	mapInvalidInput,
	mapNotFound,
	mapAuthentication,
}

var clientErrors = apierrors.NewChainedResponder("", clientMappers...)

func mapValidation(err error) (apierrors.ProblemDetail, bool) {
	if fields, ok := validation.As(err); ok {
		return apierrors.NewValidationProblem(fields), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapInvalidInput(err error) (apierrors.ProblemDetail, bool) {
	for _, target := range []error{
		ordersapp.ErrInvalidInput,
		bannersapp.ErrInvalidInput,
		productsapp.ErrInvalidInput,
		couponsapp.ErrInvalidInput,
		usersapp.ErrInvalidInput,
		reportsapp.ErrInvalidInput,
		authapp.ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return apierrors.ErrBadRequest.WithDetail(err.Error()), true
		}
	}
	return apierrors.ProblemDetail{}, false
}

var notFoundResources = []struct {
	err      error
	resource string
}{
	{ordersports.ErrNotFound, "Pedido"},
	{bannersports.ErrNotFound, "Coleção de banners"},
	{productsports.ErrNotFound, "Produto"},
	{couponsports.ErrNotFound, "Cupom"},
	{usersports.ErrNotFound, "Usuário"},
}

func mapNotFound(err error) (apierrors.ProblemDetail, bool) {
	for _, nf := range notFoundResources {
		if errors.Is(err, nf.err) {
			return apierrors.ErrNotFound.
				WithDetail(fmt.Sprintf("Recurso não encontrado: %s", nf.resource)).
				WithExtension("resourceType", nf.resource), true
		}
	}
	return apierrors.ProblemDetail{}, false
}

func mapAuthentication(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, authapp.ErrAuthentication):
		return apierrors.ErrUnauthorized.WithDetail("Usuário ou senha inválidos."), true
	case errors.Is(err, authapp.ErrUnauthenticated):
		return apierrors.ErrUnauthorized.WithDetail("Sessão expirada. Faça login novamente."), true
	}
	return apierrors.ProblemDetail{}, false
}

func matchClientError(err error) (apierrors.ProblemDetail, bool) {
	for _, m := range clientMappers {
		if p, ok := m(err); ok {
			return p, true
		}
	}
	return apierrors.ProblemDetail{}, false
}

// respondRead answers a failed page read. Anything that is not a client error
// renders as not found, the same result the dashboard shows for a failed fetch.
func respondRead(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if _, ok := matchClientError(err); ok {
		clientErrors.RespondError(c, err)
		return
	}
	_ = c.Error(err)
	apierrors.Respond(c, apierrors.ErrNotFound.WithDetail("Não foi possível carregar os dados."))
}

// respondMutation answers a failed write. CMS failures carry the generic toast.
func respondMutation(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if _, ok := matchClientError(err); ok {
		clientErrors.RespondError(c, err)
		return
	}
	_ = c.Error(err)
	apierrors.Respond(c, apierrors.NewMutationFailedProblem(err))
}

// respondBadRequest reports a malformed body or parameter.
func respondBadRequest(c *gin.Context, err error) {
	apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

var errInvalidID = errors.New("id must be a positive integer")
