package adminserver

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// listParams are the query parameters shared by every admin list endpoint.
type listParams struct {
	Search   string
	Page     int
	PageSize int
}

// bindQuery reads one optional form-style query parameter into dest.
func bindQuery(c *gin.Context, name string, dest any) error {
	return runtime.BindQueryParameter("form", true, false, name, c.Request.URL.Query(), dest)
}

func bindListParams(c *gin.Context) (listParams, error) {
	var p listParams
	if err := bindQuery(c, "q", &p.Search); err != nil {
		return p, err
	}
	if err := bindQuery(c, "page", &p.Page); err != nil {
		return p, err
	}
	if err := bindQuery(c, "pageSize", &p.PageSize); err != nil {
		return p, err
	}
	p.Search = strings.TrimSpace(p.Search)
	return p, nil
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// confirmed reports whether a destructive call carries confirm=true.
func confirmed(c *gin.Context) bool {
	var ok bool
	if err := bindQuery(c, "confirm", &ok); err != nil {
		return false
	}
	return ok
}

// mapPage converts page items to their views and keeps the pagination meta.
func mapPage[T, V any](p pagination.Page[T], fn func(T) V) pagination.Page[V] {
	items := make([]V, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return pagination.Page[V]{Items: items, Meta: p.Meta}
}
