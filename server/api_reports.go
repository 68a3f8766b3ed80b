package adminserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/shop-admin/internal/domains/orders/adapters/http/mapper"
	"github.com/Apurer/shop-admin/internal/domains/reports/adapters/http/mapper"
	reportsports "github.com/Apurer/shop-admin/internal/domains/reports/ports"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

type ReportsAPI struct {
	service reportsports.Service
}

func NewReportsAPI(service reportsports.Service) ReportsAPI {
	return ReportsAPI{service: service}
}

// Get /admin/reports/:type
// from and to accept YYYY-MM-DD or RFC 3339; omitted bounds default to the last 30 days.
func (api *ReportsAPI) GetReport(c *gin.Context) {
	var rawFrom, rawTo string
	if err := bindQuery(c, "from", &rawFrom); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := bindQuery(c, "to", &rawTo); err != nil {
		respondBadRequest(c, err)
		return
	}
	fields := validation.FieldErrors{}
	from, err := ordermapper.ParseDate(rawFrom, false)
	if err != nil {
		fields["from"] = "data inválida"
	}
	to, err := ordermapper.ParseDate(rawTo, true)
	if err != nil {
		fields["to"] = "data inválida"
	}
	if len(fields) > 0 {
		clientErrors.RespondError(c, fields)
		return
	}
	report, err := api.service.Generate(c.Request.Context(), c.Param("type"), from, to)
	if err != nil {
		respondRead(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToReportView(report))
}
