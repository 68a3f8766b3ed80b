package cms

import (
	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
)

// orderPopulate loads every relation the converter reads.
var orderPopulate = map[string]any{
	"customer": map[string]any{"populate": "*"},
	"items":    map[string]any{"populate": "*"},
	"payment":  "*",
	"shipment": map[string]any{"populate": "*"},
	"coupons":  "*",
	"metadata": "*",
}

// BuildFilters composes the CMS filter tree for a listing query.
func BuildFilters(q domain.ListQuery) cmsclient.Filters {
	filters := cmsclient.Filters{}
	if q.Search != "" {
		or := []any{
			map[string]any{"code": containsi(q.Search)},
			map[string]any{"customer": map[string]any{"firstName": containsi(q.Search)}},
			map[string]any{"customer": map[string]any{"lastName": containsi(q.Search)}},
			map[string]any{"customer": map[string]any{"email": containsi(q.Search)}},
		}
		if statuses := domain.StatusesMatchingLabel(q.Search); len(statuses) > 0 {
			keys := make([]any, 0, len(statuses))
			for _, s := range statuses {
				keys = append(keys, string(s))
			}
			or = append(or, map[string]any{"status": map[string]any{"$in": keys}})
		}
		filters["$or"] = or
	}
	if q.StatusTab != "" {
		filters["status"] = map[string]any{"$eq": string(q.StatusTab)}
	}
	if q.PaymentMethod != "" {
		filters["payment"] = map[string]any{"method": map[string]any{"$eq": string(q.PaymentMethod)}}
	}
	if !q.From.IsZero() || !q.To.IsZero() {
		created := map[string]any{}
		if !q.From.IsZero() {
			created["$gte"] = q.From
		}
		if !q.To.IsZero() {
			created["$lte"] = q.To
		}
		filters["createdAt"] = created
	}
	if len(filters) == 0 {
		return nil
	}
	return filters
}

// BuildQuery turns a listing query into the full CMS request query.
func BuildQuery(q domain.ListQuery) *cmsclient.Query {
	q = q.Normalized()
	return &cmsclient.Query{
		Filters:  BuildFilters(q),
		Sort:     []string{q.Sort.String()},
		Page:     q.Page,
		PageSize: q.PageSize,
		Populate: orderPopulate,
	}
}

func containsi(v string) map[string]any {
	return map[string]any{"$containsi": v}
}
