package cms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
)

// Filters is a nested CMS filter tree, e.g. {"status": {"$eq": "PAID"}}.
type Filters map[string]any

// Query describes the list parameters understood by the CMS.
type Query struct {
	Filters  Filters
	Sort     []string
	Page     int
	PageSize int
	// Populate is either "*" or a nested relation tree.
	Populate any
	// PublicationState is "live" or "preview".
	PublicationState string
	// Params are plain extra parameters appended after the structured ones.
	Params url.Values
}

// Encode serializes the query in the nested bracket format, keys in a stable order.
func (q Query) Encode() (string, error) {
	var parts []string
	if len(q.Filters) > 0 {
		s, err := deepObject("filters", map[string]any(q.Filters))
		if err != nil {
			return "", fmt.Errorf("encode cms filters: %w", err)
		}
		parts = append(parts, s)
	}
	switch p := q.Populate.(type) {
	case nil:
	case string:
		parts = append(parts, "populate="+url.QueryEscape(p))
	case map[string]any:
		s, err := deepObject("populate", p)
		if err != nil {
			return "", fmt.Errorf("encode cms populate: %w", err)
		}
		parts = append(parts, s)
	default:
		return "", fmt.Errorf("unsupported populate type %T", q.Populate)
	}
	for i, s := range q.Sort {
		parts = append(parts, fmt.Sprintf("sort[%d]=%s", i, url.QueryEscape(s)))
	}
	if q.Page > 0 {
		parts = append(parts, "pagination[page]="+strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		parts = append(parts, "pagination[pageSize]="+strconv.Itoa(q.PageSize))
	}
	if q.PublicationState != "" {
		parts = append(parts, "publicationState="+url.QueryEscape(q.PublicationState))
	}
	if len(q.Params) > 0 {
		parts = append(parts, q.Params.Encode())
	}
	return strings.Join(parts, "&"), nil
}

func deepObject(name string, tree map[string]any) (string, error) {
	if len(tree) == 0 {
		return "", nil
	}
	return runtime.MarshalDeepObject(escapeLeaves(tree), name)
}

// escapeLeaves copies the tree turning every leaf into a query-escaped string,
// since the deepObject marshaller writes leaf values verbatim.
func escapeLeaves(v any) any {
	switch t := v.(type) {
	case Filters:
		return escapeLeaves(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = escapeLeaves(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			out = append(out, escapeLeaves(val))
		}
		return out
	case []string:
		out := make([]any, 0, len(t))
		for _, val := range t {
			out = append(out, url.QueryEscape(val))
		}
		return out
	case string:
		return url.QueryEscape(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return url.QueryEscape(t.UTC().Format(time.RFC3339))
	case fmt.Stringer:
		return url.QueryEscape(t.String())
	default:
		return url.QueryEscape(fmt.Sprint(t))
	}
}
