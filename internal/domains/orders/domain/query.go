package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// Sortable fields.
const (
	SortCreatedAt = "createdAt"
	SortCode      = "code"
	SortStatus    = "status"
	SortUpdatedAt = "updatedAt"
)

var ErrInvalidSort = errors.New("invalid sort")

type Sort struct {
	Field string
	Desc  bool
}

// DefaultSort lists newest orders first.
func DefaultSort() Sort { return Sort{Field: SortCreatedAt, Desc: true} }

// ParseSort reads "field" or "field:asc|desc".
func ParseSort(raw string) (Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSort(), nil
	}
	field, dir, _ := strings.Cut(raw, ":")
	switch field {
	case SortCreatedAt, SortCode, SortStatus, SortUpdatedAt:
	default:
		return Sort{}, fmt.Errorf("%w: field %q", ErrInvalidSort, field)
	}
	switch strings.ToLower(dir) {
	case "", "asc":
		return Sort{Field: field}, nil
	case "desc":
		return Sort{Field: field, Desc: true}, nil
	}
	return Sort{}, fmt.Errorf("%w: direction %q", ErrInvalidSort, dir)
}

func (s Sort) String() string {
	if s.Desc {
		return s.Field + ":desc"
	}
	return s.Field + ":asc"
}

// ListQuery is the full listing state. Every With* transition except WithPage
// moves back to the first page.
type ListQuery struct {
	Page          int
	PageSize      int
	Sort          Sort
	Search        string
	StatusTab     Status
	PaymentMethod PaymentMethod
	From          time.Time
	To            time.Time
}

// NewListQuery starts at page 1 sorted by creation date, newest first.
func NewListQuery(pageSize int) ListQuery {
	page, size := pagination.Normalize(1, pageSize)
	return ListQuery{Page: page, PageSize: size, Sort: DefaultSort()}
}

func (q ListQuery) WithSearch(search string) ListQuery {
	q.Search = strings.TrimSpace(search)
	q.Page = 1
	return q
}

// WithStatusTab selects one status; "" shows all.
func (q ListQuery) WithStatusTab(s Status) ListQuery {
	q.StatusTab = s
	q.Page = 1
	return q
}

func (q ListQuery) WithPaymentMethod(m PaymentMethod) ListQuery {
	q.PaymentMethod = m
	q.Page = 1
	return q
}

// WithDateRange bounds createdAt; zero times leave that side open.
func (q ListQuery) WithDateRange(from, to time.Time) ListQuery {
	q.From, q.To = from, to
	q.Page = 1
	return q
}

func (q ListQuery) WithSort(s Sort) ListQuery {
	q.Sort = s
	q.Page = 1
	return q
}

func (q ListQuery) WithPageSize(size int) ListQuery {
	_, q.PageSize = pagination.Normalize(1, size)
	q.Page = 1
	return q
}

// WithPage keeps every filter and only moves the page.
func (q ListQuery) WithPage(page int) ListQuery {
	q.Page, _ = pagination.Normalize(page, q.PageSize)
	return q
}

// Normalized clamps paging and fills the default sort.
func (q ListQuery) Normalized() ListQuery {
	q.Page, q.PageSize = pagination.Normalize(q.Page, q.PageSize)
	if q.Sort.Field == "" {
		q.Sort = DefaultSort()
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// Validate rejects filters the CMS would not understand.
func (q ListQuery) Validate() error {
	if q.StatusTab != "" && !q.StatusTab.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, q.StatusTab)
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return errors.New("date range ends before it starts")
	}
	return nil
}
