package mapper

import (
	"strings"
	"time"

	"github.com/Apurer/shop-admin/internal/domains/orders/application"
	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	apierrors "github.com/Apurer/shop-admin/internal/shared/errors"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

const dateLayout = "2006-01-02"

// FiltersView echoes the applied listing query.
type FiltersView struct {
	Search        string `json:"search"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	Sort          string `json:"sort"`
	Page          int    `json:"page"`
	PageSize      int    `json:"pageSize"`
}

type PendingActionView struct {
	Token     string      `json:"token"`
	Kind      string      `json:"kind"`
	OrderID   int64       `json:"orderId"`
	OrderCode string      `json:"orderCode,omitempty"`
	Status    *StatusView `json:"status,omitempty"`
	Prompt    string      `json:"prompt"`
}

// ListingView is the orders screen state.
type ListingView struct {
	Filters       FiltersView        `json:"filters"`
	SearchInput   string             `json:"searchInput"`
	SearchPending bool               `json:"searchPending"`
	Loading       bool               `json:"loading"`
	FetchFailed   bool               `json:"fetchFailed"`
	Orders        []OrderSummary     `json:"orders"`
	Pagination    pagination.Meta    `json:"pagination"`
	FetchedAt     *time.Time         `json:"fetchedAt,omitempty"`
	Pending       *PendingActionView `json:"pending,omitempty"`
	Toast         *apierrors.Toast   `json:"toast,omitempty"`
	StatusTabs    []StatusView       `json:"statusTabs"`
}

// ToFilters echoes a query back to the dashboard.
func ToFilters(q domain.ListQuery) FiltersView {
	f := FiltersView{
		Search:        q.Search,
		Status:        string(q.StatusTab),
		PaymentMethod: string(q.PaymentMethod),
		Sort:          q.Sort.String(),
		Page:          q.Page,
		PageSize:      q.PageSize,
	}
	if !q.From.IsZero() {
		f.From = q.From.Format(dateLayout)
	}
	if !q.To.IsZero() {
		f.To = q.To.Format(dateLayout)
	}
	return f
}

// StatusTabs lists every status in display order.
func StatusTabs() []StatusView {
	statuses := domain.AllStatuses()
	out := make([]StatusView, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusOf(s))
	}
	return out
}

func ToPendingAction(p application.PendingAction) PendingActionView {
	v := PendingActionView{
		Token:     p.Token,
		Kind:      string(p.Kind),
		OrderID:   p.OrderID,
		OrderCode: p.OrderCode,
		Prompt:    p.Prompt,
	}
	if p.Status != "" {
		s := StatusOf(p.Status)
		v.Status = &s
	}
	return v
}

// ToListingView maps a listing snapshot.
func ToListingView(s application.ListingSnapshot) ListingView {
	page := pagination.Map(s.Page, ToSummary)
	v := ListingView{
		Filters:       ToFilters(s.Query),
		SearchInput:   s.SearchInput,
		SearchPending: s.SearchPending,
		Loading:       s.Loading,
		FetchFailed:   s.FetchFailed,
		Orders:        page.Items,
		Pagination:    page.Meta,
		Toast:         s.Toast,
		StatusTabs:    StatusTabs(),
	}
	if !s.FetchedAt.IsZero() {
		t := s.FetchedAt
		v.FetchedAt = &t
	}
	if s.Pending != nil {
		p := ToPendingAction(*s.Pending)
		v.Pending = &p
	}
	return v
}

// ListingPatch is the body of PATCH /admin/orders/view. Absent fields are untouched;
// from and to are replaced together.
type ListingPatch struct {
	Search        *string `json:"search"`
	Status        *string `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
	From          *string `json:"from"`
	To            *string `json:"to"`
	Sort          *string `json:"sort"`
	PageSize      *int    `json:"pageSize"`
	Page          *int    `json:"page"`
}

// ToChange validates the patch. Errors come back as validation.FieldErrors.
func (p ListingPatch) ToChange() (application.ListingChange, error) {
	var change application.ListingChange
	fields := validation.FieldErrors{}

	change.Search = p.Search
	if p.Status != nil {
		status, err := ParseStatusFilter(*p.Status)
		if err != nil {
			fields["status"] = "status desconhecido"
		}
		change.StatusTab = &status
	}
	if p.PaymentMethod != nil {
		method := domain.PaymentMethod(strings.TrimSpace(*p.PaymentMethod))
		if method != "" && !method.Known() {
			fields["paymentMethod"] = "forma de pagamento desconhecida"
		}
		change.PaymentMethod = &method
	}
	if p.From != nil || p.To != nil {
		from, err := ParseDate(deref(p.From), false)
		if err != nil {
			fields["from"] = "data inválida"
		}
		to, err := ParseDate(deref(p.To), true)
		if err != nil {
			fields["to"] = "data inválida"
		}
		change.DateRange = &[2]time.Time{from, to}
	}
	if p.Sort != nil {
		sort, err := domain.ParseSort(*p.Sort)
		if err != nil {
			fields["sort"] = "ordenação inválida"
		}
		change.Sort = &sort
	}
	if p.PageSize != nil {
		if *p.PageSize < 1 || *p.PageSize > pagination.MaxPageSize {
			fields["pageSize"] = "tamanho de página inválido"
		}
		change.PageSize = p.PageSize
	}
	if p.Page != nil {
		if *p.Page < 1 {
			fields["page"] = "página inválida"
		}
		change.Page = p.Page
	}
	if len(fields) > 0 {
		return application.ListingChange{}, fields
	}
	return change, nil
}

// ActionRequest asks for a confirmation prompt.
type ActionRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=status_change delete"`
	OrderID int64  `json:"orderId" binding:"required,gt=0"`
	Status  string `json:"status"`
}

// ConfirmRequest carries the token of the prompt being confirmed or cancelled.
type ConfirmRequest struct {
	Token string `json:"token" binding:"required"`
}

// ParseStatusFilter reads a status tab; "" and "all" select every status.
func ParseStatusFilter(raw string) (domain.Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", nil
	}
	return domain.ParseStatus(raw)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339. A plain date used as an upper
// bound covers the whole day.
func ParseDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
