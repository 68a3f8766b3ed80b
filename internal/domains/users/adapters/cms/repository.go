package cms

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/users/domain"
	"github.com/Apurer/shop-admin/internal/domains/users/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

const usersPath = "/users"

// UserRecord is the users-permissions user. Unlike content types it is not wrapped
// in a data/attributes envelope.
type UserRecord struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Document     string     `json:"document"`
	DocumentType string     `json:"documentType"`
	MobilePhone  string     `json:"mobilePhone"`
	Blocked      bool       `json:"blocked"`
	Confirmed    bool       `json:"confirmed"`
	CreatedAt    *time.Time `json:"createdAt"`
}

// Repository reads and edits storefront customers through the CMS users API.
type Repository struct {
	client *cmsclient.Client
}

func NewRepository(client *cmsclient.Client) *Repository {
	return &Repository{client: client}
}

func ConvertUser(rec UserRecord) *domain.User {
	u := &domain.User{
		ID:           rec.ID,
		Username:     rec.Username,
		Email:        rec.Email,
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		Document:     rec.Document,
		DocumentType: domain.DocumentType(rec.DocumentType),
		MobilePhone:  rec.MobilePhone,
		Blocked:      rec.Blocked,
		Confirmed:    rec.Confirmed,
	}
	if rec.CreatedAt != nil {
		u.CreatedAt = *rec.CreatedAt
	}
	return u
}

// BuildFilters matches Search against username, e-mail, first and last name.
func BuildFilters(search string) cmsclient.Filters {
	if search == "" {
		return nil
	}
	var or []any
	for _, field := range []string{"username", "email", "firstName", "lastName"} {
		or = append(or, map[string]any{field: map[string]any{"$containsi": search}})
	}
	return cmsclient.Filters{"$or": or}
}

// List pages with start/limit and asks /users/count for the total, since the
// users endpoint returns a bare array.
func (r *Repository) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.User], error) {
	filters := BuildFilters(q.Search)
	query := &cmsclient.Query{
		Filters: filters,
		Sort:    []string{"createdAt:desc"},
		Params: url.Values{
			"start": {strconv.Itoa((q.Page - 1) * q.PageSize)},
			"limit": {strconv.Itoa(q.PageSize)},
		},
	}
	var recs []UserRecord
	if err := r.client.Get(ctx, usersPath, query, &recs); err != nil {
		return pagination.Page[*domain.User]{}, err
	}
	var total int
	if err := r.client.Get(ctx, usersPath+"/count", &cmsclient.Query{Filters: filters}, &total); err != nil {
		return pagination.Page[*domain.User]{}, err
	}
	items := make([]*domain.User, 0, len(recs))
	for _, rec := range recs {
		items = append(items, ConvertUser(rec))
	}
	return pagination.Page[*domain.User]{
		Items: items,
		Meta: pagination.Meta{
			Page:      q.Page,
			PageSize:  q.PageSize,
			PageCount: pagination.PageCount(total, q.PageSize),
			Total:     total,
		},
	}, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var rec UserRecord
	if err := r.client.Get(ctx, userPath(id), nil, &rec); err != nil {
		return nil, translate(err)
	}
	if rec.ID == 0 {
		return nil, ports.ErrNotFound
	}
	return ConvertUser(rec), nil
}

func (r *Repository) Update(ctx context.Context, id int64, form ports.UserForm) (*domain.User, error) {
	body := map[string]any{
		"username":     form.Username,
		"email":        form.Email,
		"firstName":    form.FirstName,
		"lastName":     form.LastName,
		"document":     form.Document,
		"documentType": string(form.DocumentType),
		"mobilePhone":  form.MobilePhone,
	}
	return r.put(ctx, id, body)
}

func (r *Repository) SetBlocked(ctx context.Context, id int64, blocked bool) (*domain.User, error) {
	return r.put(ctx, id, map[string]any{"blocked": blocked})
}

func (r *Repository) put(ctx context.Context, id int64, body map[string]any) (*domain.User, error) {
	var rec UserRecord
	if err := r.client.Put(ctx, userPath(id), body, &rec); err != nil {
		return nil, translate(err)
	}
	return ConvertUser(rec), nil
}

func userPath(id int64) string {
	return fmt.Sprintf("%s/%d", usersPath, id)
}

func translate(err error) error {
	if errors.Is(err, cmsclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	return err
}

var _ ports.Repository = (*Repository)(nil)
