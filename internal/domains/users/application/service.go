package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Apurer/shop-admin/internal/domains/users/domain"
	"github.com/Apurer/shop-admin/internal/domains/users/ports"
	"github.com/Apurer/shop-admin/internal/shared/masks"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

// ErrInvalidInput signals a bad id.
var ErrInvalidInput = errors.New("invalid user input")

// Service exposes customer use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, q ports.ListQuery) (pagination.Page[*domain.User], error) {
	q.Page, q.PageSize = pagination.Normalize(q.Page, q.PageSize)
	q.Search = strings.TrimSpace(q.Search)
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, form ports.UserForm) (*domain.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	form, err := ValidateForm(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, form)
}

func (s *Service) Block(ctx context.Context, id int64) (*domain.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.SetBlocked(ctx, id, true)
}

func (s *Service) Unblock(ctx context.Context, id int64) (*domain.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.SetBlocked(ctx, id, false)
}

// ValidateForm strips masks from document and phone, infers a missing document
// type and checks the document length matches its type.
func ValidateForm(form ports.UserForm) (ports.UserForm, error) {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)
	form.Document = masks.Digits(form.Document)
	form.MobilePhone = masks.Digits(form.MobilePhone)
	if form.Document != "" && form.DocumentType == "" {
		if inferred, ok := domain.InferDocumentType(form.Document); ok {
			form.DocumentType = inferred
		}
	}

	fields := validation.FieldErrors{}
	if err := validation.Struct(form); err != nil {
		fe, ok := validation.As(err)
		if !ok {
			return form, err
		}
		fields = fe
	}
	if _, bad := fields["document"]; !bad && form.Document != "" {
		switch {
		case form.DocumentType == domain.DocumentCPF && len(form.Document) != 11:
			fields["document"] = "CPF deve ter 11 dígitos."
		case form.DocumentType == domain.DocumentCNPJ && len(form.Document) != 14:
			fields["document"] = "CNPJ deve ter 14 dígitos."
		case form.DocumentType == "":
			fields["document"] = "Informe um CPF ou CNPJ válido."
		}
	}
	if len(fields) > 0 {
		return form, fields
	}
	return form, nil
}

func checkID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ports.ErrNotFound)
}

var _ ports.Service = (*Service)(nil)
