package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-admin/internal/domains/users/domain"
	"github.com/Apurer/shop-admin/internal/domains/users/ports"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

type fakeUserRepo struct {
	ports.Repository
	users map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Username: "ana", Email: "ana@example.com"},
	}}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, id int64, form ports.UserForm) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	u.Username, u.Email, u.Document, u.DocumentType = form.Username, form.Email, form.Document, form.DocumentType
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) SetBlocked(_ context.Context, id int64, blocked bool) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	u.Blocked = blocked
	cp := *u
	return &cp, nil
}

func TestUpdate_StripsMasksAndInfersDocumentType(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	got, err := svc.Update(context.Background(), 1, ports.UserForm{
		Username:    "ana",
		Email:       " Ana@Example.com ",
		FirstName:   "Ana",
		Document:    "123.456.789-01",
		MobilePhone: "(11) 98765-4321",
	})
	require.NoError(t, err)
	assert.Equal(t, "12345678901", got.Document)
	assert.Equal(t, domain.DocumentCPF, got.DocumentType)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestUpdate_DocumentLengthMustMatchType(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.Update(context.Background(), 1, ports.UserForm{
		Username:     "ana",
		Email:        "ana@example.com",
		FirstName:    "Ana",
		Document:     "12345678901",
		DocumentType: domain.DocumentCNPJ,
	})
	fields, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, "CNPJ deve ter 14 dígitos.", fields["document"])
}

func TestUpdate_RequiresEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.Update(context.Background(), 1, ports.UserForm{Username: "ana", Email: "not-an-email", FirstName: "Ana"})
	fields, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, fields, "email")
}

func TestBlockUnblock(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Block(ctx, 1)
	require.NoError(t, err)
	assert.True(t, u.Blocked)

	u, err = svc.Unblock(ctx, 1)
	require.NoError(t, err)
	assert.False(t, u.Blocked)

	_, err = svc.Block(ctx, 2)
	assert.True(t, IsNotFound(err))

	_, err = svc.Block(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ana Souza", (&domain.User{FirstName: "Ana", LastName: " Souza "}).FullName())
	assert.Equal(t, "ana", (&domain.User{Username: "ana"}).FullName())
}
