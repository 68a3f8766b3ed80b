package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-admin/internal/domains/products/domain"
	"github.com/Apurer/shop-admin/internal/domains/products/ports"
	"github.com/Apurer/shop-admin/internal/shared/validation"
)

type fakeRepo struct {
	ports.Repository
	updated map[int64]ports.ProductForm
}

func (f *fakeRepo) Update(_ context.Context, id int64, form ports.ProductForm) (*domain.Product, error) {
	if f.updated == nil {
		f.updated = map[int64]ports.ProductForm{}
	}
	f.updated[id] = form
	return &domain.Product{ID: id, Name: form.Name}, nil
}

func validForm() ports.ProductForm {
	return ports.ProductForm{
		Name:             "Chip 5G",
		Slug:             "chip-5g",
		SKU:              "chip-5g",
		Price:            decimal.RequireFromString("29.90"),
		PromotionalPrice: decimal.RequireFromString("19.90"),
		Stock:            10,
	}
}

func TestUpdate_NormalizesSKU(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 3, validForm())
	require.NoError(t, err)
	require.Equal(t, "CHIP-5G", repo.updated[3].SKU)
}

func TestUpdate_RejectsPromotionAbovePrice(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	form := validForm()
	form.PromotionalPrice = decimal.RequireFromString("29.90")

	_, err := svc.Update(context.Background(), 3, form)
	fields, ok := validation.As(err)
	require.True(t, ok)
	require.Contains(t, fields, "promotionalPrice")
	require.Empty(t, repo.updated)
}

func TestCreate_MergesTagAndPriceErrors(t *testing.T) {
	svc := NewService(&fakeRepo{})
	form := validForm()
	form.Name = ""
	form.Price = decimal.Zero
	form.PromotionalPrice = decimal.Zero
	form.Stock = -1

	_, err := svc.Create(context.Background(), form)
	fields, ok := validation.As(err)
	require.True(t, ok)
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "price")
	require.Contains(t, fields, "stock")
	require.NotContains(t, fields, "promotionalPrice")
}

func TestDelete_RejectsBadID(t *testing.T) {
	svc := NewService(&fakeRepo{})
	require.ErrorIs(t, svc.Delete(context.Background(), -1), ErrInvalidInput)
}
