package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/application/store"
	"github.com/jhoicas/morefix-stock/internal/application/usecase"
	"github.com/jhoicas/morefix-stock/internal/domain"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(context.Background(), nil, zerolog.Nop())
}

func ptr[T any](v T) *T { return &v }

func TestCategoryCreate_NombreDuplicadoSinAcentos(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newStore(t), 5)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Écrans"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "ecrans"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, uc.List(), 8)
}

func TestCategoryUpdate_CamposParciales(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newStore(t), 5)

	out, err := uc.Update("cat-1", dto.UpdateCategoryRequest{Description: ptr("Tous les claviers")})

	require.NoError(t, err)
	assert.Equal(t, "Claviers", out.Name)
	assert.Equal(t, "Tous les claviers", out.Description)
}

func TestCategoryUpdate_RenombrarAExistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newStore(t), 5)

	_, err := uc.Update("cat-1", dto.UpdateCategoryRequest{Name: ptr("souris")})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryDelete_NoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newStore(t), 5)

	assert.ErrorIs(t, uc.Delete("cat-x"), domain.ErrNotFound)
	_, err := uc.GetByID("cat-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryProducts_FlagsDeStock(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newStore(t), 5)

	out, err := uc.Products("cat-2")

	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.False(t, out.Items[0].OutOfStock)
	assert.True(t, out.Items[1].OutOfStock)
	assert.False(t, out.Items[1].LowStock)
}

func TestSupplierCRUD(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newStore(t))

	created, err := uc.Create(dto.CreateSupplierRequest{Name: "LDLC Pro", Email: "pro@ldlc.com"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateSupplierRequest{Name: "ldlc pro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	updated, err := uc.Update(created.ID, dto.UpdateSupplierRequest{Phone: ptr("04 00 00 00 00")})
	require.NoError(t, err)
	assert.Equal(t, "pro@ldlc.com", updated.Email)
	assert.Equal(t, "04 00 00 00 00", updated.Phone)

	require.NoError(t, uc.Delete(created.ID))
	assert.Len(t, uc.List(), 3)
}

func TestProductCreate_ReferenciasYSKU(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t), 5)
	in := dto.CreateProductRequest{
		Name: "Écran Dell 27", CategoryID: "cat-7", SupplierID: "sup-2",
		Price: decimal.RequireFromString("289.90"), Quantity: 4, SKU: "DEL-27-QHD",
	}

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.True(t, out.LowStock)
	assert.NotEmpty(t, out.ID)

	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	in.SKU, in.CategoryID = "OTHER", "cat-x"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.CategoryID, in.SupplierID = "cat-7", "sup-x"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t), 5)

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "x", CategoryID: "cat-1", SupplierID: "sup-1", SKU: "X", Price: decimal.NewFromInt(-1),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_CantidadYCategoria(t *testing.T) {
	s := newStore(t)
	uc := usecase.NewProductUseCase(s, 5)

	out, err := uc.Update("prod-8", dto.UpdateProductRequest{Quantity: ptr(30), CategoryID: ptr("cat-7")})
	require.NoError(t, err)
	assert.Equal(t, 30, out.Quantity)
	assert.False(t, out.LowStock)

	p, ok := s.GetProductByID("prod-8")
	require.True(t, ok)
	assert.Equal(t, "cat-7", p.CategoryID)

	_, err = uc.Update("prod-8", dto.UpdateProductRequest{SKU: ptr("nv-rtx4070")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update("prod-x", dto.UpdateProductRequest{Quantity: ptr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_FiltroYAlertas(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t), 5)

	assert.Equal(t, 12, uc.List("").Total)
	assert.Equal(t, 2, uc.List("cat-4").Total)
	assert.Equal(t, 0, uc.List("cat-x").Total)
	assert.Equal(t, 3, uc.LowStock(0).Total)
	assert.Equal(t, 1, uc.LowStock(2).Total)
	assert.Equal(t, 2, uc.OutOfStock().Total)
}

func TestProductDelete(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t), 5)

	require.NoError(t, uc.Delete("prod-1"))
	assert.ErrorIs(t, uc.Delete("prod-1"), domain.ErrNotFound)
	assert.Equal(t, 11, uc.List("").Total)
}
