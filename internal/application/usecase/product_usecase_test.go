package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dill1027/DT-Price-List/internal/application/dto"
	"github.com/Dill1027/DT-Price-List/internal/application/usecase"
	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/memory"
)

var (
	admin    = entity.Actor{UserID: "u-admin", Username: "admin", Role: entity.RoleAdmin}
	project  = entity.Actor{UserID: "u-project", Username: "project", Role: entity.RoleProjectUser}
	employee = entity.Actor{UserID: "u-employee", Username: "employee", Role: entity.RoleEmployee}
)

func ptr[T any](v T) *T { return &v }

func newCatalog(t *testing.T) (*memory.Store, *usecase.ProductUseCase) {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Categories().Create(ctx, &entity.Category{ID: "cat-sub", Name: "Submersible", IsActive: true}))
	require.NoError(t, s.Categories().Create(ctx, &entity.Category{ID: "cat-old", Name: "Old", IsActive: false}))
	require.NoError(t, s.Brands().Create(ctx, &entity.Brand{ID: "brand-pentax", Name: "Pentax", IsActive: true}))
	return s, usecase.NewProductUseCase(s.Products(), s.Categories(), s.Brands())
}

func createReq(model string, price int64) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		CategoryID: "cat-sub", BrandID: "brand-pentax", ModelNumber: model,
		HP: ptr(1.5), Outlet: "1 inch", MaxHead: ptr(40.0), MaxFlow: ptr(90.0), Watt: ptr(1100.0),
		Phase: entity.PhaseSingle, Price: ptr(decimal.NewFromInt(price)),
	}
}

func TestProductCreate_AdminFijaPrecio(t *testing.T) {
	_, uc := newCatalog(t)
	res, err := uc.Create(context.Background(), admin, createReq(" SUB-1 ", 15000))
	require.NoError(t, err)
	assert.Equal(t, "SUB-1", res.ModelNumber)
	assert.Equal(t, "Submersible", res.Category.Name)
	assert.Equal(t, "Pentax", res.Brand.Name)
	require.NotNil(t, res.Price)
	assert.True(t, res.Price.Equal(decimal.NewFromInt(15000)))
}

func TestProductCreate_ProjectUserPrecioCero(t *testing.T) {
	_, uc := newCatalog(t)
	res, err := uc.Create(context.Background(), project, createReq("SUB-1", 15000))
	require.NoError(t, err)
	require.NotNil(t, res.Price)
	assert.True(t, res.Price.IsZero())
}

func TestProductCreate_Rechazos(t *testing.T) {
	_, uc := newCatalog(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, employee, createReq("SUB-1", 1))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	in := createReq("SUB-1", 1)
	in.CategoryID = "cat-old"
	_, err = uc.Create(ctx, admin, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = createReq("SUB-1", 1)
	in.Price = ptr(decimal.RequireFromString("15000.555"))
	_, err = uc.Create(ctx, admin, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, admin, createReq("SUB-1", 1))
	require.NoError(t, err)
	_, err = uc.Create(ctx, admin, createReq("sub-1", 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_PrecioSoloAdmin(t *testing.T) {
	_, uc := newCatalog(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, admin, createReq("SUB-1", 15000))
	require.NoError(t, err)

	res, err := uc.Update(ctx, project, created.ID, dto.UpdateProductRequest{HP: ptr(2.0), Price: ptr(decimal.NewFromInt(1))})
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.HP)
	assert.True(t, res.Price.Equal(decimal.NewFromInt(15000)), "el precio de un no administrador se ignora")

	res, err = uc.Update(ctx, admin, created.ID, dto.UpdateProductRequest{Price: ptr(decimal.NewFromInt(16000))})
	require.NoError(t, err)
	assert.True(t, res.Price.Equal(decimal.NewFromInt(16000)))
	assert.Equal(t, "u-admin", res.UpdatedBy)
}

func TestProductUpdate_ModeloDuplicado(t *testing.T) {
	_, uc := newCatalog(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, admin, createReq("SUB-1", 1))
	require.NoError(t, err)
	second, err := uc.Create(ctx, admin, createReq("SUB-2", 1))
	require.NoError(t, err)

	_, err = uc.Update(ctx, admin, second.ID, dto.UpdateProductRequest{ModelNumber: ptr("SUB-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update(ctx, admin, second.ID, dto.UpdateProductRequest{ModelNumber: ptr("sub-2")})
	assert.NoError(t, err, "el propio modelo con otra capitalización es válido")
}

func TestProductDelete_BajaLogica(t *testing.T) {
	s, uc := newCatalog(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, admin, createReq("SUB-1", 1))
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, project, created.ID), domain.ErrForbidden)
	require.NoError(t, uc.Delete(ctx, admin, created.ID))

	_, err = uc.GetByID(ctx, admin, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	stored, err := s.Products().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	check, err := uc.CheckModel(ctx, "SUB-1")
	require.NoError(t, err)
	assert.True(t, check.Available)
}

func TestProductList_EmpleadoNoVePrecios(t *testing.T) {
	_, uc := newCatalog(t)
	ctx := context.Background()
	for i, m := range []string{"B-2", "A-1", "C-3"} {
		_, err := uc.Create(ctx, admin, createReq(m, int64(1000*(i+1))))
		require.NoError(t, err)
	}

	res, err := uc.List(ctx, employee, dto.ProductListQuery{MinPrice: ptr(decimal.NewFromInt(2500)), SortBy: repository.SortModelNumber})
	require.NoError(t, err)
	require.Len(t, res.Items, 3, "el filtro de precio no aplica para empleados")
	assert.Equal(t, "A-1", res.Items[0].ModelNumber)
	for _, it := range res.Items {
		assert.Nil(t, it.Price)
	}
	assert.Equal(t, dto.PageResponse{Page: 1, Limit: dto.DefaultPageLimit, Total: 3, Pages: 1}, res.Page)

	res, err = uc.List(ctx, admin, dto.ProductListQuery{MinPrice: ptr(decimal.NewFromInt(2500))})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "C-3", res.Items[0].ModelNumber)
}

func TestProductList_PaginaYOrden(t *testing.T) {
	_, uc := newCatalog(t)
	ctx := context.Background()
	for _, m := range []string{"A-1", "B-2", "C-3"} {
		_, err := uc.Create(ctx, admin, createReq(m, 1))
		require.NoError(t, err)
	}
	res, err := uc.List(ctx, admin, dto.ProductListQuery{
		PageRequest: dto.PageRequest{Page: 2, Limit: 2},
		SortBy:      repository.SortModelNumber, SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "A-1", res.Items[0].ModelNumber)
	assert.Equal(t, 2, res.Page.Pages)
}

func TestProductListByCategory(t *testing.T) {
	_, uc := newCatalog(t)
	ctx := context.Background()
	for _, m := range []string{"Z-9", "A-1"} {
		_, err := uc.Create(ctx, admin, createReq(m, 1))
		require.NoError(t, err)
	}
	items, err := uc.ListByCategory(ctx, admin, "cat-sub")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A-1", items[0].ModelNumber)

	items, err = uc.ListByCategory(ctx, admin, "cat-old")
	require.NoError(t, err)
	assert.Empty(t, items)
}
