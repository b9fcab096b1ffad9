package repository_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

func view(model string, hp float64, price int64, created time.Time) *entity.ProductView {
	return &entity.ProductView{
		Product: entity.Product{
			ModelNumber:    model,
			CategoryID:     "cat-sub",
			BrandID:        "brand-pentax",
			ProductDetails: entity.ProductDetails{HP: hp, Outlet: "1 inch", Phase: entity.PhaseSingle, Watt: 750},
			Price:          decimal.NewFromInt(price),
			IsActive:       true,
			CreatedAt:      created,
		},
		CategoryName: "Submersible",
		BrandName:    "Pentax",
	}
}

func TestProductFilter_Matches(t *testing.T) {
	now := time.Now()
	v := view("SUB-100", 1.5, 15000, now)
	f := func(x float64) *float64 { return &x }
	d := func(x int64) *decimal.Decimal { v := decimal.NewFromInt(x); return &v }

	assert.True(t, repository.ProductFilter{}.Matches(v))
	assert.True(t, repository.ProductFilter{Search: "pentax"}.Matches(v))
	assert.True(t, repository.ProductFilter{Search: "sub-1"}.Matches(v))
	assert.True(t, repository.ProductFilter{Search: "750"}.Matches(v))
	assert.True(t, repository.ProductFilter{Search: "15000"}.Matches(v))
	assert.False(t, repository.ProductFilter{Search: "centrifugal"}.Matches(v))
	assert.True(t, repository.ProductFilter{MinHP: f(1), MaxHP: f(2)}.Matches(v))
	assert.False(t, repository.ProductFilter{MinHP: f(2)}.Matches(v))
	assert.False(t, repository.ProductFilter{MaxPrice: d(10000)}.Matches(v))
	assert.False(t, repository.ProductFilter{Phase: entity.PhaseThree}.Matches(v))
	assert.False(t, repository.ProductFilter{BrandID: "other"}.Matches(v))

	v.IsActive = false
	assert.False(t, repository.ProductFilter{}.Matches(v))
}

func TestSortViewsAndPage(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	views := []*entity.ProductView{
		view("b-2", 3, 300, base.Add(2*time.Hour)),
		view("A-1", 1, 100, base),
		view("c-3", 2, 200, base.Add(time.Hour)),
	}

	repository.SortViews(views, repository.SortModelNumber, false)
	assert.Equal(t, "A-1", views[0].ModelNumber)
	assert.Equal(t, "c-3", views[2].ModelNumber)

	repository.SortViews(views, repository.SortPrice, true)
	assert.Equal(t, "b-2", views[0].ModelNumber)

	repository.SortViews(views, repository.SortCreatedAt, false)
	assert.Equal(t, "A-1", views[0].ModelNumber)

	page := repository.ProductFilter{Limit: 2, Offset: 1}.Page(views)
	assert.Len(t, page, 2)
	assert.Equal(t, "c-3", page[0].ModelNumber)
	assert.Empty(t, repository.ProductFilter{Offset: 5}.Page(views))
}

func TestSortViews_DesempataPorID(t *testing.T) {
	same := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	withID := func(id, model string) *entity.ProductView {
		v := view(model, 1, 100, same)
		v.ID = id
		return v
	}

	for _, order := range [][]string{{"p-3", "p-1", "p-2"}, {"p-2", "p-3", "p-1"}} {
		views := make([]*entity.ProductView, 0, len(order))
		for _, id := range order {
			views = append(views, withID(id, "M-"+id))
		}

		repository.SortViews(views, repository.SortCreatedAt, false)
		assert.Equal(t, []string{"p-1", "p-2", "p-3"}, []string{views[0].ID, views[1].ID, views[2].ID})

		repository.SortViews(views, repository.SortPrice, true)
		assert.Equal(t, []string{"p-3", "p-2", "p-1"}, []string{views[0].ID, views[1].ID, views[2].ID})

		page := repository.ProductFilter{Limit: 1, Offset: 1}.Page(views)
		assert.Equal(t, "p-2", page[0].ID)
	}
}
