package entity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "pentax", entity.Fold("  PENTAX "))
	assert.Equal(t, "deep tec", entity.Fold("Deep   Tec"))
	assert.Equal(t, "bomba solar", entity.Fold("Bómba Solar"))
	assert.Equal(t, "", entity.Fold("   "))
	assert.Equal(t, entity.ModelKey("sub-100"), entity.ModelKey(" SUB-100"))
}

func validProduct() *entity.Product {
	return &entity.Product{
		CategoryID:  "c1",
		BrandID:     "b1",
		ModelNumber: "SUB-100",
		ProductDetails: entity.ProductDetails{
			HP: 1, Outlet: "1 inch", MaxHead: 50, MaxFlow: 100, Watt: 750, Phase: entity.PhaseSingle,
		},
		Price: decimal.NewFromInt(15000),
	}
}

func TestProductValidate(t *testing.T) {
	assert.NoError(t, validProduct().Validate())

	tests := []struct {
		name   string
		mutate func(p *entity.Product)
	}{
		{"sin categoría", func(p *entity.Product) { p.CategoryID = "" }},
		{"modelo largo", func(p *entity.Product) { p.ModelNumber = strings.Repeat("x", 101) }},
		{"outlet largo", func(p *entity.Product) { p.Outlet = strings.Repeat("x", 51) }},
		{"watt negativo", func(p *entity.Product) { p.Watt = -1 }},
		{"fase inválida", func(p *entity.Product) { p.Phase = "2 Phase" }},
		{"precio negativo", func(p *entity.Product) { p.Price = decimal.NewFromInt(-5) }},
		{"precio con tres decimales", func(p *entity.Product) { p.Price = decimal.RequireFromString("15000.555") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)
			err := p.Validate()
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestActorCapacidades(t *testing.T) {
	admin := entity.Actor{Role: entity.RoleAdmin}
	project := entity.Actor{Role: entity.RoleProjectUser}
	employee := entity.Actor{Role: entity.RoleEmployee}

	assert.True(t, admin.IsAdmin())
	assert.False(t, project.IsAdmin())
	assert.True(t, project.CanEditProducts())
	assert.True(t, project.CanSeePrice())
	assert.False(t, employee.CanEditProducts())
	assert.False(t, employee.CanSeePrice())
}

func TestValidPriceScale(t *testing.T) {
	assert.True(t, entity.ValidPriceScale(decimal.RequireFromString("15000")))
	assert.True(t, entity.ValidPriceScale(decimal.RequireFromString("15000.55")))
	assert.True(t, entity.ValidPriceScale(decimal.RequireFromString("15000.500")))
	assert.False(t, entity.ValidPriceScale(decimal.RequireFromString("15000.555")))
}
