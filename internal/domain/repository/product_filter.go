package repository

import (
	"cmp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

// Campos de ordenamiento aceptados en listados de productos.
const (
	SortCreatedAt   = "createdAt"
	SortModelNumber = "modelNumber"
	SortHP          = "hp"
	SortPrice       = "price"
	SortWatt        = "watt"
	SortMaxHead     = "maxHead"
)

// ValidSortField indica si s es un campo de ordenamiento conocido.
func ValidSortField(s string) bool {
	switch s {
	case SortCreatedAt, SortModelNumber, SortHP, SortPrice, SortWatt, SortMaxHead:
		return true
	}
	return false
}

// ProductFilter criterios de búsqueda sobre productos activos. Limit <= 0 devuelve todos.
type ProductFilter struct {
	CategoryID string
	BrandID    string
	Phase      string
	MinHP      *float64
	MaxHP      *float64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Search     string
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

// Matches evalúa el filtro en memoria (adaptadores sin motor de consultas).
func (f ProductFilter) Matches(v *entity.ProductView) bool {
	if !v.IsActive {
		return false
	}
	if f.CategoryID != "" && v.CategoryID != f.CategoryID {
		return false
	}
	if f.BrandID != "" && v.BrandID != f.BrandID {
		return false
	}
	if f.Phase != "" && v.Phase != f.Phase {
		return false
	}
	if f.MinHP != nil && v.HP < *f.MinHP {
		return false
	}
	if f.MaxHP != nil && v.HP > *f.MaxHP {
		return false
	}
	if f.MinPrice != nil && v.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && v.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Search != "" && !matchesSearch(v, f.Search) {
		return false
	}
	return true
}

// matchesSearch: subcadena sin distinguir mayúsculas sobre los campos de texto,
// o igualdad exacta sobre los numéricos si el término es un número.
func matchesSearch(v *entity.ProductView, term string) bool {
	needle := entity.Fold(term)
	for _, s := range []string{v.ModelNumber, v.Outlet, v.Phase, v.CategoryName, v.BrandName} {
		if strings.Contains(entity.Fold(s), needle) {
			return true
		}
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(term), 64)
	if err != nil {
		return false
	}
	if v.HP == n || v.MaxHead == n || v.MaxFlow == n || v.Watt == n {
		return true
	}
	return v.Price.Equal(decimal.NewFromFloat(n))
}

// SortViews ordena según SortBy (createdAt por defecto). El ID desempata en la misma
// dirección, igual que el ORDER BY de PostgreSQL, para que la paginación sea determinista.
func SortViews(views []*entity.ProductView, by string, desc bool) {
	compare := func(a, b *entity.ProductView) int {
		switch by {
		case SortModelNumber:
			return strings.Compare(entity.ModelKey(a.ModelNumber), entity.ModelKey(b.ModelNumber))
		case SortHP:
			return cmp.Compare(a.HP, b.HP)
		case SortPrice:
			return a.Price.Cmp(b.Price)
		case SortWatt:
			return cmp.Compare(a.Watt, b.Watt)
		case SortMaxHead:
			return cmp.Compare(a.MaxHead, b.MaxHead)
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
	less := func(a, b *entity.ProductView) bool {
		if c := compare(a, b); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	}
	sort.SliceStable(views, func(i, j int) bool {
		if desc {
			return less(views[j], views[i])
		}
		return less(views[i], views[j])
	})
}

// Page recorta views según Limit/Offset.
func (f ProductFilter) Page(views []*entity.ProductView) []*entity.ProductView {
	if f.Offset > 0 {
		if f.Offset >= len(views) {
			return []*entity.ProductView{}
		}
		views = views[f.Offset:]
	}
	if f.Limit > 0 && len(views) > f.Limit {
		views = views[:f.Limit]
	}
	return views
}
