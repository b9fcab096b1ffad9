package bulkupload

import (
	"context"
	"fmt"

	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

// Resolver carga las categorías y marcas activas una vez por lote.
type Resolver struct {
	categories repository.CategoryRepository
	brands     repository.BrandRepository
}

// NewResolver construye el resolver de referencias.
func NewResolver(categories repository.CategoryRepository, brands repository.BrandRepository) *Resolver {
	return &Resolver{categories: categories, brands: brands}
}

// Resolve arma las tablas nombre → ID. Un fallo de lectura aborta el lote.
func (r *Resolver) Resolve(ctx context.Context) (*bulk.Lookups, error) {
	cats, err := r.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	brands, err := r.brands.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brands: %w", err)
	}
	lk := bulk.NewLookups()
	for _, c := range cats {
		lk.AddCategory(c.Name, c.ID)
	}
	for _, b := range brands {
		lk.AddBrand(b.Name, b.ID)
	}
	return lk, nil
}
