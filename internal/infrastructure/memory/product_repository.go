package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

// activeModelTaken indica si otro producto activo ya usa la clave. Requiere el lock.
func (r *ProductRepo) activeModelTaken(key, exceptID string) bool {
	for id, p := range r.s.products {
		if id != exceptID && p.IsActive && p.Key() == key {
			return true
		}
	}
	return false
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	if product.IsActive && r.activeModelTaken(product.Key(), product.ID) {
		return domain.ErrDuplicate
	}
	r.s.products[product.ID] = *product
	return nil
}

// GetByID obtiene un producto por ID (activo o no); nil si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// FindActiveByModel busca el producto activo con la misma clave de modelo.
func (r *ProductRepo) FindActiveByModel(_ context.Context, modelNumber string) (*entity.Product, error) {
	key := entity.ModelKey(modelNumber)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.IsActive && p.Key() == key {
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto completo.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	if product.IsActive && r.activeModelTaken(product.Key(), product.ID) {
		return domain.ErrDuplicate
	}
	r.s.products[product.ID] = *product
	return nil
}

// UpdatePrice modifica solo el precio.
func (r *ProductRepo) UpdatePrice(_ context.Context, id string, price decimal.Decimal, updatedBy string, at time.Time) error {
	return r.mutate(id, updatedBy, at, func(p *entity.Product) { p.Price = price })
}

// UpdateDetails modifica solo los atributos técnicos.
func (r *ProductRepo) UpdateDetails(_ context.Context, id string, details entity.ProductDetails, updatedBy string, at time.Time) error {
	return r.mutate(id, updatedBy, at, func(p *entity.Product) { p.ProductDetails = details })
}

func (r *ProductRepo) mutate(id, updatedBy string, at time.Time, fn func(p *entity.Product)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || !p.IsActive {
		return domain.ErrNotFound
	}
	fn(&p)
	p.UpdatedBy = updatedBy
	p.UpdatedAt = at
	r.s.products[id] = p
	return nil
}

// List filtra, ordena y pagina productos activos junto con sus nombres de categoría y marca.
func (r *ProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.ProductView, int, error) {
	r.s.mu.RLock()
	views := make([]*entity.ProductView, 0, len(r.s.products))
	for _, p := range r.s.products {
		v := &entity.ProductView{
			Product:      p,
			CategoryName: r.s.categories[p.CategoryID].Name,
			BrandName:    r.s.brands[p.BrandID].Name,
		}
		if filter.Matches(v) {
			views = append(views, v)
		}
	}
	r.s.mu.RUnlock()

	repository.SortViews(views, filter.SortBy, filter.SortDesc)
	return filter.Page(views), len(views), nil
}
