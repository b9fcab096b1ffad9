package memory

import (
	"context"
	"sort"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.BrandRepository    = (*BrandRepo)(nil)
)

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) nameTaken(key, exceptID string) bool {
	for id, c := range r.s.categories {
		if id != exceptID && c.IsActive && c.Key() == key {
			return true
		}
	}
	return false
}

// Create persiste una categoría; ErrDuplicate si el nombre ya existe entre las activas.
func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if category.IsActive && r.nameTaken(category.Key(), category.ID) {
		return domain.ErrDuplicate
	}
	r.s.categories[category.ID] = *category
	return nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// FindActiveByName busca por nombre normalizado.
func (r *CategoryRepo) FindActiveByName(_ context.Context, name string) (*entity.Category, error) {
	key := entity.NormalizeName(name)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.IsActive && c.Key() == key {
			return &c, nil
		}
	}
	return nil, nil
}

// Update reemplaza la categoría.
func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	if category.IsActive && r.nameTaken(category.Key(), category.ID) {
		return domain.ErrDuplicate
	}
	r.s.categories[category.ID] = *category
	return nil
}

// ListActive devuelve las categorías activas ordenadas por nombre.
func (r *CategoryRepo) ListActive(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		if c.IsActive {
			c := c
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key() < list[j].Key() })
	return list, nil
}

// BrandRepo implementación en memoria de BrandRepository.
type BrandRepo struct {
	s *Store
}

func (r *BrandRepo) nameTaken(key, exceptID string) bool {
	for id, b := range r.s.brands {
		if id != exceptID && b.IsActive && b.Key() == key {
			return true
		}
	}
	return false
}

// Create persiste una marca; ErrDuplicate si el nombre ya existe entre las activas.
func (r *BrandRepo) Create(_ context.Context, brand *entity.Brand) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if brand.IsActive && r.nameTaken(brand.Key(), brand.ID) {
		return domain.ErrDuplicate
	}
	r.s.brands[brand.ID] = *brand
	return nil
}

// GetByID obtiene una marca por ID; nil si no existe.
func (r *BrandRepo) GetByID(_ context.Context, id string) (*entity.Brand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.brands[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// FindActiveByName busca por nombre normalizado.
func (r *BrandRepo) FindActiveByName(_ context.Context, name string) (*entity.Brand, error) {
	key := entity.NormalizeName(name)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.brands {
		if b.IsActive && b.Key() == key {
			return &b, nil
		}
	}
	return nil, nil
}

// Update reemplaza la marca.
func (r *BrandRepo) Update(_ context.Context, brand *entity.Brand) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.brands[brand.ID]; !ok {
		return domain.ErrNotFound
	}
	if brand.IsActive && r.nameTaken(brand.Key(), brand.ID) {
		return domain.ErrDuplicate
	}
	r.s.brands[brand.ID] = *brand
	return nil
}

// ListActive devuelve las marcas activas ordenadas por nombre.
func (r *BrandRepo) ListActive(_ context.Context) ([]*entity.Brand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Brand, 0, len(r.s.brands))
	for _, b := range r.s.brands {
		if b.IsActive {
			b := b
			list = append(list, &b)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key() < list[j].Key() })
	return list, nil
}
