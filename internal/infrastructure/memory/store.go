// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa en desarrollo (STORE_DRIVER=memory) y en los tests de casos de uso y HTTP.
package memory

import (
	"sync"

	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

// Store contiene todas las colecciones bajo un mismo mutex, de modo que los
// listados de productos pueden resolver nombres de categoría y marca de forma consistente.
type Store struct {
	mu         sync.RWMutex
	products   map[string]entity.Product
	categories map[string]entity.Category
	brands     map[string]entity.Brand
	users      map[string]entity.User
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   map[string]entity.Product{},
		categories: map[string]entity.Category{},
		brands:     map[string]entity.Brand{},
		users:      map[string]entity.User{},
	}
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Brands devuelve el repositorio de marcas.
func (s *Store) Brands() *BrandRepo { return &BrandRepo{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }
