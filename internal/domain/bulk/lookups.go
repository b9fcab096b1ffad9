package bulk

import "github.com/Dill1027/DT-Price-List/internal/domain/entity"

// Lookups resuelve nombres de categoría y marca (normalizados) a IDs.
// Se construye una vez por lote y es de solo lectura durante el procesamiento.
type Lookups struct {
	categories map[string]string
	brands     map[string]string
}

// NewLookups crea tablas vacías.
func NewLookups() *Lookups {
	return &Lookups{categories: map[string]string{}, brands: map[string]string{}}
}

// AddCategory registra una categoría activa; si el nombre se repite gana la primera.
func (l *Lookups) AddCategory(name, id string) { addOnce(l.categories, name, id) }

// AddBrand registra una marca activa; si el nombre se repite gana la primera.
func (l *Lookups) AddBrand(name, id string) { addOnce(l.brands, name, id) }

// CategoryID busca por nombre sin distinguir mayúsculas ni espacios extremos.
func (l *Lookups) CategoryID(name string) (string, bool) {
	id, ok := l.categories[entity.NormalizeName(name)]
	return id, ok
}

// BrandID busca por nombre sin distinguir mayúsculas ni espacios extremos.
func (l *Lookups) BrandID(name string) (string, bool) {
	id, ok := l.brands[entity.NormalizeName(name)]
	return id, ok
}

func addOnce(m map[string]string, name, id string) {
	k := entity.NormalizeName(name)
	if k == "" {
		return
	}
	if _, ok := m[k]; !ok {
		m[k] = id
	}
}
