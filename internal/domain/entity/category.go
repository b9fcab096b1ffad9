package entity

import (
	"time"
	"unicode/utf8"

	"github.com/Dill1027/DT-Price-List/internal/domain"
)

// Límites de longitud para categorías y marcas.
const (
	MaxNameLen        = 100
	MaxDescriptionLen = 500
)

// Category agrupa productos por tipo de bomba. El nombre es único entre las categorías activas.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Key devuelve la clave de unicidad del nombre.
func (c *Category) Key() string { return NormalizeName(c.Name) }

// Validate verifica longitudes y presencia del nombre.
func (c *Category) Validate() error {
	return validateNamed("category", c.Name, c.Description)
}

func validateNamed(kind, name, description string) error {
	if name == "" {
		return domain.Invalid(kind + " name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return domain.Invalid(kind + " name cannot exceed 100 characters")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return domain.Invalid("description cannot exceed 500 characters")
	}
	return nil
}
