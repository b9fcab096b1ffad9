package entity

import "time"

// Brand es el fabricante de un producto. El nombre es único entre las marcas activas.
type Brand struct {
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
func (b *Brand) Key() string { return NormalizeName(b.Name) }

// Validate verifica longitudes y presencia del nombre.
func (b *Brand) Validate() error {
	return validateNamed("brand", b.Name, b.Description)
}
