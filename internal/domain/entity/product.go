package entity

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain"
)

// Fases aceptadas para Product.Phase.
const (
	PhaseSingle = "1 Phase"
	PhaseThree  = "3 Phase"
)

// Límites de longitud de los campos de texto del producto.
const (
	MaxModelNumberLen = 100
	MaxOutletLen      = 50
)

// PriceDecimals decimales de un precio; coincide con NUMERIC(14, 2) en PostgreSQL.
const PriceDecimals = 2

// ValidPriceScale indica si el precio no tiene más de PriceDecimals decimales significativos.
func ValidPriceScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(PriceDecimals))
}

// ValidPhase indica si s es uno de los literales de fase aceptados.
func ValidPhase(s string) bool {
	return s == PhaseSingle || s == PhaseThree
}

// ProductDetails agrupa los atributos técnicos que se pueden modificar sin tocar el precio.
type ProductDetails struct {
	HP      float64
	Outlet  string
	MaxHead float64
	MaxFlow float64
	Watt    float64
	Phase   string
}

// Product representa un modelo de bomba/motor de la lista de precios.
// ModelNumber es único (sin distinguir mayúsculas) entre los productos activos.
type Product struct {
	ID          string
	CategoryID  string
	BrandID     string
	ModelNumber string
	ProductDetails
	Price     decimal.Decimal
	IsActive  bool
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key devuelve la clave de unicidad del modelo.
func (p *Product) Key() string { return ModelKey(p.ModelNumber) }

// Details devuelve una copia de los atributos técnicos.
func (p *Product) Details() ProductDetails { return p.ProductDetails }

// Validate verifica las restricciones de persistencia del producto.
func (p *Product) Validate() error {
	if p.CategoryID == "" || p.BrandID == "" {
		return domain.Invalid("category and brand are required")
	}
	if p.ModelNumber == "" {
		return domain.Invalid("model number is required")
	}
	if utf8.RuneCountInString(p.ModelNumber) > MaxModelNumberLen {
		return domain.Invalid("model number cannot exceed 100 characters")
	}
	if p.Price.IsNegative() {
		return domain.Invalid("price cannot be negative")
	}
	if !ValidPriceScale(p.Price) {
		return domain.Invalid("price cannot have more than 2 decimal places")
	}
	return p.ProductDetails.Validate()
}

// Validate verifica rangos y valores enumerados de los atributos técnicos.
func (d ProductDetails) Validate() error {
	if d.Outlet == "" {
		return domain.Invalid("outlet is required")
	}
	if utf8.RuneCountInString(d.Outlet) > MaxOutletLen {
		return domain.Invalid("outlet cannot exceed 50 characters")
	}
	if d.HP < 0 || d.MaxHead < 0 || d.MaxFlow < 0 || d.Watt < 0 {
		return domain.Invalid("hp, max head, max flow and watt cannot be negative")
	}
	if !ValidPhase(d.Phase) {
		return domain.Invalid(`phase must be "1 Phase" or "3 Phase"`)
	}
	return nil
}

// ProductView es un producto junto con los nombres de su categoría y marca (listados y exportación).
type ProductView struct {
	Product
	CategoryName string
	BrandName    string
}
