package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID  string           `json:"category" validate:"required"`
	BrandID     string           `json:"brand" validate:"required"`
	ModelNumber string           `json:"modelNumber" validate:"required,max=100"`
	HP          *float64         `json:"hp" validate:"required,min=0"`
	Outlet      string           `json:"outlet" validate:"required,max=50"`
	MaxHead     *float64         `json:"maxHead" validate:"required,min=0"`
	MaxFlow     *float64         `json:"maxFlow" validate:"required,min=0"`
	Watt        *float64         `json:"watt" validate:"required,min=0"`
	Phase       string           `json:"phase" validate:"required,oneof='1 Phase' '3 Phase'"`
	Price       *decimal.Decimal `json:"price"`
}

// UpdateProductRequest actualización parcial; Price solo se aplica para administradores.
type UpdateProductRequest struct {
	CategoryID  *string          `json:"category" validate:"omitempty,min=1"`
	BrandID     *string          `json:"brand" validate:"omitempty,min=1"`
	ModelNumber *string          `json:"modelNumber" validate:"omitempty,min=1,max=100"`
	HP          *float64         `json:"hp" validate:"omitempty,min=0"`
	Outlet      *string          `json:"outlet" validate:"omitempty,min=1,max=50"`
	MaxHead     *float64         `json:"maxHead" validate:"omitempty,min=0"`
	MaxFlow     *float64         `json:"maxFlow" validate:"omitempty,min=0"`
	Watt        *float64         `json:"watt" validate:"omitempty,min=0"`
	Phase       *string          `json:"phase" validate:"omitempty,oneof='1 Phase' '3 Phase'"`
	Price       *decimal.Decimal `json:"price"`
}

// RefResponse referencia embebida a categoría o marca.
type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse salida de un producto. Price es null para empleados.
type ProductResponse struct {
	ID          string           `json:"id"`
	Category    RefResponse      `json:"category"`
	Brand       RefResponse      `json:"brand"`
	ModelNumber string           `json:"modelNumber"`
	HP          float64          `json:"hp"`
	Outlet      string           `json:"outlet"`
	MaxHead     float64          `json:"maxHead"`
	MaxFlow     float64          `json:"maxFlow"`
	Watt        float64          `json:"watt"`
	Phase       string           `json:"phase"`
	Price       *decimal.Decimal `json:"price"`
	IsActive    bool             `json:"isActive"`
	CreatedBy   string           `json:"createdBy,omitempty"`
	UpdatedBy   string           `json:"updatedBy,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductListQuery filtros del listado (parseados de la query string).
type ProductListQuery struct {
	PageRequest
	CategoryID string
	BrandID    string
	Phase      string
	MinHP      *float64
	MaxHP      *float64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Search     string
	SortBy     string
	SortOrder  string
}

// ModelCheckResponse disponibilidad de un número de modelo.
type ModelCheckResponse struct {
	ModelNumber string `json:"modelNumber"`
	Exists      bool   `json:"exists"`
	Available   bool   `json:"available"`
}
