// Package pricelist genera las descargas de la lista de precios: plantilla de carga,
// exportación a Excel y lista imprimible en PDF.
package pricelist

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Row es una línea exportada. Price nil significa que el usuario no puede ver precios.
type Row struct {
	Category    string
	Brand       string
	ModelNumber string
	HP          float64
	Outlet      string
	MaxHead     float64
	MaxFlow     float64
	Watt        float64
	Phase       string
	Price       *decimal.Decimal
}

// WorkbookWriter produce archivos .xlsx.
type WorkbookWriter interface {
	Template() ([]byte, error)
	Export(rows []Row) ([]byte, error)
}

// Document es la entrada del renderizador de PDF.
type Document struct {
	Title       string
	GeneratedBy string
	GeneratedAt time.Time
	Rows        []Row
}

// PDFRenderer produce la lista de precios imprimible.
type PDFRenderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}
