package pricelist

import (
	"context"
	"time"

	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

// Tipos de contenido de las descargas.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// TemplateFilename nombre de la plantilla de carga masiva.
const TemplateFilename = "product-template.xlsx"

// File es una descarga lista para enviar.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UseCase arma las descargas a partir del catálogo.
type UseCase struct {
	products repository.ProductRepository
	workbook WorkbookWriter
	pdf      PDFRenderer
	now      func() time.Time
}

// NewUseCase construye el caso de uso de exportación.
func NewUseCase(products repository.ProductRepository, workbook WorkbookWriter, pdf PDFRenderer) *UseCase {
	return &UseCase{products: products, workbook: workbook, pdf: pdf, now: time.Now}
}

// Template devuelve la plantilla vacía con filas de ejemplo.
func (uc *UseCase) Template() (*File, error) {
	data, err := uc.workbook.Template()
	if err != nil {
		return nil, err
	}
	return &File{Name: TemplateFilename, ContentType: ContentTypeXLSX, Data: data}, nil
}

// ExportXLSX exporta los productos que cumplen el filtro, ordenados por modelo y sin paginar.
func (uc *UseCase) ExportXLSX(ctx context.Context, actor entity.Actor, filter repository.ProductFilter) (*File, error) {
	rows, err := uc.rows(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	data, err := uc.workbook.Export(rows)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        "products-export-" + uc.now().Format("2006-01-02") + ".xlsx",
		ContentType: ContentTypeXLSX,
		Data:        data,
	}, nil
}

// ExportPDF genera la lista de precios imprimible con el mismo filtro que ExportXLSX.
func (uc *UseCase) ExportPDF(ctx context.Context, actor entity.Actor, filter repository.ProductFilter) (*File, error) {
	rows, err := uc.rows(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	data, err := uc.pdf.Render(ctx, Document{
		Title:       "DT Price List",
		GeneratedBy: actor.Username,
		GeneratedAt: now,
		Rows:        rows,
	})
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        "price-list-" + now.Format("2006-01-02") + ".pdf",
		ContentType: ContentTypePDF,
		Data:        data,
	}, nil
}

func (uc *UseCase) rows(ctx context.Context, actor entity.Actor, filter repository.ProductFilter) ([]Row, error) {
	filter.SortBy, filter.SortDesc = repository.SortModelNumber, false
	filter.Limit, filter.Offset = 0, 0
	views, _, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(views))
	for _, v := range views {
		r := Row{
			Category:    v.CategoryName,
			Brand:       v.BrandName,
			ModelNumber: v.ModelNumber,
			HP:          v.HP,
			Outlet:      v.Outlet,
			MaxHead:     v.MaxHead,
			MaxFlow:     v.MaxFlow,
			Watt:        v.Watt,
			Phase:       v.Phase,
		}
		if actor.CanSeePrice() {
			price := v.Price
			r.Price = &price
		}
		rows = append(rows, r)
	}
	return rows, nil
}
