package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Dill1027/DT-Price-List/internal/application/pricelist"
	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
)

// PriceNotAvailable reemplaza el precio para quien no puede verlo.
const PriceNotAvailable = "N/A"

var _ pricelist.WorkbookWriter = (*Workbook)(nil)

// Workbook genera la plantilla de carga y la exportación de productos.
type Workbook struct{}

// NewWorkbook construye el escritor.
func NewWorkbook() *Workbook { return &Workbook{} }

// templateSamples son las filas de ejemplo de la plantilla.
var templateSamples = [][]any{
	{"Submersible", "Pentax", "SUB-NEW-001", 1, "1 inch", 50, 100, 750, "1 Phase", 15000},
	{"Centrifugal", "Deep Tec", "CENT-NEW-001", 2, "2 inch", 35, 200, 1500, "3 Phase", 25000},
}

// Template arma la hoja Products con encabezados y dos filas de ejemplo.
func (w *Workbook) Template() ([]byte, error) {
	return w.build(templateSamples)
}

// Export escribe una fila por producto en el orden recibido.
func (w *Workbook) Export(rows []pricelist.Row) ([]byte, error) {
	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		var price any = PriceNotAvailable
		if r.Price != nil {
			price = r.Price.InexactFloat64()
		}
		data = append(data, []any{
			r.Category, r.Brand, r.ModelNumber, r.HP, r.Outlet,
			r.MaxHead, r.MaxFlow, r.Watt, r.Phase, price,
		})
	}
	return w.build(data)
}

func (w *Workbook) build(data [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	header := make([]any, len(bulk.TemplateHeaders))
	for i, h := range bulk.TemplateHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetColWidth(SheetName, "A", lastCol, 16); err != nil {
		return nil, err
	}

	for i, values := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+bulk.FirstDataRow)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+bulk.FirstDataRow, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
