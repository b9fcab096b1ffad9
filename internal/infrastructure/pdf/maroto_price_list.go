// Package pdf genera la lista de precios imprimible con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título                  │  fecha + usuario          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Modelo | Categoría | Marca | HP | Salida | ... | Rs. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Dill1027/DT-Price-List/internal/application/pricelist"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ pricelist.PDFRenderer = (*MarotoPriceList)(nil)

// MarotoPriceList implementa pricelist.PDFRenderer usando Maroto v2.
type MarotoPriceList struct{}

// NewMarotoPriceList construye el generador.
func NewMarotoPriceList() *MarotoPriceList { return &MarotoPriceList{} }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoPriceList) Render(_ context.Context, doc pricelist.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.GeneratedBy, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(doc.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(doc.Rows)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc pricelist.Document) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Pumps and motors price list", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Date: "+doc.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Generated by: "+nonEmpty(doc.GeneratedBy, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// columns: etiqueta, ancho en la grilla de 12 y alineación.
var columns = []struct {
	label string
	size  int
	align align.Type
}{
	{"Model Number", 2, align.Left},
	{"Category", 2, align.Left},
	{"Brand", 1, align.Left},
	{"HP", 1, align.Center},
	{"Outlet", 1, align.Center},
	{"Max Head", 1, align.Center},
	{"Max Flow", 1, align.Center},
	{"Watt", 1, align.Center},
	{"Phase", 1, align.Center},
	{"Price (Rs.)", 1, align.Right},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRows(rows []pricelist.Row) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		values := []string{
			r.ModelNumber, r.Category, r.Brand,
			formatNumber(r.HP), r.Outlet, formatNumber(r.MaxHead),
			formatNumber(r.MaxFlow), formatNumber(r.Watt), r.Phase,
			formatPrice(r),
		}
		cols := make([]core.Col, 0, len(columns))
		for j, c := range columns {
			cols = append(cols, col.New(c.size).Add(text.New(values[j], props.Text{
				Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
			})))
		}
		tr := row.New(6).Add(cols...)
		if i%2 == 1 {
			tr = tr.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, tr)
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Total products: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func formatPrice(r pricelist.Row) string {
	if r.Price == nil {
		return "N/A"
	}
	return formatMoney(r.Price.StringFixed(0))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatMoney inserta comas de miles en un string numérico sin decimales.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func formatMoney(s string) string {
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
