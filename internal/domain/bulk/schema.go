// Package bulk contiene la lógica pura de la carga masiva de productos:
// validación de encabezados, normalización de filas, decisión de reconciliación
// y agregación del resultado. No realiza E/S.
package bulk

// Field es el nombre lógico de una columna de la hoja.
type Field string

// Campos lógicos de una fila de producto, en el orden de la plantilla.
const (
	FieldCategory    Field = "category"
	FieldBrand       Field = "brand"
	FieldModelNumber Field = "model number"
	FieldHP          Field = "hp"
	FieldOutlet      Field = "outlet"
	FieldMaxHead     Field = "max head"
	FieldMaxFlow     Field = "max flow"
	FieldWatt        Field = "watt"
	FieldPhase       Field = "phase"
	FieldPrice       Field = "price"
)

// FieldSpec describe cómo reconocer y leer un campo lógico.
//   - Match: grupos de tokens; un encabezado coincide si su forma normalizada
//     contiene todos los tokens de algún grupo.
//   - Aliases: encabezados exactos probados en orden al leer el valor de una fila.
//   - Required: la fila es inválida si el valor está ausente.
type FieldSpec struct {
	Field    Field
	Match    [][]string
	Aliases  []string
	Required bool
}

// Schema lista los campos en orden; todos deben tener columna en la hoja.
type Schema []FieldSpec

// Spec devuelve la especificación de f.
func (s Schema) Spec(f Field) (FieldSpec, bool) {
	for _, fs := range s {
		if fs.Field == f {
			return fs, true
		}
	}
	return FieldSpec{}, false
}

// TemplateHeaders son los encabezados de la plantilla descargable.
var TemplateHeaders = []string{
	"Category", "Brand", "Model Number", "HP", "Outlet",
	"Max Head", "Max Flow", "Watt", "Phase", "Price (Rs.)",
}

// DefaultSchema es el esquema de la lista de precios.
var DefaultSchema = Schema{
	{Field: FieldCategory, Required: true,
		Match:   [][]string{{"category"}},
		Aliases: []string{"category", "Category", "CATEGORY"}},
	{Field: FieldBrand, Required: true,
		Match:   [][]string{{"brand"}},
		Aliases: []string{"brand", "Brand", "BRAND"}},
	{Field: FieldModelNumber, Required: true,
		Match:   [][]string{{"model", "number"}, {"modelnumber"}},
		Aliases: []string{"model number", "Model Number", "MODEL NUMBER", "modelNumber"}},
	{Field: FieldHP, Required: true,
		Match:   [][]string{{"hp"}},
		Aliases: []string{"hp", "HP", "Hp"}},
	{Field: FieldOutlet, Required: true,
		Match:   [][]string{{"outlet"}},
		Aliases: []string{"outlet", "Outlet", "OUTLET"}},
	{Field: FieldMaxHead, Required: true,
		Match:   [][]string{{"max", "head"}, {"maxhead"}},
		Aliases: []string{"max head", "Max Head", "MAX HEAD", "maxHead"}},
	{Field: FieldMaxFlow, Required: true,
		Match:   [][]string{{"max", "flow"}, {"maxflow"}},
		Aliases: []string{"max flow", "Max Flow", "MAX FLOW", "maxFlow"}},
	{Field: FieldWatt, Required: true,
		Match:   [][]string{{"watt"}},
		Aliases: []string{"watt", "Watt", "WATT"}},
	{Field: FieldPhase, Required: true,
		Match:   [][]string{{"phase"}},
		Aliases: []string{"phase", "Phase", "PHASE"}},
	{Field: FieldPrice,
		Match:   [][]string{{"price"}},
		Aliases: []string{"price (rs.)", "Price (Rs.)", "PRICE (RS.)", "price", "Price", "PRICE"}},
}
