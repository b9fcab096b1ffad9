package bulk

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

// Candidate es una fila validada y tipada, lista para reconciliar.
type Candidate struct {
	Row          int
	CategoryName string
	BrandName    string
	CategoryID   string
	BrandID      string
	ModelNumber  string
	entity.ProductDetails
	Price *decimal.Decimal // nil si la celda estaba vacía
}

// Key devuelve la clave de unicidad del modelo.
func (c *Candidate) Key() string { return entity.ModelKey(c.ModelNumber) }

// Normalizer convierte filas crudas en candidatos.
type Normalizer struct {
	schema  Schema
	columns ColumnMap
}

// NewNormalizer construye el normalizador para un lote con las columnas ya validadas.
func NewNormalizer(schema Schema, columns ColumnMap) *Normalizer {
	return &Normalizer{schema: schema, columns: columns}
}

// value prueba los alias en orden y, si ninguno trae valor, el encabezado resuelto.
func (n *Normalizer) value(row Row, spec FieldSpec) string {
	for _, alias := range spec.Aliases {
		if v := row.Value(alias); v != "" {
			return v
		}
	}
	if h, ok := n.columns[spec.Field]; ok {
		return row.Value(h)
	}
	return ""
}

// Normalize valida una fila. Orden de validación: campos requeridos, categoría,
// marca, fase, numéricos.
func (n *Normalizer) Normalize(row Row, lk *Lookups) (*Candidate, *RowError) {
	values := make(map[Field]string, len(n.schema))
	var missing []string
	for _, spec := range n.schema {
		v := n.value(row, spec)
		values[spec.Field] = v
		if spec.Required && v == "" {
			missing = append(missing, string(spec.Field))
		}
	}
	if len(missing) > 0 {
		return nil, rowErrorf(row.Number, KindMissingFields, "Missing required fields: %s", strings.Join(missing, ", "))
	}

	c := &Candidate{
		Row:          row.Number,
		CategoryName: values[FieldCategory],
		BrandName:    values[FieldBrand],
		ModelNumber:  values[FieldModelNumber],
	}
	c.Outlet = values[FieldOutlet]
	c.Phase = values[FieldPhase]

	var ok bool
	if c.CategoryID, ok = lk.CategoryID(c.CategoryName); !ok {
		return nil, rowErrorf(row.Number, KindUnknownCategory, "Category '%s' not found", c.CategoryName)
	}
	if c.BrandID, ok = lk.BrandID(c.BrandName); !ok {
		return nil, rowErrorf(row.Number, KindUnknownBrand, "Brand '%s' not found", c.BrandName)
	}
	if !entity.ValidPhase(c.Phase) {
		return nil, rowErrorf(row.Number, KindInvalidPhase, `Phase must be "%s" or "%s"`, entity.PhaseSingle, entity.PhaseThree)
	}

	numbers := []struct {
		field Field
		dst   *float64
	}{
		{FieldHP, &c.HP},
		{FieldMaxHead, &c.MaxHead},
		{FieldMaxFlow, &c.MaxFlow},
		{FieldWatt, &c.Watt},
	}
	for _, num := range numbers {
		f, err := parseNumber(values[num.field])
		if err != nil {
			return nil, rowErrorf(row.Number, KindInvalidNumber, "Invalid value for %s: '%s'", num.field, values[num.field])
		}
		*num.dst = f
	}

	if raw := values[FieldPrice]; raw != "" {
		p, err := parsePrice(raw)
		if err != nil {
			return nil, rowErrorf(row.Number, KindInvalidNumber, "Invalid value for %s: '%s'", FieldPrice, raw)
		}
		c.Price = &p
	}
	return c, nil
}

// cleanNumber quita separadores de miles.
func cleanNumber(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(cleanNumber(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, strconv.ErrRange
	}
	return f, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(cleanNumber(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() || !entity.ValidPriceScale(d) {
		return decimal.Zero, strconv.ErrRange
	}
	return d, nil
}
