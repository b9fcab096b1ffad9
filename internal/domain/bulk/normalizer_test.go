package bulk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
)

func testLookups() *bulk.Lookups {
	lk := bulk.NewLookups()
	lk.AddCategory("Submersible", "cat-sub")
	lk.AddCategory("Centrifugal", "cat-cen")
	lk.AddBrand("Pentax", "brand-pentax")
	lk.AddBrand("Deep Tec", "brand-deeptec")
	return lk
}

func templateRow(n int, overrides map[string]string) bulk.Row {
	cells := map[string]string{
		"Category":     "Submersible",
		"Brand":        "Pentax",
		"Model Number": "SUB-100",
		"HP":           "1.5",
		"Outlet":       "1 inch",
		"Max Head":     "50",
		"Max Flow":     "120",
		"Watt":         "750",
		"Phase":        "1 Phase",
		"Price (Rs.)":  "15000",
	}
	for k, v := range overrides {
		cells[k] = v
	}
	return bulk.Row{Number: n, Cells: cells}
}

func templateNormalizer(t *testing.T) *bulk.Normalizer {
	t.Helper()
	cols, err := bulk.ValidateHeaders(bulk.DefaultSchema, bulk.TemplateHeaders)
	require.NoError(t, err)
	return bulk.NewNormalizer(bulk.DefaultSchema, cols)
}

func TestNormalize_FilaValida(t *testing.T) {
	n := templateNormalizer(t)
	c, rowErr := n.Normalize(templateRow(2, map[string]string{"Model Number": "  SUB-100  "}), testLookups())
	require.Nil(t, rowErr)

	assert.Equal(t, 2, c.Row)
	assert.Equal(t, "SUB-100", c.ModelNumber)
	assert.Equal(t, "cat-sub", c.CategoryID)
	assert.Equal(t, "brand-pentax", c.BrandID)
	assert.Equal(t, 1.5, c.HP)
	assert.Equal(t, 120.0, c.MaxFlow)
	assert.Equal(t, "1 Phase", c.Phase)
	require.NotNil(t, c.Price)
	assert.Equal(t, "15000", c.Price.String())
}

// La marca "pentax" se resuelve contra la marca almacenada "Pentax".
func TestNormalize_ResolucionSinMayusculas(t *testing.T) {
	n := templateNormalizer(t)
	c, rowErr := n.Normalize(templateRow(2, map[string]string{"Brand": "pentax", "Category": " SUBMERSIBLE "}), testLookups())
	require.Nil(t, rowErr)
	assert.Equal(t, "brand-pentax", c.BrandID)
	assert.Equal(t, "cat-sub", c.CategoryID)
}

func TestNormalize_PrecioAusenteEsNil(t *testing.T) {
	n := templateNormalizer(t)
	c, rowErr := n.Normalize(templateRow(3, map[string]string{"Price (Rs.)": "  "}), testLookups())
	require.Nil(t, rowErr)
	assert.Nil(t, c.Price)
}

func TestNormalize_AliasTienePrioridad(t *testing.T) {
	cols, err := bulk.ValidateHeaders(bulk.DefaultSchema, []string{
		"Product Category", "Brand", "modelNumber", "HP", "Outlet", "maxHead", "maxFlow", "Watt", "Phase", "price",
	})
	require.NoError(t, err)
	n := bulk.NewNormalizer(bulk.DefaultSchema, cols)

	row := bulk.Row{Number: 2, Cells: map[string]string{
		"Product Category": "Centrifugal",
		"Brand":            "Deep Tec",
		"modelNumber":      "CENT-1",
		"HP":               "2",
		"Outlet":           "2 inch",
		"maxHead":          "35",
		"maxFlow":          "200",
		"Watt":             "1,500",
		"Phase":            "3 Phase",
		"price":            "25,000.50",
	}}
	c, rowErr := n.Normalize(row, testLookups())
	require.Nil(t, rowErr)
	assert.Equal(t, "cat-cen", c.CategoryID)
	assert.Equal(t, "CENT-1", c.ModelNumber)
	assert.Equal(t, 1500.0, c.Watt)
	assert.Equal(t, "25000.5", c.Price.String())
}

func TestNormalize_Errores(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		kind      bulk.ErrorKind
		message   string
	}{
		{"faltan requeridos", map[string]string{"HP": "", "Watt": " "}, bulk.KindMissingFields, "Missing required fields: hp, watt"},
		{"categoría desconocida", map[string]string{"Category": "Turbine"}, bulk.KindUnknownCategory, "Category 'Turbine' not found"},
		{"marca desconocida", map[string]string{"Brand": "Acme"}, bulk.KindUnknownBrand, "Brand 'Acme' not found"},
		{"fase inválida", map[string]string{"Phase": "2 Phase"}, bulk.KindInvalidPhase, `Phase must be "1 Phase" or "3 Phase"`},
		{"fase en minúsculas", map[string]string{"Phase": "1 phase"}, bulk.KindInvalidPhase, `Phase must be "1 Phase" or "3 Phase"`},
		{"número inválido", map[string]string{"Max Head": "abc"}, bulk.KindInvalidNumber, "Invalid value for max head: 'abc'"},
		{"número negativo", map[string]string{"HP": "-1"}, bulk.KindInvalidNumber, "Invalid value for hp: '-1'"},
		{"precio inválido", map[string]string{"Price (Rs.)": "gratis"}, bulk.KindInvalidNumber, "Invalid value for price: 'gratis'"},
		{"precio con tres decimales", map[string]string{"Price (Rs.)": "15000.555"}, bulk.KindInvalidNumber, "Invalid value for price: '15000.555'"},
	}
	n := templateNormalizer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rowErr := n.Normalize(templateRow(7, tt.overrides), testLookups())
			assert.Nil(t, c)
			require.NotNil(t, rowErr)
			assert.Equal(t, 7, rowErr.Row)
			assert.Equal(t, tt.kind, rowErr.Kind)
			assert.Equal(t, tt.message, rowErr.Error())
		})
	}
}

func TestNormalize_CeroEsValorPresente(t *testing.T) {
	n := templateNormalizer(t)
	c, rowErr := n.Normalize(templateRow(2, map[string]string{"Max Flow": "0", "Price (Rs.)": "0"}), testLookups())
	require.Nil(t, rowErr)
	assert.Equal(t, 0.0, c.MaxFlow)
	require.NotNil(t, c.Price)
	assert.True(t, c.Price.IsZero())
}

func TestNormalize_PrecioConCerosFinales(t *testing.T) {
	n := templateNormalizer(t)
	c, rowErr := n.Normalize(templateRow(2, map[string]string{"Price (Rs.)": "15000.500"}), testLookups())
	require.Nil(t, rowErr)
	require.NotNil(t, c.Price)
	assert.Equal(t, "15000.5", c.Price.String())
}
