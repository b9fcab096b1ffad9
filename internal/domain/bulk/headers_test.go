package bulk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
)

func TestValidateHeaders_PlantillaCompleta(t *testing.T) {
	cols, err := bulk.ValidateHeaders(bulk.DefaultSchema, bulk.TemplateHeaders)
	require.NoError(t, err)

	assert.Equal(t, "Model Number", cols[bulk.FieldModelNumber])
	assert.Equal(t, "Price (Rs.)", cols[bulk.FieldPrice])
	assert.Equal(t, "Max Flow", cols[bulk.FieldMaxFlow])
	assert.Len(t, cols, len(bulk.DefaultSchema))
}

func TestValidateHeaders_CoincidenciaPermisiva(t *testing.T) {
	headers := []string{
		"  CATEGORY ", "Brand Name", "Pump Model Number", "Motor HP", "Outlet Size",
		"Max. Head (m)", "max flow (lpm)", "Watt", "Phase", "Unit Price",
	}
	cols, err := bulk.ValidateHeaders(bulk.DefaultSchema, headers)
	require.NoError(t, err)

	assert.Equal(t, "  CATEGORY ", cols[bulk.FieldCategory])
	assert.Equal(t, "Pump Model Number", cols[bulk.FieldModelNumber])
	assert.Equal(t, "Max. Head (m)", cols[bulk.FieldMaxHead])
	assert.Equal(t, "Unit Price", cols[bulk.FieldPrice])
}

func TestValidateHeaders_GanaElPrimerEncabezado(t *testing.T) {
	headers := append([]string{"price old"}, bulk.TemplateHeaders...)
	cols, err := bulk.ValidateHeaders(bulk.DefaultSchema, headers)
	require.NoError(t, err)
	assert.Equal(t, "price old", cols[bulk.FieldPrice])
}

// Un archivo sin columna "watt" se rechaza nombrando todos los faltantes en orden de esquema.
func TestValidateHeaders_Faltantes(t *testing.T) {
	headers := []string{"Category", "Brand", "Model", "HP", "Outlet", "Max Head", "Phase", "Price"}
	_, err := bulk.ValidateHeaders(bulk.DefaultSchema, headers)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingColumns))

	var mce *domain.MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{"model number", "max flow", "watt"}, mce.Fields)
	assert.Equal(t, "Missing required columns: model number, max flow, watt", err.Error())
}

func TestValidateHeaders_SinEncabezados(t *testing.T) {
	_, err := bulk.ValidateHeaders(bulk.DefaultSchema, nil)
	var mce *domain.MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Len(t, mce.Fields, len(bulk.DefaultSchema))
}
