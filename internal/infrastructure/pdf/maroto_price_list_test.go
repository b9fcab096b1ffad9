package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dill1027/DT-Price-List/internal/application/pricelist"
)

func TestRender_GeneraPDF(t *testing.T) {
	price := decimal.NewFromInt(15000)
	out, err := NewMarotoPriceList().Render(context.Background(), pricelist.Document{
		Title:       "DT Price List",
		GeneratedBy: "admin",
		GeneratedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		Rows: []pricelist.Row{
			{ModelNumber: "SUB-1", Category: "Submersible", Brand: "Pentax", HP: 1.5, Outlet: "1 inch", Phase: "1 Phase", Price: &price},
			{ModelNumber: "SUB-2", Category: "Submersible", Brand: "Pentax", HP: 2, Outlet: "2 inch", Phase: "3 Phase"},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "0",
		"999":     "999",
		"25000":   "25,000",
		"1000000": "1,000,000",
		"-1500":   "-1,500",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}

func TestFormatPrice_SinPrecio(t *testing.T) {
	assert.Equal(t, "N/A", formatPrice(pricelist.Row{}))
	p := decimal.RequireFromString("16000.40")
	assert.Equal(t, "16,000", formatPrice(pricelist.Row{Price: &p}))
}
