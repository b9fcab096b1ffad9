package bulk_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

func TestSummaryMessage(t *testing.T) {
	tests := []struct {
		s    bulk.Summary
		want string
	}{
		{bulk.Summary{}, "Bulk upload completed: no rows processed"},
		{bulk.Summary{Created: 3, PriceUpdated: 1, Errors: 2}, "Bulk upload completed: 3 new products created, 1 price updated, 2 errors"},
		{bulk.Summary{Created: 1, Errors: 1}, "Bulk upload completed: 1 new product created, 1 error"},
		{bulk.Summary{DetailsUpdated: 2, NoChangeNeeded: 4}, "Bulk upload completed: 2 product details updated, 4 products unchanged"},
		{bulk.Summary{PriceUpdated: 5}, "Bulk upload completed: 5 prices updated"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.Message())
	}
}

func TestBatchResult_SeparaExitosYErrores(t *testing.T) {
	b := bulk.NewBatch(4)
	b.Add(bulk.Succeeded(2, "A", bulk.ActionCreated))
	b.Add(bulk.Failure(&bulk.RowError{Row: 3, Kind: bulk.KindInvalidPhase, Message: "bad"}))
	b.Add(bulk.Succeeded(4, "B", bulk.ActionNoChange))
	b.Add(bulk.Succeeded(5, "C", bulk.ActionCreated))

	res := b.Result()
	assert.Equal(t, 4, res.Total)
	require.Len(t, res.Success, 3)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Row)
	assert.Equal(t, bulk.Summary{Created: 2, NoChangeNeeded: 1, Errors: 1}, res.Summary)
	assert.Equal(t, "Bulk upload completed: 2 new products created, 1 product unchanged, 1 error", res.Message)
}

func TestBatchResult_Vacio(t *testing.T) {
	res := bulk.NewBatch(0).Result()
	assert.NotNil(t, res.Success)
	assert.NotNil(t, res.Errors)
	assert.Equal(t, "Bulk upload completed: no rows processed", res.Message)
}

func TestDecide(t *testing.T) {
	price := func(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
	existing := &entity.Product{ModelNumber: "SUB-100", Price: decimal.RequireFromString("15000")}

	tests := []struct {
		name     string
		admin    bool
		price    *decimal.Decimal
		existing *entity.Product
		want     bulk.Action
	}{
		{"nuevo admin", true, price("1"), nil, bulk.ActionCreated},
		{"nuevo no admin", false, nil, nil, bulk.ActionCreated},
		{"admin precio distinto", true, price("16000"), existing, bulk.ActionPriceUpdated},
		{"admin precio igual con otra escala", true, price("15000.00"), existing, bulk.ActionNoChange},
		{"admin sin precio", true, nil, existing, bulk.ActionNoChange},
		{"no admin con precio", false, price("99"), existing, bulk.ActionDetailsUpdated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &bulk.Candidate{ModelNumber: "SUB-100", Price: tt.price}
			assert.Equal(t, tt.want, bulk.Decide(tt.admin, c, tt.existing))
		})
	}
}
