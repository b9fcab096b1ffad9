package bulk

import (
	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

// Action es la acción que la reconciliación aplicó a una fila.
type Action string

const (
	ActionCreated        Action = "created"
	ActionPriceUpdated   Action = "price_updated"
	ActionDetailsUpdated Action = "details_updated"
	ActionNoChange       Action = "no_change_needed"
)

// Decide elige la acción para un candidato según el producto activo existente
// (nil si no existe) y la capacidad del actor. Es puro: no escribe.
func Decide(admin bool, c *Candidate, existing *entity.Product) Action {
	switch {
	case existing == nil:
		return ActionCreated
	case !admin:
		return ActionDetailsUpdated
	case c.Price != nil && !c.Price.Equal(existing.Price):
		return ActionPriceUpdated
	default:
		return ActionNoChange
	}
}

// Outcome es el resultado de una fila: éxito con Action, o Err.
type Outcome struct {
	Row         int
	ModelNumber string
	Action      Action
	OldPrice    *decimal.Decimal
	NewPrice    *decimal.Decimal
	Err         *RowError
}

// Failed indica si la fila terminó en error.
func (o Outcome) Failed() bool { return o.Err != nil }

// Succeeded construye un resultado exitoso.
func Succeeded(row int, model string, action Action) Outcome {
	return Outcome{Row: row, ModelNumber: model, Action: action}
}

// Failure construye un resultado fallido.
func Failure(err *RowError) Outcome {
	return Outcome{Row: err.Row, Err: err}
}

// Batch acumula los resultados de un único lote, en orden de procesamiento.
type Batch struct {
	total    int
	outcomes []Outcome
}

// NewBatch crea el acumulador para total filas.
func NewBatch(total int) *Batch {
	return &Batch{total: total, outcomes: make([]Outcome, 0, total)}
}

// Add registra el resultado de una fila.
func (b *Batch) Add(o Outcome) { b.outcomes = append(b.outcomes, o) }

// Result cierra el lote: separa éxitos y errores y compone el resumen.
func (b *Batch) Result() Result {
	res := Result{
		Total:   b.total,
		Success: []Outcome{},
		Errors:  []*RowError{},
		Summary: Summarize(b.outcomes),
	}
	for _, o := range b.outcomes {
		if o.Failed() {
			res.Errors = append(res.Errors, o.Err)
			continue
		}
		res.Success = append(res.Success, o)
	}
	res.Message = res.Summary.Message()
	return res
}

// Result es la salida estructurada de un lote.
type Result struct {
	Total   int
	Success []Outcome
	Errors  []*RowError
	Summary Summary
	Message string
}
