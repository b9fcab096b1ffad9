package bulk

import "fmt"

// ErrorKind clasifica el motivo por el que una fila no se pudo procesar.
type ErrorKind string

const (
	KindMissingFields   ErrorKind = "missing_required_fields"
	KindUnknownCategory ErrorKind = "unknown_category"
	KindUnknownBrand    ErrorKind = "unknown_brand"
	KindInvalidPhase    ErrorKind = "invalid_phase"
	KindInvalidNumber   ErrorKind = "invalid_number"
	KindDuplicateModel  ErrorKind = "duplicate_model"
	KindPersistence     ErrorKind = "persistence"
)

// RowError es el error de una fila concreta. Nunca aborta el lote.
type RowError struct {
	Row     int
	Kind    ErrorKind
	Message string
}

func (e *RowError) Error() string { return e.Message }

func rowErrorf(row int, kind ErrorKind, format string, args ...any) *RowError {
	return &RowError{Row: row, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// DuplicateModelError construye el error de número de modelo duplicado.
func DuplicateModelError(row int, model string) *RowError {
	return rowErrorf(row, KindDuplicateModel, "Duplicate model number: %s", model)
}

// PersistenceError envuelve un fallo de almacenamiento en una fila.
func PersistenceError(row int, err error) *RowError {
	return &RowError{Row: row, Kind: KindPersistence, Message: err.Error()}
}
