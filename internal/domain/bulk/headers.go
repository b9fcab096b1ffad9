package bulk

import (
	"strings"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

// ColumnMap asocia cada campo lógico con el encabezado real de la hoja.
type ColumnMap map[Field]string

// ValidateHeaders resuelve cada campo del esquema contra los encabezados.
// Gana el primer encabezado (en orden de hoja) que coincide. Si falta alguno
// devuelve *domain.MissingColumnsError con todos los faltantes en orden de esquema.
func ValidateHeaders(schema Schema, headers []string) (ColumnMap, error) {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = entity.Fold(h)
	}

	columns := make(ColumnMap, len(schema))
	var missing []string
	for _, field := range schema {
		idx := matchHeader(field, folded)
		if idx < 0 {
			missing = append(missing, string(field.Field))
			continue
		}
		columns[field.Field] = headers[idx]
	}
	if len(missing) > 0 {
		return nil, &domain.MissingColumnsError{Fields: missing}
	}
	return columns, nil
}

func matchHeader(field FieldSpec, folded []string) int {
	for i, h := range folded {
		if h == "" {
			continue
		}
		for _, group := range field.Match {
			if containsAll(h, group) {
				return i
			}
		}
	}
	return -1
}

func containsAll(h string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(h, t) {
			return false
		}
	}
	return len(tokens) > 0
}
