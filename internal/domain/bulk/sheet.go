package bulk

import "strings"

// Row es una fila de datos: número de fila 1-based de la hoja y celdas por encabezado.
type Row struct {
	Number int
	Cells  map[string]string
}

// Value devuelve la celda del encabezado h recortada.
func (r Row) Value(h string) string {
	return strings.TrimSpace(r.Cells[h])
}

// Sheet es la salida del decodificador: encabezados en orden y filas de datos.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// FirstDataRow es el número de la primera fila de datos (la fila 1 es el encabezado).
const FirstDataRow = 2
