package bulkupload

import (
	"context"
	"io"

	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
)

// Decoder convierte el archivo subido en encabezados y filas.
// Devuelve domain.ErrUnsupportedFile o domain.ErrEmptyFile según el caso.
type Decoder interface {
	Decode(filename string, r io.Reader) (*bulk.Sheet, error)
}

// Archiver guarda una copia del archivo original (opcional).
type Archiver interface {
	Archive(ctx context.Context, key, contentType string, data []byte) error
}
