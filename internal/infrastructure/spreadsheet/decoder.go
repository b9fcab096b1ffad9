// Package spreadsheet lee y escribe las hojas de la lista de precios (.xlsx con excelize, .csv).
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Dill1027/DT-Price-List/internal/application/bulkupload"
	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
)

// SheetName es la hoja preferida al leer y la única al escribir.
const SheetName = "Products"

var _ bulkupload.Decoder = (*Decoder)(nil)

// Decoder convierte un archivo subido en filas con la numeración de la hoja.
type Decoder struct{}

// NewDecoder construye el decodificador.
func NewDecoder() *Decoder { return &Decoder{} }

// Decode elige el formato por extensión. La primera fila no vacía son los encabezados;
// las filas totalmente vacías se omiten sin renumerar las siguientes.
func (d *Decoder) Decode(filename string, r io.Reader) (*bulk.Sheet, error) {
	var (
		records []record
		err     error
	)
	switch strings.ToLower(path.Ext(filename)) {
	case ".xlsx":
		records, err = readXLSX(r)
	case ".csv":
		records, err = readCSV(r)
	default:
		return nil, domain.ErrUnsupportedFile
	}
	if err != nil {
		return nil, err
	}
	return toSheet(records)
}

// record es una fila cruda con su número de línea (1-based).
type record struct {
	line  int
	cells []string
}

func readXLSX(r io.Reader) ([]record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.Invalid("could not read Excel file: " + err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyFile
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if strings.EqualFold(name, SheetName) {
			sheet = name
			break
		}
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	out := make([]record, 0, len(rows))
	for i, cells := range rows {
		out = append(out, record{line: i + 1, cells: cells})
	}
	return out, nil
}

func readCSV(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []record
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.Invalid("could not read CSV file: " + err.Error())
		}
		line, _ := cr.FieldPos(0)
		out = append(out, record{line: line, cells: cells})
	}
	if len(out) > 0 && len(out[0].cells) > 0 {
		out[0].cells[0] = strings.TrimPrefix(out[0].cells[0], "\ufeff")
	}
	return out, nil
}

func toSheet(records []record) (*bulk.Sheet, error) {
	start := -1
	for i, rec := range records {
		if !blank(rec.cells) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, domain.ErrEmptyFile
	}

	headers := make([]string, len(records[start].cells))
	for i, h := range records[start].cells {
		headers[i] = strings.TrimSpace(h)
	}
	sheet := &bulk.Sheet{Headers: headers}
	for _, rec := range records[start+1:] {
		if blank(rec.cells) {
			continue
		}
		cells := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(rec.cells) {
				continue
			}
			if _, dup := cells[h]; dup {
				continue
			}
			cells[h] = rec.cells[i]
		}
		sheet.Rows = append(sheet.Rows, bulk.Row{Number: rec.line, Cells: cells})
	}
	if len(sheet.Rows) == 0 {
		return nil, domain.ErrEmptyFile
	}
	return sheet, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
