package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
)

// BulkRowSuccess fila procesada con éxito.
type BulkRowSuccess struct {
	Row         int              `json:"row"`
	ModelNumber string           `json:"modelNumber"`
	Action      string           `json:"action"`
	OldPrice    *decimal.Decimal `json:"oldPrice,omitempty"`
	NewPrice    *decimal.Decimal `json:"newPrice,omitempty"`
}

// BulkRowError fila rechazada.
type BulkRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// BulkSummary conteos por acción.
type BulkSummary struct {
	Created        int `json:"created"`
	PriceUpdated   int `json:"priceUpdated"`
	DetailsUpdated int `json:"detailsUpdated"`
	NoChangeNeeded int `json:"noChangeNeeded"`
	Errors         int `json:"errors"`
}

// BulkUploadData resultado estructurado del lote.
type BulkUploadData struct {
	Total   int              `json:"total"`
	Success []BulkRowSuccess `json:"success"`
	Errors  []BulkRowError   `json:"errors"`
	Summary BulkSummary      `json:"summary"`
}

// BulkUploadResponse respuesta de la carga masiva (también del dry-run).
type BulkUploadResponse struct {
	Success bool           `json:"success"`
	DryRun  bool           `json:"dryRun,omitempty"`
	Message string         `json:"message"`
	Data    BulkUploadData `json:"data"`
}

// NewBulkUploadResponse traduce el resultado del dominio.
func NewBulkUploadResponse(res bulk.Result) BulkUploadResponse {
	data := BulkUploadData{
		Total:   res.Total,
		Success: make([]BulkRowSuccess, 0, len(res.Success)),
		Errors:  make([]BulkRowError, 0, len(res.Errors)),
		Summary: BulkSummary{
			Created:        res.Summary.Created,
			PriceUpdated:   res.Summary.PriceUpdated,
			DetailsUpdated: res.Summary.DetailsUpdated,
			NoChangeNeeded: res.Summary.NoChangeNeeded,
			Errors:         res.Summary.Errors,
		},
	}
	for _, o := range res.Success {
		data.Success = append(data.Success, BulkRowSuccess{
			Row:         o.Row,
			ModelNumber: o.ModelNumber,
			Action:      string(o.Action),
			OldPrice:    o.OldPrice,
			NewPrice:    o.NewPrice,
		})
	}
	for _, e := range res.Errors {
		data.Errors = append(data.Errors, BulkRowError{Row: e.Row, Error: e.Message, Kind: string(e.Kind)})
	}
	return BulkUploadResponse{Success: true, Message: res.Message, Data: data}
}
