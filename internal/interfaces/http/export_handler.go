package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Dill1027/DT-Price-List/internal/application/pricelist"
	"github.com/Dill1027/DT-Price-List/internal/application/usecase"
)

// ExportHandler sirve la plantilla y las exportaciones de la lista de precios.
type ExportHandler struct {
	uc *pricelist.UseCase
	v  *RequestValidator
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *pricelist.UseCase, v *RequestValidator) *ExportHandler {
	return &ExportHandler{uc: uc, v: v}
}

// Template godoc
// @Summary      Descargar plantilla de carga masiva
// @Tags         products
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/products/download-template [get]
func (h *ExportHandler) Template(c *fiber.Ctx) error {
	f, err := h.uc.Template()
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// ExportXLSX godoc
// @Summary      Exportar productos a Excel (mismos filtros que el listado)
// @Tags         products
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/export [get]
func (h *ExportHandler) ExportXLSX(c *fiber.Ctx) error {
	q, err := h.v.ParseProductQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	actor := GetActor(c)
	f, err := h.uc.ExportXLSX(c.UserContext(), actor, usecase.ToProductFilter(actor, q))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// ExportPDF godoc
// @Summary      Exportar lista de precios en PDF
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/export/pdf [get]
func (h *ExportHandler) ExportPDF(c *fiber.Ctx) error {
	q, err := h.v.ParseProductQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	actor := GetActor(c)
	f, err := h.uc.ExportPDF(c.UserContext(), actor, usecase.ToProductFilter(actor, q))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

func sendFile(c *fiber.Ctx, f *pricelist.File) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", f.Name))
	return c.Send(f.Data)
}
