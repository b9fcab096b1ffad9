package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Dill1027/DT-Price-List/internal/application/bulkupload"
	"github.com/Dill1027/DT-Price-List/internal/application/dto"
	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
)

// FormFileField nombre del campo multipart con el archivo.
const FormFileField = "file"

// BulkHandler recibe la hoja de carga masiva.
type BulkHandler struct {
	uc      *bulkupload.UseCase
	maxSize int64
}

// NewBulkHandler construye el handler; maxSize es el límite del archivo en bytes.
func NewBulkHandler(uc *bulkupload.UseCase, maxSize int64) *BulkHandler {
	return &BulkHandler{uc: uc, maxSize: maxSize}
}

// Upload godoc
// @Summary      Carga masiva de productos (crea, actualiza precio o detalles)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx o .csv"
// @Success      200   {object}  dto.BulkUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/products/bulk-upload [post]
func (h *BulkHandler) Upload(c *fiber.Ctx) error {
	return h.handle(c, false)
}

// Validate godoc
// @Summary      Validar archivo de carga masiva sin aplicar cambios
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx o .csv"
// @Success      200   {object}  dto.BulkUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/bulk-upload/validate [post]
func (h *BulkHandler) Validate(c *fiber.Ctx) error {
	return h.handle(c, true)
}

func (h *BulkHandler) handle(c *fiber.Ctx, dryRun bool) error {
	fh, err := c.FormFile(FormFileField)
	if err != nil {
		return badRequest(c, "NO_FILE", "No file uploaded")
	}
	if h.maxSize > 0 && fh.Size > h.maxSize {
		return h.tooLarge(c)
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, fmt.Errorf("open upload: %w", err))
	}
	defer f.Close()
	var r io.Reader = f
	if h.maxSize > 0 {
		r = io.LimitReader(f, h.maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return writeError(c, fmt.Errorf("read upload: %w", err))
	}
	if h.maxSize > 0 && int64(len(data)) > h.maxSize {
		return h.tooLarge(c)
	}

	var res *bulk.Result
	if dryRun {
		res, err = h.uc.Validate(c.UserContext(), GetActor(c), fh.Filename, data)
	} else {
		res, err = h.uc.Upload(c.UserContext(), GetActor(c), fh.Filename, data)
	}
	if err != nil {
		return writeError(c, err)
	}
	out := dto.NewBulkUploadResponse(*res)
	out.DryRun = dryRun
	return c.JSON(out)
}

func (h *BulkHandler) tooLarge(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
		Code:    "FILE_TOO_LARGE",
		Message: fmt.Sprintf("File too large (max %d MB)", h.maxSize/(1024*1024)),
	})
}
