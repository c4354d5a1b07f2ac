package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/application/report"
	"github.com/Christopheryu29/store-management-api/internal/domain"
)

// ReportHandler sirve reportes PDF de ventas por tienda.
type ReportHandler struct {
	uc *report.SalesReportUseCase
}

func NewReportHandler(uc *report.SalesReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la tienda"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/report [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.Download(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_NOT_FOUND", Message: "tienda no encontrada"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no es dueño de esta tienda"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
