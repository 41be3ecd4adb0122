package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/morefix-stock/internal/application/report"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler descarga el reporte de inventario.
type ReportHandler struct {
	uc *report.UseCase
}

func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	b, name, err := h.uc.PDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, b, name, mimePDF)
}

// XLSX reporte de inventario como hoja de cálculo.
func (h *ReportHandler) XLSX(c *fiber.Ctx) error {
	b, name, err := h.uc.XLSX(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, b, name, mimeXLSX)
}

func sendFile(c *fiber.Ctx, b []byte, name, mime string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(b)
}
