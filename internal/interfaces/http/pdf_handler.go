package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/reporte"
)

// PDFHandler descarga de reportes en PDF.
type PDFHandler struct {
	uc *reporte.PDFUseCase
}

// NewPDFHandler construye el handler inyectando el caso de uso.
func NewPDFHandler(uc *reporte.PDFUseCase) *PDFHandler {
	return &PDFHandler{uc: uc}
}

// PlanContable genera y descarga el PDF del plan de cuentas de la empresa.
func (h *PDFHandler) PlanContable(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DescargarPlanContable(c.Context(), c.Query("empresa"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
