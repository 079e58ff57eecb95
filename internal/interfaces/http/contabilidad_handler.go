package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
)

// ContabilidadHandler catálogos contables de solo lectura.
type ContabilidadHandler struct {
	uc *usecase.ContabilidadUseCase
}

// NewContabilidadHandler construye el handler inyectando el caso de uso.
func NewContabilidadHandler(uc *usecase.ContabilidadUseCase) *ContabilidadHandler {
	return &ContabilidadHandler{uc: uc}
}

// TiposDocumento tipos de consecutivo activos de la empresa.
func (h *ContabilidadHandler) TiposDocumento(c *fiber.Ctx) error {
	out, err := h.uc.TiposDocumento(c.Context(), c.Query("empresa"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CuentasContables cuentas de movimiento activas.
func (h *ContabilidadHandler) CuentasContables(c *fiber.Ctx) error {
	out, err := h.uc.CuentasContables(c.Context(), c.Query("empresa"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CentrosCostos centros de costo activos.
func (h *ContabilidadHandler) CentrosCostos(c *fiber.Ctx) error {
	out, err := h.uc.CentrosCostos(c.Context(), c.Query("empresa"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// FuentesContables fuentes contables activas.
func (h *ContabilidadHandler) FuentesContables(c *fiber.Ctx) error {
	out, err := h.uc.FuentesContables(c.Context(), c.Query("empresa"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Nits busca terceros por aproximación sobre nit y nombre.
func (h *ContabilidadHandler) Nits(c *fiber.Ctx) error {
	out, err := h.uc.Nits(c.Context(), c.Query("empresa"), c.Query("filter"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
