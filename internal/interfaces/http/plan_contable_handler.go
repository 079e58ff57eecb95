package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
)

// PlanContableHandler maneja las peticiones del plan de cuentas.
type PlanContableHandler struct {
	uc *usecase.PlanContableUseCase
}

// NewPlanContableHandler construye el handler inyectando el caso de uso.
func NewPlanContableHandler(uc *usecase.PlanContableUseCase) *PlanContableHandler {
	return &PlanContableHandler{uc: uc}
}

// List lista el plan completo de una empresa.
func (h *PlanContableHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Cuentas(c.Context(), c.Query("empresa"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByCuenta obtiene la fila completa de una cuenta.
func (h *PlanContableHandler) GetByCuenta(c *fiber.Ctx) error {
	out, err := h.uc.Cuenta(c.Context(), c.Query("empresa"), c.Params("cuenta"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Registrar da de alta o actualiza una cuenta vía la función de base de datos
// y devuelve su mensaje de resultado.
func (h *PlanContableHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarCuentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Cuenta == "" || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuenta y nombre son requeridos"})
	}
	resultado, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarCuentaResponse{Resultado: resultado})
}
