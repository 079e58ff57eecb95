package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
	"github.com/weimars70/conta-hencker/pkg/logger"
)

// AccesoHandler maneja las peticiones HTTP para el recurso Acceso.
type AccesoHandler struct {
	uc  *usecase.AccesoUseCase
	log *logger.Logger
}

// NewAccesoHandler construye el handler inyectando el caso de uso.
func NewAccesoHandler(uc *usecase.AccesoUseCase, log *logger.Logger) *AccesoHandler {
	return &AccesoHandler{uc: uc, log: log}
}

// List lista accesos con filtros y paginación.
func (h *AccesoHandler) List(c *fiber.Ctx) error {
	filtro := repository.FiltroAccesos{
		Empresa: c.Query("empresa"),
		Usuario: c.Query("usuario"),
		Nombre:  c.Query("nombre"),
		Email:   c.Query("email"),
		Activo:  activoQuery(c),
	}
	out, err := h.uc.List(c.Context(), filtro, pageRequest(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByUsuario obtiene el acceso de un usuario.
func (h *AccesoHandler) GetByUsuario(c *fiber.Ctx) error {
	usuario := c.Params("usuario")
	if usuario == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario es requerido"})
	}
	out, err := h.uc.Get(c.Context(), usuario)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create concede un acceso.
func (h *AccesoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccesoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Empresa == "" || in.Usuario == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empresa y usuario son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualización parcial del acceso de un usuario.
func (h *AccesoHandler) Update(c *fiber.Ctx) error {
	usuario := c.Params("usuario")
	if usuario == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario es requerido"})
	}
	var in dto.UpdateAccesoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), usuario, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete revoca el acceso de un usuario.
func (h *AccesoHandler) Delete(c *fiber.Ctx) error {
	usuario := c.Params("usuario")
	if usuario == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario es requerido"})
	}
	if err := h.uc.Delete(c.Context(), usuario); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate responde si el usuario tiene acceso activo a la empresa. Siempre
// responde 200: un error de consulta se registra y se reporta como sin acceso,
// nunca como acceso concedido.
func (h *AccesoHandler) Validate(c *fiber.Ctx) error {
	usuario := c.Params("usuario")
	empresa := c.Params("empresa")
	activo, err := h.uc.Validar(c.Context(), usuario, empresa)
	if err != nil {
		h.log.Error().Err(err).
			Str("usuario", usuario).
			Str("empresa", empresa).
			Msg("validación de acceso falló; se responde sin acceso")
		activo = false
	}
	return c.JSON(dto.ValidacionAccesoResponse{Activo: activo})
}
