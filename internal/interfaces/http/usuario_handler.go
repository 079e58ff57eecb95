package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// UsuarioHandler maneja las peticiones HTTP para el recurso Usuario.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler inyectando el caso de uso.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List lista usuarios con filtros y paginación. La respuesta nunca incluye
// el hash de clave.
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	filtro := repository.FiltroUsuarios{
		Nombre:   c.Query("nombre"),
		Email:    c.Query("email"),
		Telefono: c.Query("telefono"),
		Activo:   activoQuery(c),
	}
	out, err := h.uc.List(c.Context(), filtro, pageRequest(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un usuario por su ID numérico.
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create crea un usuario con la clave hasheada.
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Email == "" || in.Clave == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, email y clave son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualización parcial; clave presente se rehashea.
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un usuario por ID.
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
