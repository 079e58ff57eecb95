package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// EmpresaHandler maneja las peticiones HTTP para el recurso Empresa.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler construye el handler inyectando el caso de uso.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Tamaño"  default(10)
// @Param        nombre  query  string  false  "Filtro parcial por nombre"
// @Success      200  {object}  dto.Paginado[entity.Empresa]
// @Router       /empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	filtro := repository.FiltroEmpresas{
		Empresa: c.Query("empresa"),
		Nombre:  c.Query("nombre"),
		Nit:     c.Query("nit"),
		Ciudad:  c.Query("ciudad"),
		Activo:  activoQuery(c),
	}
	out, err := h.uc.List(c.Context(), filtro, pageRequest(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una empresa por su ID numérico.
func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
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

// Create crea una empresa; código y NIT deben ser únicos.
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Empresa == "" || in.Nombre == "" || in.Nit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empresa, nombre y nit son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualización parcial: solo los campos presentes modifican la fila.
func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una empresa por ID.
func (h *EmpresaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
