package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// CapturaHandler CRUD genérico de tablas de referencia. La tabla destino
// llega en la query (?tabla=bodegas) y se valida contra el registro de
// esquema; un nombre fuera de la lista responde 400 sin tocar la base.
type CapturaHandler struct {
	uc *usecase.CapturaUseCase
}

// NewCapturaHandler construye el handler inyectando el caso de uso.
func NewCapturaHandler(uc *usecase.CapturaUseCase) *CapturaHandler {
	return &CapturaHandler{uc: uc}
}

func (h *CapturaHandler) clave(c *fiber.Ctx) (repository.ClaveRegistro, error) {
	codigo, err := c.ParamsInt("codigo")
	if err != nil || codigo <= 0 {
		return repository.ClaveRegistro{}, fiber.NewError(fiber.StatusBadRequest, "codigo inválido")
	}
	empresa := c.Query("empresa")
	if empresa == "" {
		return repository.ClaveRegistro{}, fiber.NewError(fiber.StatusBadRequest, "empresa es requerida")
	}
	return repository.ClaveRegistro{Codigo: codigo, Empresa: empresa}, nil
}

// List godoc
// @Summary      Listar filas de una tabla de referencia
// @Tags         captura
// @Produce      json
// @Param        tabla    query  string  true   "Tabla permitida (bodegas, cargos, ...)"
// @Param        empresa  query  string  false  "Filtro exacto por empresa"
// @Param        search   query  string  false  "Búsqueda parcial"
// @Success      200  {object}  dto.Paginado[repository.Registro]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /generic-capture [get]
func (h *CapturaHandler) List(c *fiber.Ctx) error {
	// El frontend heredado manda `filter`; los clientes nuevos usan `search`.
	busqueda := c.Query("search")
	if busqueda == "" {
		busqueda = c.Query("filter")
	}
	filtro := repository.FiltroLista{
		Empresa:  c.Query("empresa"),
		Busqueda: busqueda,
	}
	out, err := h.uc.Listar(c.Context(), c.Query("tabla"), filtro, pageRequest(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetOne busca una fila por llave (codigo, empresa).
func (h *CapturaHandler) GetOne(c *fiber.Ctx) error {
	clave, err := h.clave(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Obtener(c.Context(), c.Query("tabla"), clave)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create inserta una fila en la tabla indicada. La empresa viaja en la query
// y se inyecta en la fila; si el cuerpo repite `tabla` se descarta porque
// nunca es una columna.
func (h *CapturaHandler) Create(c *fiber.Ctx) error {
	var datos repository.Registro
	if err := c.BodyParser(&datos); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	delete(datos, "tabla")
	if empresa := c.Query("empresa"); empresa != "" {
		if datos == nil {
			datos = repository.Registro{}
		}
		datos["empresa"] = empresa
	}
	out, err := h.uc.Crear(c.Context(), c.Query("tabla"), datos)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update fija solo las columnas presentes en el cuerpo.
func (h *CapturaHandler) Update(c *fiber.Ctx) error {
	clave, err := h.clave(c)
	if err != nil {
		return err
	}
	var datos repository.Registro
	if err := c.BodyParser(&datos); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	delete(datos, "tabla")
	out, err := h.uc.Actualizar(c.Context(), c.Query("tabla"), clave, datos)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete borra una fila por llave y devuelve la fila eliminada.
func (h *CapturaHandler) Delete(c *fiber.Ctx) error {
	clave, err := h.clave(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Eliminar(c.Context(), c.Query("tabla"), clave)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
