package usecase

import (
	"context"
	"fmt"

	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// CapturaUseCase CRUD genérico de las tablas de referencia (bodegas, cargos,
// centros de costo...). La tabla llega como parámetro en cada operación y el
// gateway la valida contra el registro de esquema.
type CapturaUseCase struct {
	gateway repository.TableGateway
}

// NewCapturaUseCase construye el caso de uso de captura genérica.
func NewCapturaUseCase(gateway repository.TableGateway) *CapturaUseCase {
	return &CapturaUseCase{gateway: gateway}
}

func validarTabla(tabla string) error {
	if tabla == "" {
		return fmt.Errorf("%w: tabla es obligatoria", domain.ErrInvalidInput)
	}
	return nil
}

// Listar lista filas de la tabla con filtros y paginación.
func (uc *CapturaUseCase) Listar(ctx context.Context, tabla string, filtro repository.FiltroLista, page dto.PageRequest) (dto.Paginado[repository.Registro], error) {
	var vacio dto.Paginado[repository.Registro]
	if err := validarTabla(tabla); err != nil {
		return vacio, err
	}
	items, err := uc.gateway.FindAll(ctx, tabla, filtro)
	if err != nil {
		return vacio, err
	}
	return dto.Paginar(items, page), nil
}

// Obtener busca una fila por llave (codigo, empresa); ErrNotFound si no existe.
func (uc *CapturaUseCase) Obtener(ctx context.Context, tabla string, clave repository.ClaveRegistro) (repository.Registro, error) {
	if err := validarTabla(tabla); err != nil {
		return nil, err
	}
	reg, err := uc.gateway.FindOne(ctx, tabla, clave)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

// Crear inserta una fila y devuelve la creada.
func (uc *CapturaUseCase) Crear(ctx context.Context, tabla string, datos repository.Registro) (repository.Registro, error) {
	if err := validarTabla(tabla); err != nil {
		return nil, err
	}
	if len(datos) == 0 {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	return uc.gateway.Insert(ctx, tabla, datos)
}

// Actualizar fija las columnas presentes; ErrNotFound si la llave no existe.
func (uc *CapturaUseCase) Actualizar(ctx context.Context, tabla string, clave repository.ClaveRegistro, datos repository.Registro) (repository.Registro, error) {
	if err := validarTabla(tabla); err != nil {
		return nil, err
	}
	if len(datos) == 0 {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	reg, err := uc.gateway.Update(ctx, tabla, clave, datos)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

// Eliminar borra por llave y devuelve la fila eliminada; ErrNotFound si no existía.
func (uc *CapturaUseCase) Eliminar(ctx context.Context, tabla string, clave repository.ClaveRegistro) (repository.Registro, error) {
	if err := validarTabla(tabla); err != nil {
		return nil, err
	}
	reg, err := uc.gateway.Remove(ctx, tabla, clave)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}
