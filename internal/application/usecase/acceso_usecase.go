package usecase

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// AccesoUseCase gestión de concesiones de acceso usuario-empresa.
type AccesoUseCase struct {
	repo repository.AccesoRepository
}

// NewAccesoUseCase construye el caso de uso de accesos.
func NewAccesoUseCase(repo repository.AccesoRepository) *AccesoUseCase {
	return &AccesoUseCase{repo: repo}
}

// List lista accesos con filtros y paginación.
func (uc *AccesoUseCase) List(ctx context.Context, f repository.FiltroAccesos, page dto.PageRequest) (dto.Paginado[entity.Acceso], error) {
	items, err := uc.repo.List(ctx, f)
	if err != nil {
		return dto.Paginado[entity.Acceso]{}, err
	}
	return dto.Paginar(items, page), nil
}

// Get obtiene el acceso por usuario; ErrNotFound si no existe.
func (uc *AccesoUseCase) Get(ctx context.Context, usuario string) (*entity.Acceso, error) {
	a, err := uc.repo.GetByUsuario(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// Create concede un acceso nuevo.
func (uc *AccesoUseCase) Create(ctx context.Context, in dto.CreateAccesoRequest) (*entity.Acceso, error) {
	a := in.AEntidad()
	return uc.repo.Create(ctx, &a)
}

// Update aplica los campos presentes sobre el acceso del usuario.
func (uc *AccesoUseCase) Update(ctx context.Context, usuario string, in dto.UpdateAccesoRequest) (*entity.Acceso, error) {
	actual, err := uc.repo.GetByUsuario(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.ErrNotFound
	}
	in.Aplicar(actual)
	actualizado, err := uc.repo.Update(ctx, usuario, actual)
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, domain.ErrNotFound
	}
	return actualizado, nil
}

// Delete revoca el acceso del usuario.
func (uc *AccesoUseCase) Delete(ctx context.Context, usuario string) error {
	return uc.repo.Delete(ctx, usuario)
}

// Validar responde si el usuario tiene acceso activo a la empresa. Es
// fail-closed: cualquier error de consulta se reporta como sin acceso, y el
// error se devuelve aparte solo para el log del handler.
func (uc *AccesoUseCase) Validar(ctx context.Context, usuario, empresa string) (bool, error) {
	activo, err := uc.repo.Activo(ctx, usuario, empresa)
	if err != nil {
		return false, err
	}
	return activo, nil
}
