package usecase

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// ContabilidadUseCase catálogos contables de solo lectura.
type ContabilidadUseCase struct {
	repo repository.ContabilidadRepository
}

// NewContabilidadUseCase construye el caso de uso de catálogos contables.
func NewContabilidadUseCase(repo repository.ContabilidadRepository) *ContabilidadUseCase {
	return &ContabilidadUseCase{repo: repo}
}

// TiposDocumento tipos de consecutivo activos.
func (uc *ContabilidadUseCase) TiposDocumento(ctx context.Context, empresa string) ([]entity.TipoDocumento, error) {
	if err := validarEmpresa(empresa); err != nil {
		return nil, err
	}
	return uc.repo.TiposDocumento(ctx, empresa)
}

// CuentasContables cuentas de movimiento activas.
func (uc *ContabilidadUseCase) CuentasContables(ctx context.Context, empresa string) ([]entity.CuentaContable, error) {
	if err := validarEmpresa(empresa); err != nil {
		return nil, err
	}
	return uc.repo.CuentasContables(ctx, empresa)
}

// CentrosCostos centros de costo activos.
func (uc *ContabilidadUseCase) CentrosCostos(ctx context.Context, empresa string) ([]entity.CentroCosto, error) {
	if err := validarEmpresa(empresa); err != nil {
		return nil, err
	}
	return uc.repo.CentrosCostos(ctx, empresa)
}

// FuentesContables fuentes contables activas.
func (uc *ContabilidadUseCase) FuentesContables(ctx context.Context, empresa string) ([]entity.FuenteContable, error) {
	if err := validarEmpresa(empresa); err != nil {
		return nil, err
	}
	return uc.repo.FuentesContables(ctx, empresa)
}

// Nits busca terceros de la empresa por aproximación.
func (uc *ContabilidadUseCase) Nits(ctx context.Context, empresa, filtro string) ([]entity.Nit, error) {
	if err := validarEmpresa(empresa); err != nil {
		return nil, err
	}
	return uc.repo.Nits(ctx, empresa, filtro)
}
