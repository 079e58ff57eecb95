package usecase

import (
	"context"
	"fmt"

	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// PlanContableUseCase consultas y registro del plan de cuentas.
type PlanContableUseCase struct {
	repo repository.PlanContableRepository
}

// NewPlanContableUseCase construye el caso de uso del plan contable.
func NewPlanContableUseCase(repo repository.PlanContableRepository) *PlanContableUseCase {
	return &PlanContableUseCase{repo: repo}
}

func validarEmpresa(empresa string) error {
	if empresa == "" {
		return fmt.Errorf("%w: empresa es obligatoria", domain.ErrInvalidInput)
	}
	return nil
}

// Cuentas lista el plan completo de la empresa.
func (uc *PlanContableUseCase) Cuentas(ctx context.Context, empresa string) ([]entity.CuentaPlan, error) {
	if err := validarEmpresa(empresa); err != nil {
		return nil, err
	}
	return uc.repo.Cuentas(ctx, empresa)
}

// Cuenta obtiene la fila completa de una cuenta; ErrNotFound si no existe.
func (uc *PlanContableUseCase) Cuenta(ctx context.Context, empresa, cuenta string) (*entity.CuentaContable, error) {
	if err := validarEmpresa(empresa); err != nil {
		return nil, err
	}
	c, err := uc.repo.CuentaPorID(ctx, empresa, cuenta)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Registrar delega el alta en la función de base de datos y devuelve su mensaje.
func (uc *PlanContableUseCase) Registrar(ctx context.Context, in dto.RegistrarCuentaRequest) (string, error) {
	if err := validarEmpresa(in.Empresa); err != nil {
		return "", err
	}
	return uc.repo.Registrar(ctx, in.Empresa, in.ARegistro())
}
