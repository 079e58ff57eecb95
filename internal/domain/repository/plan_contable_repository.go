package repository

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// PlanContableRepository puerto del plan de cuentas. Registrar delega en la
// función de base de datos func_registra_plan_contable, que encapsula el alta
// jerárquica (la aplicación no replica esa lógica en ningún backend).
type PlanContableRepository interface {
	Cuentas(ctx context.Context, empresa string) ([]entity.CuentaPlan, error)
	CuentaPorID(ctx context.Context, empresa, cuenta string) (*entity.CuentaContable, error)
	Registrar(ctx context.Context, empresa string, r entity.RegistroCuenta) (string, error)
}
