package reporte

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// PlanContablePDFGenerator genera la representación en PDF del plan de
// cuentas de una empresa. La implementación vive en infrastructure/pdf.
type PlanContablePDFGenerator interface {
	GenerarPlanContable(ctx context.Context, empresa *entity.Empresa, cuentas []entity.CuentaPlan) ([]byte, error)
}
