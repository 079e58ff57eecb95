package reporte

import (
	"context"
	"fmt"

	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// PDFUseCase genera el reporte PDF del plan de cuentas de una empresa.
type PDFUseCase struct {
	empresas  repository.EmpresaRepository
	plan      repository.PlanContableRepository
	generator PlanContablePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	empresas repository.EmpresaRepository,
	plan repository.PlanContableRepository,
	generator PlanContablePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{empresas: empresas, plan: plan, generator: generator}
}

// DescargarPlanContable arma el PDF del plan de la empresa indicada por su
// código de negocio.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrInvalidInput     si falta el código de empresa.
//   - domain.ErrNotFound         si la empresa no existe.
func (uc *PDFUseCase) DescargarPlanContable(ctx context.Context, codigoEmpresa string) (pdfBytes []byte, filename string, err error) {
	if codigoEmpresa == "" {
		return nil, "", fmt.Errorf("%w: empresa es obligatoria", domain.ErrInvalidInput)
	}

	// ── 1. Cargar empresa por código de negocio ───────────────────────────────
	candidatas, err := uc.empresas.List(ctx, repository.FiltroEmpresas{Empresa: codigoEmpresa})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	var empresa *entity.Empresa
	for i := range candidatas {
		if candidatas[i].Empresa == codigoEmpresa {
			empresa = &candidatas[i]
			break
		}
	}
	if empresa == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Cargar plan de cuentas ─────────────────────────────────────────────
	cuentas, err := uc.plan.Cuentas(ctx, codigoEmpresa)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener plan contable: %w", err)
	}

	// ── 3. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerarPlanContable(ctx, empresa, cuentas)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("plan_contable_%s.pdf", empresa.Empresa)
	return pdfBytes, filename, nil
}
