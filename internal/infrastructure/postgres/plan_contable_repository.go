package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

var _ repository.PlanContableRepository = (*PlanContableRepo)(nil)

// PlanContableRepo acceso al plan de cuentas sobre PostgreSQL.
type PlanContableRepo struct {
	pool *pgxpool.Pool
}

// NewPlanContableRepository construye el adaptador del plan contable.
func NewPlanContableRepository(pool *pgxpool.Pool) *PlanContableRepo {
	return &PlanContableRepo{pool: pool}
}

// Cuentas lista el plan completo de la empresa ordenado por cuenta.
func (r *PlanContableRepo) Cuentas(ctx context.Context, empresa string) ([]entity.CuentaPlan, error) {
	query := `
		SELECT cuenta, nombre AS descripcion, fuente, centro_costos AS centrocostos
		  FROM plan_contable
		 WHERE empresa = $1
		 ORDER BY cuenta`
	rows, err := r.pool.Query(ctx, query, empresa)
	if err != nil {
		return nil, fmt.Errorf("listar plan contable: %w", err)
	}
	defer rows.Close()

	var list []entity.CuentaPlan
	for rows.Next() {
		var c entity.CuentaPlan
		if err := rows.Scan(&c.Cuenta, &c.Descripcion, &c.Fuente, &c.CentroCostos); err != nil {
			return nil, fmt.Errorf("scan cuenta plan: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CuentaPorID devuelve la fila completa de una cuenta; (nil, nil) si no existe.
func (r *PlanContableRepo) CuentaPorID(ctx context.Context, empresa, cuenta string) (*entity.CuentaContable, error) {
	query := `
		SELECT empresa, cuenta, nombre, con_nit, con_aplica, con_cheque, con_rete,
		       porcentaje, con_comen, base_minima, activo
		  FROM plan_contable
		 WHERE empresa = $1 AND cuenta = $2`
	var c entity.CuentaContable
	var activo any
	err := r.pool.QueryRow(ctx, query, empresa, cuenta).Scan(
		&c.Empresa, &c.Cuenta, &c.Nombre, &c.ConNit, &c.ConAplica, &c.ConCheque,
		&c.ConRete, &c.Porcentaje, &c.ConComen, &c.BaseMinima, &activo,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cuenta contable: %w", err)
	}
	c.Activo = domain.NormalizeActivo(activo)
	return &c, nil
}

// Registrar delega el alta jerárquica en func_registra_plan_contable y
// devuelve el mensaje de resultado que produce la función.
func (r *PlanContableRepo) Registrar(ctx context.Context, empresa string, reg entity.RegistroCuenta) (string, error) {
	query := `
		SELECT public.func_registra_plan_contable(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		) AS resultado`
	var resultado string
	err := r.pool.QueryRow(ctx, query,
		empresa, reg.Periodo, reg.Cuenta, reg.Naturaleza, reg.Nombre,
		reg.Codigo, reg.Subcodigo, reg.Columna, reg.ConNit, reg.Nit,
		reg.ConFuente, reg.Fuente, reg.ConCtrc, reg.CentroCostos,
		reg.ConAplica, reg.SdoAplica, reg.ConCheque, reg.ConRete,
		reg.Porcentaje, reg.ConComen, reg.ConConcepto, reg.BaseMinima,
		reg.Actividad,
	).Scan(&resultado)
	if err != nil {
		return "", fmt.Errorf("registrar cuenta: %w", err)
	}
	return resultado, nil
}
