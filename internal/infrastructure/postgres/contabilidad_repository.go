package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

var _ repository.ContabilidadRepository = (*ContabilidadRepo)(nil)

// ContabilidadRepo catálogos contables de solo lectura sobre PostgreSQL.
type ContabilidadRepo struct {
	pool *pgxpool.Pool
}

// NewContabilidadRepository construye el adaptador de catálogos contables.
func NewContabilidadRepository(pool *pgxpool.Pool) *ContabilidadRepo {
	return &ContabilidadRepo{pool: pool}
}

// TiposDocumento tipos de consecutivo activos de la empresa.
func (r *ContabilidadRepo) TiposDocumento(ctx context.Context, empresa string) ([]entity.TipoDocumento, error) {
	query := `
		SELECT codigo::text, nombre, activo
		  FROM tipo_consecutivo
		 WHERE empresa = $1 AND activo = true
		 ORDER BY nombre`
	rows, err := r.pool.Query(ctx, query, empresa)
	if err != nil {
		return nil, fmt.Errorf("tipos documento: %w", err)
	}
	defer rows.Close()

	var list []entity.TipoDocumento
	for rows.Next() {
		var t entity.TipoDocumento
		var activo any
		if err := rows.Scan(&t.Codigo, &t.Nombre, &activo); err != nil {
			return nil, fmt.Errorf("scan tipo documento: %w", err)
		}
		t.Activo = domain.NormalizeActivo(activo)
		list = append(list, t)
	}
	return list, rows.Err()
}

// CuentasContables cuentas de movimiento (más de seis dígitos) activas.
func (r *ContabilidadRepo) CuentasContables(ctx context.Context, empresa string) ([]entity.CuentaContable, error) {
	query := `
		SELECT empresa, cuenta, nombre, con_nit, con_aplica, con_cheque, con_rete,
		       porcentaje, con_comen, base_minima, activo
		  FROM plan_contable
		 WHERE empresa = $1 AND activo = true AND LENGTH(cuenta) > 6
		 ORDER BY cuenta`
	rows, err := r.pool.Query(ctx, query, empresa)
	if err != nil {
		return nil, fmt.Errorf("cuentas contables: %w", err)
	}
	defer rows.Close()

	var list []entity.CuentaContable
	for rows.Next() {
		var c entity.CuentaContable
		var activo any
		err := rows.Scan(&c.Empresa, &c.Cuenta, &c.Nombre, &c.ConNit, &c.ConAplica,
			&c.ConCheque, &c.ConRete, &c.Porcentaje, &c.ConComen, &c.BaseMinima, &activo)
		if err != nil {
			return nil, fmt.Errorf("scan cuenta contable: %w", err)
		}
		c.Activo = domain.NormalizeActivo(activo)
		list = append(list, c)
	}
	return list, rows.Err()
}

// CentrosCostos centros de costo activos.
func (r *ContabilidadRepo) CentrosCostos(ctx context.Context, empresa string) ([]entity.CentroCosto, error) {
	query := `
		SELECT codigo::text, nombre
		  FROM centro_costos
		 WHERE empresa = $1 AND activo = true
		 ORDER BY nombre`
	rows, err := r.pool.Query(ctx, query, empresa)
	if err != nil {
		return nil, fmt.Errorf("centros costos: %w", err)
	}
	defer rows.Close()

	var list []entity.CentroCosto
	for rows.Next() {
		var c entity.CentroCosto
		if err := rows.Scan(&c.Codigo, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan centro costos: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// FuentesContables fuentes contables activas.
func (r *ContabilidadRepo) FuentesContables(ctx context.Context, empresa string) ([]entity.FuenteContable, error) {
	query := `
		SELECT codigo::text, nombre
		  FROM fuente_contable
		 WHERE empresa = $1 AND activo = true
		 ORDER BY nombre`
	rows, err := r.pool.Query(ctx, query, empresa)
	if err != nil {
		return nil, fmt.Errorf("fuentes contables: %w", err)
	}
	defer rows.Close()

	var list []entity.FuenteContable
	for rows.Next() {
		var f entity.FuenteContable
		if err := rows.Scan(&f.Codigo, &f.Nombre); err != nil {
			return nil, fmt.Errorf("scan fuente contable: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Nits busca terceros por aproximación sobre nit y nombre.
func (r *ContabilidadRepo) Nits(ctx context.Context, empresa, filtro string) ([]entity.Nit, error) {
	query := `SELECT nit, nombre FROM nits WHERE empresa = $1`
	args := []any{empresa}
	if filtro != "" {
		args = append(args, "%"+filtro+"%")
		query += ` AND (nit ILIKE $2 OR nombre ILIKE $2)`
	}
	query += ` ORDER BY nombre`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("buscar nits: %w", err)
	}
	defer rows.Close()

	var list []entity.Nit
	for rows.Next() {
		var n entity.Nit
		if err := rows.Scan(&n.Nit, &n.Nombre); err != nil {
			return nil, fmt.Errorf("scan nit: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}
