package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

var _ repository.AccesoRepository = (*AccesoRepo)(nil)

const columnasAcceso = `empresa, usuario, nombre, email, clave, nivel, codigo, bodega, centro_costos, activo`

// AccesoRepo implementación del puerto AccesoRepository sobre PostgreSQL.
type AccesoRepo struct {
	pool *pgxpool.Pool
}

// NewAccesoRepository construye el adaptador de persistencia para accesos.
func NewAccesoRepository(pool *pgxpool.Pool) *AccesoRepo {
	return &AccesoRepo{pool: pool}
}

// List devuelve el conjunto filtrado completo ordenado por (empresa, usuario).
func (r *AccesoRepo) List(ctx context.Context, f repository.FiltroAccesos) ([]entity.Acceso, error) {
	var conds []string
	var args []any
	agregarILike(&conds, &args, "empresa", f.Empresa)
	agregarILike(&conds, &args, "usuario", f.Usuario)
	agregarILike(&conds, &args, "nombre", f.Nombre)
	agregarILike(&conds, &args, "email", f.Email)
	if f.Activo != nil {
		args = append(args, *f.Activo)
		conds = append(conds, fmt.Sprintf("activo = $%d", len(args)))
	}

	query := `SELECT ` + columnasAcceso + ` FROM accesos`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY empresa, usuario"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accesos: %w", err)
	}
	defer rows.Close()

	var list []entity.Acceso
	for rows.Next() {
		a, err := scanAcceso(rows)
		if err != nil {
			return nil, fmt.Errorf("scan acceso: %w", err)
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

// GetByUsuario obtiene el acceso alcanzable por usuario (una sola fila aunque
// existan concesiones en varias empresas; ver nota del puerto).
func (r *AccesoRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Acceso, error) {
	query := `SELECT ` + columnasAcceso + ` FROM accesos WHERE usuario = $1 LIMIT 1`
	rows, err := r.pool.Query(ctx, query, usuario)
	if err != nil {
		return nil, fmt.Errorf("get acceso: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanAcceso(rows)
}

// Create persiste un nuevo acceso y devuelve la fila creada.
func (r *AccesoRepo) Create(ctx context.Context, a *entity.Acceso) (*entity.Acceso, error) {
	query := `
		INSERT INTO accesos (empresa, usuario, nombre, email, clave, nivel, codigo, bodega, centro_costos, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + columnasAcceso
	rows, err := r.pool.Query(ctx, query,
		a.Empresa, a.Usuario, a.Nombre, a.Email, a.Clave, a.Nivel,
		a.Codigo, a.Bodega, a.CentroCostos, a.Activo,
	)
	if err != nil {
		return nil, traducir("insert acceso", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, traducir("insert acceso", err)
		}
		return nil, fmt.Errorf("insert acceso: sin fila de retorno")
	}
	return scanAcceso(rows)
}

// Update actualiza la fila completa direccionada por usuario; (nil, nil) si no existe.
func (r *AccesoRepo) Update(ctx context.Context, usuario string, a *entity.Acceso) (*entity.Acceso, error) {
	query := `
		UPDATE accesos
		   SET empresa = $2, nombre = $3, email = $4, clave = $5, nivel = $6,
		       codigo = $7, bodega = $8, centro_costos = $9, activo = $10
		 WHERE usuario = $1
		RETURNING ` + columnasAcceso
	rows, err := r.pool.Query(ctx, query,
		usuario, a.Empresa, a.Nombre, a.Email, a.Clave, a.Nivel,
		a.Codigo, a.Bodega, a.CentroCostos, a.Activo,
	)
	if err != nil {
		return nil, traducir("update acceso", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, traducir("update acceso", err)
		}
		return nil, nil
	}
	return scanAcceso(rows)
}

// Delete elimina el acceso por usuario; ErrNotFound si no existía.
func (r *AccesoRepo) Delete(ctx context.Context, usuario string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM accesos WHERE usuario = $1`, usuario)
	if err != nil {
		return fmt.Errorf("delete acceso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Activo consulta la llave compuesta completa (usuario, empresa).
// Fila ausente = false sin error; el caso de uso decide el fail-closed.
func (r *AccesoRepo) Activo(ctx context.Context, usuario, empresa string) (bool, error) {
	var activo any
	err := r.pool.QueryRow(ctx,
		`SELECT activo FROM accesos WHERE usuario = $1 AND empresa = $2`,
		usuario, empresa,
	).Scan(&activo)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("validar acceso: %w", err)
	}
	return domain.NormalizeActivo(activo), nil
}

// EmpresasDeUsuario lee view_empresas_usuarios para armar la lista de
// empresas del login.
func (r *AccesoRepo) EmpresasDeUsuario(ctx context.Context, usuarioID int) ([]entity.EmpresaUsuario, error) {
	query := `
		SELECT empresa, nombre_empresa, nivel, codigo, bodega, centro_costos
		  FROM view_empresas_usuarios
		 WHERE usuario_id = $1 AND activo = true`
	rows, err := r.pool.Query(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("empresas de usuario: %w", err)
	}
	defer rows.Close()

	var list []entity.EmpresaUsuario
	for rows.Next() {
		var e entity.EmpresaUsuario
		if err := rows.Scan(&e.Empresa, &e.Nombre, &e.Nivel, &e.Codigo, &e.Bodega, &e.CentroCostos); err != nil {
			return nil, fmt.Errorf("scan empresa de usuario: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanAcceso(row pgx.Rows) (*entity.Acceso, error) {
	var a entity.Acceso
	var activo any
	err := row.Scan(&a.Empresa, &a.Usuario, &a.Nombre, &a.Email, &a.Clave, &a.Nivel,
		&a.Codigo, &a.Bodega, &a.CentroCostos, &activo)
	if err != nil {
		return nil, err
	}
	a.Activo = domain.NormalizeActivo(activo)
	return &a, nil
}
