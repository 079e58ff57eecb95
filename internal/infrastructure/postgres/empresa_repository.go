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

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

const columnasEmpresa = `id, empresa, nombre, abreviado, nit, dg_verifica, direccion, telefono, ciudad, fax, correo, niveles, activo`

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	pool *pgxpool.Pool
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(pool *pgxpool.Pool) *EmpresaRepo {
	return &EmpresaRepo{pool: pool}
}

// List devuelve el conjunto filtrado completo ordenado por id.
func (r *EmpresaRepo) List(ctx context.Context, f repository.FiltroEmpresas) ([]entity.Empresa, error) {
	var conds []string
	var args []any
	agregarILike(&conds, &args, "empresa", f.Empresa)
	agregarILike(&conds, &args, "nombre", f.Nombre)
	agregarILike(&conds, &args, "nit", f.Nit)
	agregarILike(&conds, &args, "ciudad", f.Ciudad)
	if f.Activo != nil {
		args = append(args, *f.Activo)
		conds = append(conds, fmt.Sprintf("activo = $%d", len(args)))
	}

	query := `SELECT ` + columnasEmpresa + ` FROM empresas`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []entity.Empresa
	for rows.Next() {
		e, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

// GetByID obtiene una empresa por ID.
func (r *EmpresaRepo) GetByID(ctx context.Context, id int) (*entity.Empresa, error) {
	query := `SELECT ` + columnasEmpresa + ` FROM empresas WHERE id = $1`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanEmpresa(rows)
}

// FindByEmpresaONit busca una empresa con el mismo código o NIT, opcionalmente
// excluyendo un id. Es el pre-chequeo de unicidad del create/update.
func (r *EmpresaRepo) FindByEmpresaONit(ctx context.Context, empresa, nit string, excluirID int) (*entity.Empresa, error) {
	query := `SELECT ` + columnasEmpresa + ` FROM empresas WHERE (empresa = $1 OR nit = $2)`
	args := []any{empresa, nit}
	if excluirID > 0 {
		query += ` AND id != $3`
		args = append(args, excluirID)
	}
	query += ` LIMIT 1`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("buscar empresa por codigo o nit: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanEmpresa(rows)
}

// Create persiste una nueva empresa y devuelve la fila creada.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) (*entity.Empresa, error) {
	query := `
		INSERT INTO empresas (empresa, nombre, abreviado, nit, dg_verifica, direccion, telefono, ciudad, fax, correo, niveles, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + columnasEmpresa
	rows, err := r.pool.Query(ctx, query,
		e.Empresa, e.Nombre, e.Abreviado, e.NIT, e.DgVerifica, e.Direccion,
		e.Telefono, e.Ciudad, e.Fax, e.Correo, e.Niveles, e.Activo,
	)
	if err != nil {
		return nil, traducir("insert empresa", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, traducir("insert empresa", err)
		}
		return nil, fmt.Errorf("insert empresa: sin fila de retorno")
	}
	return scanEmpresa(rows)
}

// Update actualiza la fila completa por id; (nil, nil) si el id no existe.
func (r *EmpresaRepo) Update(ctx context.Context, e *entity.Empresa) (*entity.Empresa, error) {
	query := `
		UPDATE empresas
		   SET empresa = $2, nombre = $3, abreviado = $4, nit = $5, dg_verifica = $6,
		       direccion = $7, telefono = $8, ciudad = $9, fax = $10, correo = $11,
		       niveles = $12, activo = $13
		 WHERE id = $1
		RETURNING ` + columnasEmpresa
	rows, err := r.pool.Query(ctx, query,
		e.ID, e.Empresa, e.Nombre, e.Abreviado, e.NIT, e.DgVerifica, e.Direccion,
		e.Telefono, e.Ciudad, e.Fax, e.Correo, e.Niveles, e.Activo,
	)
	if err != nil {
		return nil, traducir("update empresa", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, traducir("update empresa", err)
		}
		return nil, nil
	}
	return scanEmpresa(rows)
}

// Delete elimina una empresa por ID; ErrNotFound si no existía.
func (r *EmpresaRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanEmpresa lee una fila con activo como valor crudo y lo normaliza.
// En el esquema heredado activo puede ser integer o boolean según la tabla.
func scanEmpresa(row pgx.Rows) (*entity.Empresa, error) {
	var e entity.Empresa
	var activo any
	err := row.Scan(&e.ID, &e.Empresa, &e.Nombre, &e.Abreviado, &e.NIT, &e.DgVerifica,
		&e.Direccion, &e.Telefono, &e.Ciudad, &e.Fax, &e.Correo, &e.Niveles, &activo)
	if err != nil {
		return nil, err
	}
	e.Activo = domain.NormalizeActivo(activo)
	return &e, nil
}

// agregarILike añade una condición ILIKE parcial si el valor no está vacío.
func agregarILike(conds *[]string, args *[]any, col, valor string) {
	if valor == "" {
		return
	}
	*args = append(*args, "%"+valor+"%")
	*conds = append(*conds, fmt.Sprintf("%s ILIKE $%d", col, len(*args)))
}

// traducir convierte violaciones de unicidad en ErrDuplicate conservando contexto.
func traducir(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
