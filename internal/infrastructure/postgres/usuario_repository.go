package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// List devuelve el conjunto filtrado completo ordenado por id. El listado no
// lee clave_hash: solo el login necesita el hash.
func (r *UsuarioRepo) List(ctx context.Context, f repository.FiltroUsuarios) ([]entity.Usuario, error) {
	var conds []string
	var args []any
	agregarILike(&conds, &args, "nombre", f.Nombre)
	agregarILike(&conds, &args, "email", f.Email)
	agregarILike(&conds, &args, "telefono", f.Telefono)
	if f.Activo != nil {
		args = append(args, *f.Activo)
		conds = append(conds, fmt.Sprintf("activo = $%d", len(args)))
	}

	query := `SELECT id, nombre, email, telefono, activo FROM usuarios`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		var activo any
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.Telefono, &activo); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		u.Activo = domain.NormalizeActivo(activo)
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por ID, incluido el hash de clave.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	return r.buscarUno(ctx, `SELECT id, nombre, email, clave_hash, telefono, activo FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email, incluido el hash de clave.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.buscarUno(ctx, `SELECT id, nombre, email, clave_hash, telefono, activo FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) buscarUno(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	var u entity.Usuario
	var activo any
	if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.ClaveHash, &u.Telefono, &activo); err != nil {
		return nil, fmt.Errorf("scan usuario: %w", err)
	}
	u.Activo = domain.NormalizeActivo(activo)
	return &u, nil
}

// Create persiste un nuevo usuario y devuelve la fila creada.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	query := `
		INSERT INTO usuarios (nombre, email, clave_hash, telefono, activo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nombre, email, clave_hash, telefono, activo`
	rows, err := r.pool.Query(ctx, query, u.Nombre, u.Email, u.ClaveHash, u.Telefono, u.Activo)
	if err != nil {
		return nil, traducir("insert usuario", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, traducir("insert usuario", err)
		}
		return nil, fmt.Errorf("insert usuario: sin fila de retorno")
	}
	var creado entity.Usuario
	var activo any
	if err := rows.Scan(&creado.ID, &creado.Nombre, &creado.Email, &creado.ClaveHash, &creado.Telefono, &activo); err != nil {
		return nil, fmt.Errorf("scan usuario creado: %w", err)
	}
	creado.Activo = domain.NormalizeActivo(activo)
	return &creado, nil
}

// Update actualiza la fila completa por id; (nil, nil) si el id no existe.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	query := `
		UPDATE usuarios
		   SET nombre = $2, email = $3, clave_hash = $4, telefono = $5, activo = $6
		 WHERE id = $1
		RETURNING id, nombre, email, clave_hash, telefono, activo`
	rows, err := r.pool.Query(ctx, query, u.ID, u.Nombre, u.Email, u.ClaveHash, u.Telefono, u.Activo)
	if err != nil {
		return nil, traducir("update usuario", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, traducir("update usuario", err)
		}
		return nil, nil
	}
	var actualizado entity.Usuario
	var activo any
	if err := rows.Scan(&actualizado.ID, &actualizado.Nombre, &actualizado.Email, &actualizado.ClaveHash, &actualizado.Telefono, &activo); err != nil {
		return nil, fmt.Errorf("scan usuario actualizado: %w", err)
	}
	actualizado.Activo = domain.NormalizeActivo(activo)
	return &actualizado, nil
}

// Delete elimina un usuario por ID; ErrNotFound si no existía.
func (r *UsuarioRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
