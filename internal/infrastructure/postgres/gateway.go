package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
	"github.com/weimars70/conta-hencker/internal/domain/schema"
)

var _ repository.TableGateway = (*Gateway)(nil)

// Gateway implementación del puerto TableGateway sobre PostgreSQL.
// El SQL se arma con identificadores ya validados contra el registro de
// esquema y valores siempre parametrizados; ningún texto externo se
// interpola sin pasar por la lista de tablas permitidas.
type Gateway struct {
	pool *pgxpool.Pool
}

// NewGateway construye el gateway genérico sobre el pool.
func NewGateway(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

// Insert inserta una fila con lista explícita de columnas y devuelve la fila
// creada tal como la reporta la base (defaults incluidos).
func (g *Gateway) Insert(ctx context.Context, tabla string, datos repository.Registro) (repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	query, args, err := construirInsert(t, normalizarEscritura(datos))
	if err != nil {
		return nil, err
	}
	rows, err := g.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, clasificar("insert", tabla, err)
	}
	reg, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, clasificar("insert", tabla, err)
	}
	return normalizarLectura(reg), nil
}

// FindAll lista filas de la tabla aplicando filtro por empresa y búsqueda
// parcial. El orden lo decide el consumidor; aquí no hay ORDER BY.
func (g *Gateway) FindAll(ctx context.Context, tabla string, filtro repository.FiltroLista) ([]repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	query, args := construirFindAll(t, filtro)
	rows, err := g.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, clasificar("findAll", tabla, err)
	}
	regs, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, clasificar("findAll", tabla, err)
	}
	out := make([]repository.Registro, 0, len(regs))
	for _, r := range regs {
		out = append(out, normalizarLectura(r))
	}
	return out, nil
}

// FindOne busca por llave compuesta (codigo, empresa). Ausencia = (nil, nil).
func (g *Gateway) FindOne(ctx context.Context, tabla string, clave repository.ClaveRegistro) (repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	query := fmt.Sprintf(`SELECT * FROM %q WHERE "codigo" = $1 AND "empresa" = $2`, t.Nombre)
	rows, err := g.pool.Query(ctx, query, clave.Codigo, clave.Empresa)
	if err != nil {
		return nil, clasificar("findOne", tabla, err)
	}
	reg, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, clasificar("findOne", tabla, err)
	}
	return normalizarLectura(reg), nil
}

// Update fija solo las columnas presentes en datos; el WHERE siempre incluye
// codigo y empresa. Llave sin coincidencia = (nil, nil).
func (g *Gateway) Update(ctx context.Context, tabla string, clave repository.ClaveRegistro, datos repository.Registro) (repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	query, args, err := construirUpdate(t, clave, normalizarEscritura(datos))
	if err != nil {
		return nil, err
	}
	rows, err := g.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, clasificar("update", tabla, err)
	}
	reg, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, clasificar("update", tabla, err)
	}
	return normalizarLectura(reg), nil
}

// Remove borra a lo sumo una fila por llave compuesta y la devuelve.
func (g *Gateway) Remove(ctx context.Context, tabla string, clave repository.ClaveRegistro) (repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	query := fmt.Sprintf(`DELETE FROM %q WHERE "codigo" = $1 AND "empresa" = $2 RETURNING *`, t.Nombre)
	rows, err := g.pool.Query(ctx, query, clave.Codigo, clave.Empresa)
	if err != nil {
		return nil, clasificar("remove", tabla, err)
	}
	reg, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, clasificar("remove", tabla, err)
	}
	return normalizarLectura(reg), nil
}

// ── construcción de sentencias ────────────────────────────────────────────────
// Funciones puras para poder probarlas sin pool. El orden de columnas sigue
// el del registro de esquema, no el del map, para que el SQL sea estable.

func construirInsert(t *schema.Tabla, datos repository.Registro) (string, []any, error) {
	if err := validarColumnas(t, datos); err != nil {
		return "", nil, err
	}
	var cols []string
	var args []any
	for _, c := range t.Columnas {
		v, ok := datos[c]
		if !ok {
			continue
		}
		cols = append(cols, c)
		args = append(args, v)
	}
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("%w: insert sin columnas", domain.ErrInvalidInput)
	}
	var b strings.Builder
	fmt.Fprintf(&b, `INSERT INTO %q (`, t.Nombre)
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", c)
	}
	b.WriteString(") VALUES (")
	for i := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "$%d", i+1)
	}
	b.WriteString(") RETURNING *")
	return b.String(), args, nil
}

func construirFindAll(t *schema.Tabla, filtro repository.FiltroLista) (string, []any) {
	var b strings.Builder
	fmt.Fprintf(&b, `SELECT * FROM %q`, t.Nombre)
	var args []any
	var conds []string

	if filtro.Empresa != "" {
		args = append(args, filtro.Empresa)
		conds = append(conds, fmt.Sprintf(`"empresa" = $%d`, len(args)))
	}
	if filtro.Busqueda != "" {
		patron := "%" + filtro.Busqueda + "%"
		var partes []string
		for i, col := range t.Busqueda {
			args = append(args, patron)
			if i == 0 && t.CodigoComoTexto {
				partes = append(partes, fmt.Sprintf(`CAST(%q AS TEXT) ILIKE $%d`, col, len(args)))
				continue
			}
			partes = append(partes, fmt.Sprintf(`%q ILIKE $%d`, col, len(args)))
		}
		conds = append(conds, "("+strings.Join(partes, " OR ")+")")
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	return b.String(), args
}

func construirUpdate(t *schema.Tabla, clave repository.ClaveRegistro, datos repository.Registro) (string, []any, error) {
	if err := validarColumnas(t, datos); err != nil {
		return "", nil, err
	}
	var sets []string
	var args []any
	for _, c := range t.Columnas {
		v, ok := datos[c]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf(`%q = $%d`, c, len(args)))
	}
	if len(sets) == 0 {
		return "", nil, fmt.Errorf("%w: update sin columnas", domain.ErrInvalidInput)
	}
	args = append(args, clave.Codigo, clave.Empresa)
	query := fmt.Sprintf(`UPDATE %q SET %s WHERE "codigo" = $%d AND "empresa" = $%d RETURNING *`,
		t.Nombre, strings.Join(sets, ", "), len(args)-1, len(args))
	return query, args, nil
}

func validarColumnas(t *schema.Tabla, datos repository.Registro) error {
	for c := range datos {
		if !t.PermiteColumna(c) {
			return fmt.Errorf("%w: %s.%s", domain.ErrColumnaDesconocida, t.Nombre, c)
		}
	}
	return nil
}

// normalizarLectura coerciona activo a bool estricto en la fila leída.
func normalizarLectura(reg repository.Registro) repository.Registro {
	if _, ok := reg["activo"]; ok {
		reg["activo"] = domain.NormalizeActivo(reg["activo"])
	}
	return reg
}

// normalizarEscritura aplica la misma regla en el camino de escritura, de
// forma que lo persistido nunca dependa de cómo serializó el cliente.
func normalizarEscritura(datos repository.Registro) repository.Registro {
	if v, ok := datos["activo"]; ok {
		out := make(repository.Registro, len(datos))
		for k, val := range datos {
			out[k] = val
		}
		out["activo"] = domain.NormalizeActivo(v)
		return out
	}
	return datos
}

// clasificar traduce errores del driver a la taxonomía de dominio y conserva
// el contexto (operación y tabla) para el log.
func clasificar(op, tabla string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s: %w", op, tabla, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s %s: %w", op, tabla, err)
}
