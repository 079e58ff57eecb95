package supabase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
	"github.com/weimars70/conta-hencker/internal/domain/schema"
)

var _ repository.TableGateway = (*Gateway)(nil)

// Gateway implementación del puerto TableGateway sobre PostgREST.
// Valida tabla y columnas contra el mismo registro de esquema que el backend
// directo: un nombre fuera de la lista nunca llega a la URL de PostgREST.
type Gateway struct {
	rest *postgrest.Client
}

// NewGateway construye el gateway genérico sobre el cliente PostgREST.
func NewGateway(rest *postgrest.Client) *Gateway {
	return &Gateway{rest: rest}
}

// Insert inserta una fila y devuelve la representación que reporta el servidor.
func (g *Gateway) Insert(ctx context.Context, tabla string, datos repository.Registro) (repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	if err := validarColumnas(t, datos); err != nil {
		return nil, err
	}
	var filas []repository.Registro
	_, err := g.rest.From(t.Nombre).
		Insert(normalizarEscritura(datos), false, "", "representation", "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, clasificar("insert", tabla, err)
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("insert %s: sin fila de retorno", tabla)
	}
	return normalizarLectura(filas[0]), nil
}

// FindAll lista filas aplicando filtro por empresa en el servidor. La búsqueda
// parcial se resuelve en memoria sobre las columnas del registro de esquema:
// PostgREST no admite el CAST de codigo a texto que exige el contrato de
// búsqueda, y así ambos backends comparten exactamente la misma semántica.
func (g *Gateway) FindAll(ctx context.Context, tabla string, filtro repository.FiltroLista) ([]repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	fb := g.rest.From(t.Nombre).Select("*", "", false)
	if filtro.Empresa != "" {
		fb = fb.Eq("empresa", filtro.Empresa)
	}
	var filas []repository.Registro
	if _, err := fb.ExecuteTo(&filas); err != nil {
		return nil, clasificar("findAll", tabla, err)
	}

	out := make([]repository.Registro, 0, len(filas))
	for _, f := range filas {
		if filtro.Busqueda != "" && !coincideBusqueda(t, f, filtro.Busqueda) {
			continue
		}
		out = append(out, normalizarLectura(f))
	}
	return out, nil
}

// FindOne busca por llave compuesta (codigo, empresa). Ausencia = (nil, nil).
func (g *Gateway) FindOne(ctx context.Context, tabla string, clave repository.ClaveRegistro) (repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	var filas []repository.Registro
	_, err := g.rest.From(t.Nombre).
		Select("*", "", false).
		Eq("codigo", strconv.Itoa(clave.Codigo)).
		Eq("empresa", clave.Empresa).
		Limit(1, "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, clasificar("findOne", tabla, err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	return normalizarLectura(filas[0]), nil
}

// Update fija solo las columnas presentes en datos; el filtro siempre incluye
// codigo y empresa. Llave sin coincidencia = (nil, nil).
func (g *Gateway) Update(ctx context.Context, tabla string, clave repository.ClaveRegistro, datos repository.Registro) (repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	if err := validarColumnas(t, datos); err != nil {
		return nil, err
	}
	if len(datos) == 0 {
		return nil, fmt.Errorf("%w: update sin columnas", domain.ErrInvalidInput)
	}
	var filas []repository.Registro
	_, err := g.rest.From(t.Nombre).
		Update(normalizarEscritura(datos), "representation", "").
		Eq("codigo", strconv.Itoa(clave.Codigo)).
		Eq("empresa", clave.Empresa).
		ExecuteTo(&filas)
	if err != nil {
		return nil, clasificar("update", tabla, err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	return normalizarLectura(filas[0]), nil
}

// Remove borra por llave compuesta y devuelve la fila eliminada, o (nil, nil).
func (g *Gateway) Remove(ctx context.Context, tabla string, clave repository.ClaveRegistro) (repository.Registro, error) {
	t, ok := schema.Buscar(tabla)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTablaDesconocida, tabla)
	}
	var filas []repository.Registro
	_, err := g.rest.From(t.Nombre).
		Delete("representation", "").
		Eq("codigo", strconv.Itoa(clave.Codigo)).
		Eq("empresa", clave.Empresa).
		ExecuteTo(&filas)
	if err != nil {
		return nil, clasificar("remove", tabla, err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	return normalizarLectura(filas[0]), nil
}

// coincideBusqueda reproduce el OR de ILIKEs del backend directo: subcadena
// insensible a mayúsculas sobre las columnas de búsqueda de la tabla, con el
// código comparado como texto.
func coincideBusqueda(t *schema.Tabla, fila repository.Registro, termino string) bool {
	patron := strings.ToLower(termino)
	for _, col := range t.Busqueda {
		if strings.Contains(strings.ToLower(texto(fila[col])), patron) {
			return true
		}
	}
	return false
}

func validarColumnas(t *schema.Tabla, datos repository.Registro) error {
	for c := range datos {
		if !t.PermiteColumna(c) {
			return fmt.Errorf("%w: %s.%s", domain.ErrColumnaDesconocida, t.Nombre, c)
		}
	}
	return nil
}

func normalizarLectura(reg repository.Registro) repository.Registro {
	if _, ok := reg["activo"]; ok {
		reg["activo"] = domain.NormalizeActivo(reg["activo"])
	}
	return reg
}

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

func clasificar(op, tabla string, err error) error {
	if esDuplicado(err) {
		return fmt.Errorf("%s %s: %w", op, tabla, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s %s: %w", op, tabla, err)
}
