package supabase

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

var _ repository.ContabilidadRepository = (*ContabilidadRepo)(nil)

// ContabilidadRepo catálogos contables de solo lectura sobre PostgREST.
type ContabilidadRepo struct {
	rest *postgrest.Client
}

// NewContabilidadRepository construye el adaptador de catálogos contables.
func NewContabilidadRepository(rest *postgrest.Client) *ContabilidadRepo {
	return &ContabilidadRepo{rest: rest}
}

// TiposDocumento tipos de consecutivo activos de la empresa.
func (r *ContabilidadRepo) TiposDocumento(ctx context.Context, empresa string) ([]entity.TipoDocumento, error) {
	var filas []struct {
		Codigo any    `json:"codigo"`
		Nombre string `json:"nombre"`
		Activo any    `json:"activo"`
	}
	_, err := r.rest.From("tipo_consecutivo").
		Select("codigo,nombre,activo", "", false).
		Eq("empresa", empresa).
		Eq("activo", "true").
		Order("nombre", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("tipos documento: %w", err)
	}
	list := make([]entity.TipoDocumento, 0, len(filas))
	for _, f := range filas {
		list = append(list, entity.TipoDocumento{
			Codigo: texto(f.Codigo),
			Nombre: f.Nombre,
			Activo: domain.NormalizeActivo(f.Activo),
		})
	}
	return list, nil
}

// CuentasContables cuentas de movimiento (más de seis dígitos) activas.
// PostgREST no filtra por longitud, así que el corte se aplica aquí.
func (r *ContabilidadRepo) CuentasContables(ctx context.Context, empresa string) ([]entity.CuentaContable, error) {
	var filas []filaCuentaContable
	_, err := r.rest.From("plan_contable").
		Select("*", "", false).
		Eq("empresa", empresa).
		Eq("activo", "true").
		Order("cuenta", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("cuentas contables: %w", err)
	}
	list := make([]entity.CuentaContable, 0, len(filas))
	for _, f := range filas {
		if len(f.Cuenta) <= 6 {
			continue
		}
		list = append(list, f.aEntidad())
	}
	return list, nil
}

// CentrosCostos centros de costo activos.
func (r *ContabilidadRepo) CentrosCostos(ctx context.Context, empresa string) ([]entity.CentroCosto, error) {
	filas, err := r.catalogo(ctx, "centro_costos", empresa)
	if err != nil {
		return nil, fmt.Errorf("centros costos: %w", err)
	}
	list := make([]entity.CentroCosto, 0, len(filas))
	for _, f := range filas {
		list = append(list, entity.CentroCosto{Codigo: f.codigo, Nombre: f.nombre})
	}
	return list, nil
}

// FuentesContables fuentes contables activas.
func (r *ContabilidadRepo) FuentesContables(ctx context.Context, empresa string) ([]entity.FuenteContable, error) {
	filas, err := r.catalogo(ctx, "fuente_contable", empresa)
	if err != nil {
		return nil, fmt.Errorf("fuentes contables: %w", err)
	}
	list := make([]entity.FuenteContable, 0, len(filas))
	for _, f := range filas {
		list = append(list, entity.FuenteContable{Codigo: f.codigo, Nombre: f.nombre})
	}
	return list, nil
}

type filaCatalogo struct {
	codigo string
	nombre string
}

// catalogo consulta común de los catálogos (codigo, nombre) activos.
func (r *ContabilidadRepo) catalogo(ctx context.Context, tabla, empresa string) ([]filaCatalogo, error) {
	var filas []struct {
		Codigo any    `json:"codigo"`
		Nombre string `json:"nombre"`
	}
	_, err := r.rest.From(tabla).
		Select("codigo,nombre", "", false).
		Eq("empresa", empresa).
		Eq("activo", "true").
		Order("nombre", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&filas)
	if err != nil {
		return nil, err
	}
	out := make([]filaCatalogo, 0, len(filas))
	for _, f := range filas {
		out = append(out, filaCatalogo{codigo: texto(f.Codigo), nombre: f.Nombre})
	}
	return out, nil
}

// Nits busca terceros por aproximación sobre nit y nombre.
func (r *ContabilidadRepo) Nits(ctx context.Context, empresa, filtro string) ([]entity.Nit, error) {
	fb := r.rest.From("nits").
		Select("nit,nombre", "", false).
		Eq("empresa", empresa)
	if filtro != "" {
		patron := "%" + filtro + "%"
		fb = fb.Or(fmt.Sprintf("nit.ilike.%s,nombre.ilike.%s", patron, patron), "")
	}
	var filas []entity.Nit
	_, err := fb.Order("nombre", &postgrest.OrderOpts{Ascending: true}).ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("buscar nits: %w", err)
	}
	return filas, nil
}
