package repository

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// ContabilidadRepository puerto de los catálogos contables de solo lectura.
// Todas las consultas filtran por empresa y activo=true y ordenan por nombre
// (por cuenta en CuentasContables), tal como las consume el frontend.
type ContabilidadRepository interface {
	TiposDocumento(ctx context.Context, empresa string) ([]entity.TipoDocumento, error)
	CuentasContables(ctx context.Context, empresa string) ([]entity.CuentaContable, error)
	CentrosCostos(ctx context.Context, empresa string) ([]entity.CentroCosto, error)
	FuentesContables(ctx context.Context, empresa string) ([]entity.FuenteContable, error)
	// Nits busca terceros; filtro aplica ILIKE parcial sobre nit y nombre.
	Nits(ctx context.Context, empresa, filtro string) ([]entity.Nit, error)
}
