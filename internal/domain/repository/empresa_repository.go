package repository

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// FiltroEmpresas filtros del listado de empresas. Todos los campos de texto
// son búsqueda parcial insensible a mayúsculas; Activo nil = sin filtrar.
type FiltroEmpresas struct {
	Empresa string
	Nombre  string
	Nit     string
	Ciudad  string
	Activo  *bool
}

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
// Las implementaciones viven en infrastructure. List devuelve el conjunto
// filtrado completo ordenado por id; la paginación la aplica el caso de uso
// para que ambos backends compartan exactamente el mismo contrato de total.
type EmpresaRepository interface {
	List(ctx context.Context, f FiltroEmpresas) ([]entity.Empresa, error)
	GetByID(ctx context.Context, id int) (*entity.Empresa, error)
	// FindByEmpresaONit busca una empresa con el mismo código o NIT,
	// excluyendo opcionalmente un id (excluirID > 0). Es el pre-chequeo de
	// unicidad; la constraint de la base sigue siendo la fuente de verdad.
	FindByEmpresaONit(ctx context.Context, empresa, nit string, excluirID int) (*entity.Empresa, error)
	Create(ctx context.Context, e *entity.Empresa) (*entity.Empresa, error)
	Update(ctx context.Context, e *entity.Empresa) (*entity.Empresa, error)
	Delete(ctx context.Context, id int) error
}
