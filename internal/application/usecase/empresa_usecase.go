package usecase

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// EmpresaUseCase CRUD de empresas con control de unicidad por código y NIT.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso de empresas.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// List lista empresas con filtros y paginación.
func (uc *EmpresaUseCase) List(ctx context.Context, f repository.FiltroEmpresas, page dto.PageRequest) (dto.Paginado[entity.Empresa], error) {
	items, err := uc.repo.List(ctx, f)
	if err != nil {
		return dto.Paginado[entity.Empresa]{}, err
	}
	return dto.Paginar(items, page), nil
}

// Get obtiene una empresa por ID; ErrNotFound si no existe.
func (uc *EmpresaUseCase) Get(ctx context.Context, id int) (*entity.Empresa, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Create valida unicidad de código y NIT antes de insertar. El pre-chequeo
// mejora el mensaje al cliente; la constraint de la base sigue cubriendo la
// carrera y el repositorio la traduce igualmente a ErrDuplicate.
func (uc *EmpresaUseCase) Create(ctx context.Context, in dto.CreateEmpresaRequest) (*entity.Empresa, error) {
	existente, err := uc.repo.FindByEmpresaONit(ctx, in.Empresa, in.Nit, 0)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	e := in.AEntidad()
	return uc.repo.Create(ctx, &e)
}

// Update lee la fila actual, aplica solo los campos presentes y persiste la
// fila completa. Si el código o el NIT cambian, revalida unicidad excluyendo
// la propia fila.
func (uc *EmpresaUseCase) Update(ctx context.Context, id int, in dto.UpdateEmpresaRequest) (*entity.Empresa, error) {
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.ErrNotFound
	}

	if in.Empresa != nil || in.Nit != nil {
		codigo := actual.Empresa
		if in.Empresa != nil {
			codigo = *in.Empresa
		}
		nit := actual.NIT
		if in.Nit != nil {
			nit = *in.Nit
		}
		conflicto, err := uc.repo.FindByEmpresaONit(ctx, codigo, nit, id)
		if err != nil {
			return nil, err
		}
		if conflicto != nil {
			return nil, domain.ErrDuplicate
		}
	}

	in.Aplicar(actual)
	actualizada, err := uc.repo.Update(ctx, actual)
	if err != nil {
		return nil, err
	}
	if actualizada == nil {
		return nil, domain.ErrNotFound
	}
	return actualizada, nil
}

// Delete elimina una empresa por ID.
func (uc *EmpresaUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}
