package usecase

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase CRUD de usuarios. Las claves solo existen en claro dentro de
// la petición: aquí se convierten a hash bcrypt y jamás se devuelven.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso de usuarios.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List lista usuarios con filtros y paginación.
func (uc *UsuarioUseCase) List(ctx context.Context, f repository.FiltroUsuarios, page dto.PageRequest) (dto.Paginado[entity.Usuario], error) {
	items, err := uc.repo.List(ctx, f)
	if err != nil {
		return dto.Paginado[entity.Usuario]{}, err
	}
	return dto.Paginar(items, page), nil
}

// Get obtiene un usuario por ID; ErrNotFound si no existe.
func (uc *UsuarioUseCase) Get(ctx context.Context, id int) (*entity.Usuario, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Create hashea la clave con bcrypt y persiste. Email duplicado = ErrDuplicate.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (*entity.Usuario, error) {
	existente, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := in.AEntidad()
	u.ClaveHash = string(hash)
	return uc.repo.Create(ctx, &u)
}

// Update aplica los campos presentes; una clave nueva se rehashea, la ausente
// conserva el hash vigente.
func (uc *UsuarioUseCase) Update(ctx context.Context, id int, in dto.UpdateUsuarioRequest) (*entity.Usuario, error) {
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil && *in.Email != actual.Email {
		conflicto, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if conflicto != nil && conflicto.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	in.Aplicar(actual)
	if in.Clave != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Clave), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		actual.ClaveHash = string(hash)
	}
	actualizado, err := uc.repo.Update(ctx, actual)
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, domain.ErrNotFound
	}
	return actualizado, nil
}

// Delete elimina un usuario por ID.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}
