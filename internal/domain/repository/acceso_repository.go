package repository

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// FiltroAccesos filtros del listado de accesos.
type FiltroAccesos struct {
	Empresa string
	Usuario string
	Nombre  string
	Email   string
	Activo  *bool
}

// AccesoRepository puerto de persistencia para accesos.
//
// La llave real de la tabla es (empresa, usuario) pero GetByUsuario, Update y
// Delete operan solo por usuario, igual que la API original: si el usuario
// tiene filas en varias empresas, estas operaciones alcanzan una sola.
type AccesoRepository interface {
	List(ctx context.Context, f FiltroAccesos) ([]entity.Acceso, error)
	GetByUsuario(ctx context.Context, usuario string) (*entity.Acceso, error)
	Create(ctx context.Context, a *entity.Acceso) (*entity.Acceso, error)
	Update(ctx context.Context, usuario string, a *entity.Acceso) (*entity.Acceso, error)
	Delete(ctx context.Context, usuario string) error
	// Activo consulta la llave compuesta completa. Es la única lectura que
	// usa (usuario, empresa); alimenta el endpoint de validación fail-closed.
	Activo(ctx context.Context, usuario, empresa string) (bool, error)
	// EmpresasDeUsuario lee view_empresas_usuarios para el login.
	EmpresasDeUsuario(ctx context.Context, usuarioID int) ([]entity.EmpresaUsuario, error)
}
