package repository

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// FiltroUsuarios filtros del listado de usuarios.
type FiltroUsuarios struct {
	Nombre   string
	Email    string
	Telefono string
	Activo   *bool
}

// UsuarioRepository puerto de persistencia para Usuario. GetByEmail devuelve
// la fila completa incluido el hash de clave (solo lo consume el login);
// el resto de lecturas también lo incluyen y es el caso de uso quien lo
// retira antes de responder.
type UsuarioRepository interface {
	List(ctx context.Context, f FiltroUsuarios) ([]entity.Usuario, error)
	GetByID(ctx context.Context, id int) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Create(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error)
	Delete(ctx context.Context, id int) error
}
