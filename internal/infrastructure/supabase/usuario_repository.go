package supabase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgREST.
type UsuarioRepo struct {
	rest *postgrest.Client
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(rest *postgrest.Client) *UsuarioRepo {
	return &UsuarioRepo{rest: rest}
}

type filaUsuario struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	ClaveHash string `json:"clave_hash"`
	Telefono  string `json:"telefono"`
	Activo    any    `json:"activo"`
}

func (f filaUsuario) aEntidad() entity.Usuario {
	return entity.Usuario{
		ID:        f.ID,
		Nombre:    f.Nombre,
		Email:     f.Email,
		ClaveHash: f.ClaveHash,
		Telefono:  f.Telefono,
		Activo:    domain.NormalizeActivo(f.Activo),
	}
}

func cuerpoUsuario(u *entity.Usuario) map[string]any {
	return map[string]any{
		"nombre":     u.Nombre,
		"email":      u.Email,
		"clave_hash": u.ClaveHash,
		"telefono":   u.Telefono,
		"activo":     u.Activo,
	}
}

// List devuelve el conjunto filtrado completo ordenado por id. El listado no
// lee clave_hash: solo el login necesita el hash.
func (r *UsuarioRepo) List(ctx context.Context, f repository.FiltroUsuarios) ([]entity.Usuario, error) {
	fb := r.rest.From("usuarios").Select("id,nombre,email,telefono,activo", "", false)
	if f.Nombre != "" {
		fb = fb.Ilike("nombre", "%"+f.Nombre+"%")
	}
	if f.Email != "" {
		fb = fb.Ilike("email", "%"+f.Email+"%")
	}
	if f.Telefono != "" {
		fb = fb.Ilike("telefono", "%"+f.Telefono+"%")
	}
	if f.Activo != nil {
		fb = fb.Eq("activo", strconv.FormatBool(*f.Activo))
	}
	var filas []filaUsuario
	_, err := fb.Order("id", &postgrest.OrderOpts{Ascending: true}).ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	list := make([]entity.Usuario, 0, len(filas))
	for _, fila := range filas {
		list = append(list, fila.aEntidad())
	}
	return list, nil
}

// GetByID obtiene un usuario por ID, incluido el hash de clave.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	return r.buscarUno(ctx, "id", strconv.Itoa(id))
}

// GetByEmail obtiene un usuario por email, incluido el hash de clave.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.buscarUno(ctx, "email", email)
}

func (r *UsuarioRepo) buscarUno(ctx context.Context, col, valor string) (*entity.Usuario, error) {
	var filas []filaUsuario
	_, err := r.rest.From("usuarios").
		Select("*", "", false).
		Eq(col, valor).
		Limit(1, "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	u := filas[0].aEntidad()
	return &u, nil
}

// Create persiste un nuevo usuario y devuelve la fila creada.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	var filas []filaUsuario
	_, err := r.rest.From("usuarios").
		Insert(cuerpoUsuario(u), false, "", "representation", "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, traducir("insert usuario", err)
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("insert usuario: sin fila de retorno")
	}
	creado := filas[0].aEntidad()
	return &creado, nil
}

// Update actualiza la fila completa por id; (nil, nil) si el id no existe.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	var filas []filaUsuario
	_, err := r.rest.From("usuarios").
		Update(cuerpoUsuario(u), "representation", "").
		Eq("id", strconv.Itoa(u.ID)).
		ExecuteTo(&filas)
	if err != nil {
		return nil, traducir("update usuario", err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	actualizado := filas[0].aEntidad()
	return &actualizado, nil
}

// Delete elimina un usuario por ID; ErrNotFound si no existía.
func (r *UsuarioRepo) Delete(ctx context.Context, id int) error {
	var filas []filaUsuario
	_, err := r.rest.From("usuarios").
		Delete("representation", "").
		Eq("id", strconv.Itoa(id)).
		ExecuteTo(&filas)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if len(filas) == 0 {
		return domain.ErrNotFound
	}
	return nil
}
