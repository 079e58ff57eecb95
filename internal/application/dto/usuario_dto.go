package dto

import "github.com/weimars70/conta-hencker/internal/domain/entity"

// CreateUsuarioRequest entrada para crear un usuario. Clave llega en claro y
// el caso de uso la convierte en hash bcrypt antes de persistir.
type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Clave    string `json:"clave" validate:"required,min=6"`
	Telefono string `json:"telefono"`
	Activo   *bool  `json:"activo"`
}

// AEntidad convierte la petición en entidad sin hash; activo omitido = true.
func (r CreateUsuarioRequest) AEntidad() entity.Usuario {
	activo := true
	if r.Activo != nil {
		activo = *r.Activo
	}
	return entity.Usuario{
		Nombre:   r.Nombre,
		Email:    r.Email,
		Telefono: r.Telefono,
		Activo:   activo,
	}
}

// UpdateUsuarioRequest entrada para actualizar un usuario (campos opcionales).
// Clave presente rehashea; ausente conserva el hash actual.
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Clave    *string `json:"clave" validate:"omitempty,min=6"`
	Telefono *string `json:"telefono"`
	Activo   *bool   `json:"activo"`
}

// Aplicar copia sobre la entidad los campos presentes (la clave la maneja el
// caso de uso porque requiere hashing).
func (r UpdateUsuarioRequest) Aplicar(u *entity.Usuario) {
	if r.Nombre != nil {
		u.Nombre = *r.Nombre
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Telefono != nil {
		u.Telefono = *r.Telefono
	}
	if r.Activo != nil {
		u.Activo = *r.Activo
	}
}

// FiltroUsuariosRequest filtros de listado vía query params.
type FiltroUsuariosRequest struct {
	Nombre   string `query:"nombre"`
	Email    string `query:"email"`
	Telefono string `query:"telefono"`
	Activo   *bool  `query:"activo"`
}
