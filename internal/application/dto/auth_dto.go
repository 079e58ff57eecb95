package dto

import "github.com/weimars70/conta-hencker/internal/domain/entity"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario + empresas a las que tiene acceso activo.
// Empresas nunca es null: sin accesos (o con la vista inconsultable) va [].
type LoginResponse struct {
	AccessToken string                  `json:"access_token"`
	User        entity.Usuario          `json:"user"`
	Empresas    []entity.EmpresaUsuario `json:"empresas"`
}
