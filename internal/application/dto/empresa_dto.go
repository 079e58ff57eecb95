package dto

import "github.com/weimars70/conta-hencker/internal/domain/entity"

// CreateEmpresaRequest entrada para crear una empresa.
type CreateEmpresaRequest struct {
	Empresa    string `json:"empresa" validate:"required,min=1,max=10"`
	Nombre     string `json:"nombre" validate:"required,min=1,max=200"`
	Abreviado  string `json:"abreviado"`
	Nit        string `json:"nit" validate:"required,min=1,max=20"`
	DgVerifica string `json:"dg_verifica"`
	Direccion  string `json:"direccion"`
	Telefono   string `json:"telefono"`
	Ciudad     string `json:"ciudad"`
	Fax        string `json:"fax"`
	Correo     string `json:"correo" validate:"omitempty,email"`
	Niveles    string `json:"niveles"`
	Activo     *bool  `json:"activo"`
}

// AEntidad convierte la petición en entidad; activo omitido = true.
func (r CreateEmpresaRequest) AEntidad() entity.Empresa {
	activo := true
	if r.Activo != nil {
		activo = *r.Activo
	}
	return entity.Empresa{
		Empresa:    r.Empresa,
		Nombre:     r.Nombre,
		Abreviado:  r.Abreviado,
		NIT:        r.Nit,
		DgVerifica: r.DgVerifica,
		Direccion:  r.Direccion,
		Telefono:   r.Telefono,
		Ciudad:     r.Ciudad,
		Fax:        r.Fax,
		Correo:     r.Correo,
		Niveles:    r.Niveles,
		Activo:     activo,
	}
}

// UpdateEmpresaRequest entrada para actualizar una empresa (campos opcionales:
// solo los presentes en el cuerpo modifican la fila).
type UpdateEmpresaRequest struct {
	Empresa    *string `json:"empresa" validate:"omitempty,min=1,max=10"`
	Nombre     *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Abreviado  *string `json:"abreviado"`
	Nit        *string `json:"nit" validate:"omitempty,min=1,max=20"`
	DgVerifica *string `json:"dg_verifica"`
	Direccion  *string `json:"direccion"`
	Telefono   *string `json:"telefono"`
	Ciudad     *string `json:"ciudad"`
	Fax        *string `json:"fax"`
	Correo     *string `json:"correo" validate:"omitempty,email"`
	Niveles    *string `json:"niveles"`
	Activo     *bool   `json:"activo"`
}

// Aplicar copia sobre la entidad los campos presentes en la petición.
func (r UpdateEmpresaRequest) Aplicar(e *entity.Empresa) {
	if r.Empresa != nil {
		e.Empresa = *r.Empresa
	}
	if r.Nombre != nil {
		e.Nombre = *r.Nombre
	}
	if r.Abreviado != nil {
		e.Abreviado = *r.Abreviado
	}
	if r.Nit != nil {
		e.NIT = *r.Nit
	}
	if r.DgVerifica != nil {
		e.DgVerifica = *r.DgVerifica
	}
	if r.Direccion != nil {
		e.Direccion = *r.Direccion
	}
	if r.Telefono != nil {
		e.Telefono = *r.Telefono
	}
	if r.Ciudad != nil {
		e.Ciudad = *r.Ciudad
	}
	if r.Fax != nil {
		e.Fax = *r.Fax
	}
	if r.Correo != nil {
		e.Correo = *r.Correo
	}
	if r.Niveles != nil {
		e.Niveles = *r.Niveles
	}
	if r.Activo != nil {
		e.Activo = *r.Activo
	}
}

// FiltroEmpresasRequest filtros de listado vía query params.
type FiltroEmpresasRequest struct {
	Empresa string `query:"empresa"`
	Nombre  string `query:"nombre"`
	Nit     string `query:"nit"`
	Ciudad  string `query:"ciudad"`
	Activo  *bool  `query:"activo"`
}
