package dto

import "github.com/weimars70/conta-hencker/internal/domain/entity"

// CreateAccesoRequest entrada para conceder acceso de un usuario a una empresa.
type CreateAccesoRequest struct {
	Empresa      string `json:"empresa" validate:"required"`
	Usuario      string `json:"usuario" validate:"required"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email" validate:"omitempty,email"`
	Clave        string `json:"clave"`
	Nivel        string `json:"nivel"`
	Codigo       int    `json:"codigo"`
	Bodega       int    `json:"bodega"`
	CentroCostos int    `json:"centro_costos"`
	Activo       *bool  `json:"activo"`
}

// AEntidad convierte la petición en entidad; activo omitido = true.
func (r CreateAccesoRequest) AEntidad() entity.Acceso {
	activo := true
	if r.Activo != nil {
		activo = *r.Activo
	}
	return entity.Acceso{
		Empresa:      r.Empresa,
		Usuario:      r.Usuario,
		Nombre:       r.Nombre,
		Email:        r.Email,
		Clave:        r.Clave,
		Nivel:        r.Nivel,
		Codigo:       r.Codigo,
		Bodega:       r.Bodega,
		CentroCostos: r.CentroCostos,
		Activo:       activo,
	}
}

// UpdateAccesoRequest entrada para actualizar un acceso (campos opcionales).
type UpdateAccesoRequest struct {
	Empresa      *string `json:"empresa"`
	Nombre       *string `json:"nombre"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Clave        *string `json:"clave"`
	Nivel        *string `json:"nivel"`
	Codigo       *int    `json:"codigo"`
	Bodega       *int    `json:"bodega"`
	CentroCostos *int    `json:"centro_costos"`
	Activo       *bool   `json:"activo"`
}

// Aplicar copia sobre la entidad los campos presentes en la petición.
func (r UpdateAccesoRequest) Aplicar(a *entity.Acceso) {
	if r.Empresa != nil {
		a.Empresa = *r.Empresa
	}
	if r.Nombre != nil {
		a.Nombre = *r.Nombre
	}
	if r.Email != nil {
		a.Email = *r.Email
	}
	if r.Clave != nil {
		a.Clave = *r.Clave
	}
	if r.Nivel != nil {
		a.Nivel = *r.Nivel
	}
	if r.Codigo != nil {
		a.Codigo = *r.Codigo
	}
	if r.Bodega != nil {
		a.Bodega = *r.Bodega
	}
	if r.CentroCostos != nil {
		a.CentroCostos = *r.CentroCostos
	}
	if r.Activo != nil {
		a.Activo = *r.Activo
	}
}

// FiltroAccesosRequest filtros de listado vía query params.
type FiltroAccesosRequest struct {
	Empresa string `query:"empresa"`
	Usuario string `query:"usuario"`
	Nombre  string `query:"nombre"`
	Email   string `query:"email"`
	Activo  *bool  `query:"activo"`
}

// ValidacionAccesoResponse respuesta del endpoint de validación. Siempre se
// responde 200; cualquier duda (fila ausente, backend caído) se reporta como
// activo=false.
type ValidacionAccesoResponse struct {
	Activo bool `json:"activo"`
}
