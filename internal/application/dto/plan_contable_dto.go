package dto

import (
	"github.com/shopspring/decimal"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// RegistrarCuentaRequest parámetros del alta/actualización de una cuenta del
// plan contable. Se pasan tal cual a func_registra_plan_contable.
type RegistrarCuentaRequest struct {
	Empresa      string           `json:"empresa" validate:"required"`
	Periodo      string           `json:"periodo" validate:"required"`
	Cuenta       string           `json:"cuenta" validate:"required"`
	Naturaleza   int              `json:"deb_cre" validate:"oneof=1 2"`
	Nombre       string           `json:"nombre" validate:"required"`
	Codigo       string           `json:"codigo"`
	Subcodigo    string           `json:"subcodigo"`
	Columna      int              `json:"columna"`
	ConNit       bool             `json:"con_nit"`
	Nit          string           `json:"nit"`
	ConFuente    bool             `json:"con_fuente"`
	Fuente       *int             `json:"fuente"`
	ConCtrc      bool             `json:"con_ctrc"`
	CentroCostos *int             `json:"centro_costos"`
	ConAplica    bool             `json:"con_aplica"`
	SdoAplica    bool             `json:"sdo_aplica"`
	ConCheque    bool             `json:"con_cheque"`
	ConRete      bool             `json:"con_rete"`
	Porcentaje   *decimal.Decimal `json:"porcentaje"`
	ConComen     bool             `json:"con_comen"`
	ConConcepto  bool             `json:"con_concepto"`
	BaseMinima   *decimal.Decimal `json:"base_minima"`
	Actividad    string           `json:"actividad"`
}

// ARegistro convierte la petición en los parámetros del puerto.
func (r RegistrarCuentaRequest) ARegistro() entity.RegistroCuenta {
	return entity.RegistroCuenta{
		Periodo:      r.Periodo,
		Cuenta:       r.Cuenta,
		Naturaleza:   r.Naturaleza,
		Nombre:       r.Nombre,
		Codigo:       r.Codigo,
		Subcodigo:    r.Subcodigo,
		Columna:      r.Columna,
		ConNit:       r.ConNit,
		Nit:          r.Nit,
		ConFuente:    r.ConFuente,
		Fuente:       r.Fuente,
		ConCtrc:      r.ConCtrc,
		CentroCostos: r.CentroCostos,
		ConAplica:    r.ConAplica,
		SdoAplica:    r.SdoAplica,
		ConCheque:    r.ConCheque,
		ConRete:      r.ConRete,
		Porcentaje:   r.Porcentaje,
		ConComen:     r.ConComen,
		ConConcepto:  r.ConConcepto,
		BaseMinima:   r.BaseMinima,
		Actividad:    r.Actividad,
	}
}

// RegistrarCuentaResponse mensaje de resultado de la función de base de datos.
type RegistrarCuentaResponse struct {
	Resultado string `json:"resultado"`
}
