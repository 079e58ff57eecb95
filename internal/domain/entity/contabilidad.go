package entity

import "github.com/shopspring/decimal"

// CuentaPlan es la fila resumida del listado del plan contable
// (GET /plan-contable): cuenta, descripción y marcas de fuente/centro.
type CuentaPlan struct {
	Cuenta       string `json:"cuenta"`
	Descripcion  string `json:"descripcion"`
	Fuente       *int   `json:"fuente"`
	CentroCostos *int   `json:"centrocostos"`
}

// CuentaContable es la fila completa de plan_contable para una cuenta.
// Porcentaje y BaseMinima son NUMERIC en la base; se manejan con decimal
// para no perder precisión en retenciones.
type CuentaContable struct {
	Empresa    string           `json:"empresa"`
	Cuenta     string           `json:"cuenta"`
	Nombre     string           `json:"nombre"`
	ConNit     bool             `json:"con_nit"`
	ConAplica  bool             `json:"con_aplica"`
	ConCheque  bool             `json:"con_cheque"`
	ConRete    bool             `json:"con_rete"`
	Porcentaje *decimal.Decimal `json:"porcentaje"`
	ConComen   bool             `json:"con_comen"`
	BaseMinima *decimal.Decimal `json:"baseminima"`
	Activo     bool             `json:"activo"`
}

// RegistroCuenta agrupa los parámetros de func_registra_plan_contable, la
// función de base de datos que da de alta o actualiza una cuenta del plan.
type RegistroCuenta struct {
	Periodo      string
	Cuenta       string
	Naturaleza   int // deb_cre: 1 débito, 2 crédito
	Nombre       string
	Codigo       string
	Subcodigo    string
	Columna      int
	ConNit       bool
	Nit          string
	ConFuente    bool
	Fuente       *int
	ConCtrc      bool
	CentroCostos *int
	ConAplica    bool
	SdoAplica    bool
	ConCheque    bool
	ConRete      bool
	Porcentaje   *decimal.Decimal
	ConComen     bool
	ConConcepto  bool
	BaseMinima   *decimal.Decimal
	Actividad    string
}

// TipoDocumento fila de tipo_consecutivo activa para una empresa.
type TipoDocumento struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}

// CentroCosto fila de centro_costos activa.
type CentroCosto struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// FuenteContable fila de fuente_contable activa.
type FuenteContable struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// Nit tercero registrado para una empresa.
type Nit struct {
	Nit    string `json:"nit"`
	Nombre string `json:"nombre"`
}
