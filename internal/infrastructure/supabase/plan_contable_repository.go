package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/supabase-community/postgrest-go"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

var _ repository.PlanContableRepository = (*PlanContableRepo)(nil)

// PlanContableRepo acceso al plan de cuentas sobre PostgREST. Registrar
// invoca func_registra_plan_contable vía RPC, la misma función que ejecuta
// el backend directo con SELECT.
type PlanContableRepo struct {
	rest *postgrest.Client
}

// NewPlanContableRepository construye el adaptador del plan contable.
func NewPlanContableRepository(rest *postgrest.Client) *PlanContableRepo {
	return &PlanContableRepo{rest: rest}
}

// Cuentas lista el plan completo de la empresa ordenado por cuenta. El alias
// de columnas lo resuelve PostgREST en el select.
func (r *PlanContableRepo) Cuentas(ctx context.Context, empresa string) ([]entity.CuentaPlan, error) {
	var filas []entity.CuentaPlan
	_, err := r.rest.From("plan_contable").
		Select("cuenta,descripcion:nombre,fuente,centrocostos:centro_costos", "", false).
		Eq("empresa", empresa).
		Order("cuenta", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("listar plan contable: %w", err)
	}
	return filas, nil
}

type filaCuentaContable struct {
	Empresa    string           `json:"empresa"`
	Cuenta     string           `json:"cuenta"`
	Nombre     string           `json:"nombre"`
	ConNit     bool             `json:"con_nit"`
	ConAplica  bool             `json:"con_aplica"`
	ConCheque  bool             `json:"con_cheque"`
	ConRete    bool             `json:"con_rete"`
	Porcentaje *decimal.Decimal `json:"porcentaje"`
	ConComen   bool             `json:"con_comen"`
	BaseMinima *decimal.Decimal `json:"base_minima"`
	Activo     any              `json:"activo"`
}

func (f filaCuentaContable) aEntidad() entity.CuentaContable {
	return entity.CuentaContable{
		Empresa:    f.Empresa,
		Cuenta:     f.Cuenta,
		Nombre:     f.Nombre,
		ConNit:     f.ConNit,
		ConAplica:  f.ConAplica,
		ConCheque:  f.ConCheque,
		ConRete:    f.ConRete,
		Porcentaje: f.Porcentaje,
		ConComen:   f.ConComen,
		BaseMinima: f.BaseMinima,
		Activo:     domain.NormalizeActivo(f.Activo),
	}
}

// CuentaPorID devuelve la fila completa de una cuenta; (nil, nil) si no existe.
func (r *PlanContableRepo) CuentaPorID(ctx context.Context, empresa, cuenta string) (*entity.CuentaContable, error) {
	var filas []filaCuentaContable
	_, err := r.rest.From("plan_contable").
		Select("*", "", false).
		Eq("empresa", empresa).
		Eq("cuenta", cuenta).
		Limit(1, "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("cuenta contable: %w", err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	c := filas[0].aEntidad()
	return &c, nil
}

// Registrar invoca func_registra_plan_contable con parámetros nombrados y
// devuelve el mensaje de resultado que produce la función.
func (r *PlanContableRepo) Registrar(ctx context.Context, empresa string, reg entity.RegistroCuenta) (string, error) {
	cuerpo := map[string]any{
		"empresa":       empresa,
		"periodo":       reg.Periodo,
		"cuenta":        reg.Cuenta,
		"deb_cre":       reg.Naturaleza,
		"nombre":        reg.Nombre,
		"codigo":        reg.Codigo,
		"subcodigo":     reg.Subcodigo,
		"columna":       reg.Columna,
		"con_nit":       reg.ConNit,
		"nit":           reg.Nit,
		"con_fuente":    reg.ConFuente,
		"fuente":        reg.Fuente,
		"con_ctrc":      reg.ConCtrc,
		"centro_costos": reg.CentroCostos,
		"con_aplica":    reg.ConAplica,
		"sdo_aplica":    reg.SdoAplica,
		"con_cheque":    reg.ConCheque,
		"con_rete":      reg.ConRete,
		"porcentaje":    reg.Porcentaje,
		"con_comen":     reg.ConComen,
		"con_concepto":  reg.ConConcepto,
		"base_minima":   reg.BaseMinima,
		"actividad":     reg.Actividad,
	}
	respuesta := r.rest.Rpc("func_registra_plan_contable", "", cuerpo)
	if r.rest.ClientError != nil {
		return "", fmt.Errorf("registrar cuenta: %w", r.rest.ClientError)
	}
	// La función devuelve texto; PostgREST lo serializa como JSON string.
	var resultado string
	if err := json.Unmarshal([]byte(respuesta), &resultado); err != nil {
		return respuesta, nil
	}
	return resultado, nil
}
