package postgres

import (
	"testing"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// La llamada a func_registra_plan_contable es posicional: cada valor de
// RegistroCuenta debe poder codificarse contra el tipo que la función declara
// para ese parámetro. Un desfase de tipos (p. ej. bool contra varchar) revienta
// en el pool antes de llegar al servidor; este test lo detecta sin base.
func TestRegistrar_ArgumentosCodificables(t *testing.T) {
	m := pgtype.NewMap()
	pgxdecimal.Register(m)

	fuente := 10
	porcentaje := decimal.NewFromFloat(2.5)
	reg := entity.RegistroCuenta{
		Periodo:    "2025",
		Cuenta:     "110505",
		Naturaleza: 1,
		Nombre:     "Caja general",
		Codigo:     "11",
		Subcodigo:  "05",
		Columna:    3,
		ConNit:     true,
		Nit:        "900123456",
		ConFuente:  true,
		Fuente:     &fuente,
		ConAplica:  true,
		SdoAplica:  true,
		Porcentaje: &porcentaje,
		Actividad:  "COMERCIO",
	}

	casos := []struct {
		parametro string
		oid       uint32
		valor     any
	}{
		{"empresa", pgtype.VarcharOID, "01"},
		{"periodo", pgtype.VarcharOID, reg.Periodo},
		{"cuenta", pgtype.VarcharOID, reg.Cuenta},
		{"deb_cre", pgtype.Int4OID, reg.Naturaleza},
		{"nombre", pgtype.VarcharOID, reg.Nombre},
		{"codigo", pgtype.Int4OID, reg.Codigo},
		{"subcodigo", pgtype.Int4OID, reg.Subcodigo},
		{"columna", pgtype.Int4OID, reg.Columna},
		{"con_nit", pgtype.BoolOID, reg.ConNit},
		{"nit", pgtype.VarcharOID, reg.Nit},
		{"con_fuente", pgtype.BoolOID, reg.ConFuente},
		{"fuente", pgtype.Int4OID, reg.Fuente},
		{"con_ctrc", pgtype.BoolOID, reg.ConCtrc},
		{"centro_costos", pgtype.Int4OID, reg.CentroCostos},
		{"con_aplica", pgtype.BoolOID, reg.ConAplica},
		{"sdo_aplica", pgtype.BoolOID, reg.SdoAplica},
		{"con_cheque", pgtype.BoolOID, reg.ConCheque},
		{"con_rete", pgtype.BoolOID, reg.ConRete},
		{"porcentaje", pgtype.NumericOID, reg.Porcentaje},
		{"con_comen", pgtype.BoolOID, reg.ConComen},
		{"con_concepto", pgtype.BoolOID, reg.ConConcepto},
		{"base_minima", pgtype.NumericOID, reg.BaseMinima},
		{"actividad", pgtype.VarcharOID, reg.Actividad},
	}

	for _, c := range casos {
		_, err := m.Encode(c.oid, pgtype.TextFormatCode, c.valor, nil)
		assert.NoError(t, err, "el parámetro %s debe tener plan de codificación", c.parametro)
	}
}
