package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
	"github.com/weimars70/conta-hencker/internal/domain/schema"
)

func tabla(t *testing.T, nombre string) *schema.Tabla {
	t.Helper()
	tb, ok := schema.Buscar(nombre)
	require.True(t, ok)
	return tb
}

// ── construirInsert ───────────────────────────────────────────────────────────

func TestConstruirInsert_OrdenEstable(t *testing.T) {
	// El orden de columnas sigue el registro de esquema, no el del map.
	query, args, err := construirInsert(tabla(t, "bodegas"), repository.Registro{
		"nombre":  "Principal",
		"empresa": "01",
		"codigo":  5,
	})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "bodegas" ("empresa", "codigo", "nombre") VALUES ($1, $2, $3) RETURNING *`, query)
	assert.Equal(t, []any{"01", 5, "Principal"}, args)
}

func TestConstruirInsert_ColumnaDesconocidaRechazada(t *testing.T) {
	_, _, err := construirInsert(tabla(t, "bodegas"), repository.Registro{
		"empresa": "01",
		"clave":   "x", // no pertenece a bodegas
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrColumnaDesconocida)
}

func TestConstruirInsert_SinColumnas(t *testing.T) {
	_, _, err := construirInsert(tabla(t, "bodegas"), repository.Registro{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── construirFindAll ──────────────────────────────────────────────────────────

func TestConstruirFindAll_SinFiltros(t *testing.T) {
	query, args := construirFindAll(tabla(t, "cargos"), repository.FiltroLista{})
	assert.Equal(t, `SELECT * FROM "cargos"`, query)
	assert.Empty(t, args)
}

func TestConstruirFindAll_GenericaConBusqueda(t *testing.T) {
	// En tablas genéricas la búsqueda cubre codigo (casteado a texto),
	// nombre y abreviado.
	query, args := construirFindAll(tabla(t, "bodegas"), repository.FiltroLista{
		Empresa:  "01",
		Busqueda: "prin",
	})
	assert.Equal(t,
		`SELECT * FROM "bodegas" WHERE "empresa" = $1 AND (CAST("codigo" AS TEXT) ILIKE $2 OR "nombre" ILIKE $3 OR "abreviado" ILIKE $4)`,
		query)
	assert.Equal(t, []any{"01", "%prin%", "%prin%", "%prin%"}, args)
}

func TestConstruirFindAll_NitsBuscaPorNitYNombre(t *testing.T) {
	query, args := construirFindAll(tabla(t, "nits"), repository.FiltroLista{
		Empresa:  "01",
		Busqueda: "900",
	})
	assert.Equal(t,
		`SELECT * FROM "nits" WHERE "empresa" = $1 AND ("nit" ILIKE $2 OR "nombre" ILIKE $3)`,
		query)
	assert.Equal(t, []any{"01", "%900%", "%900%"}, args)
}

func TestConstruirFindAll_SoloBusqueda(t *testing.T) {
	query, args := construirFindAll(tabla(t, "cargos"), repository.FiltroLista{Busqueda: "ger"})
	assert.Equal(t,
		`SELECT * FROM "cargos" WHERE (CAST("codigo" AS TEXT) ILIKE $1 OR "nombre" ILIKE $2 OR "abreviado" ILIKE $3)`,
		query)
	assert.Len(t, args, 3)
}

// ── construirUpdate ───────────────────────────────────────────────────────────

func TestConstruirUpdate_SoloColumnasPresentes(t *testing.T) {
	clave := repository.ClaveRegistro{Codigo: 7, Empresa: "01"}
	query, args, err := construirUpdate(tabla(t, "bodegas"), clave, repository.Registro{
		"nombre": "Bodega Norte",
	})
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "bodegas" SET "nombre" = $1 WHERE "codigo" = $2 AND "empresa" = $3 RETURNING *`, query)
	assert.Equal(t, []any{"Bodega Norte", 7, "01"}, args)
}

func TestConstruirUpdate_ColumnaDesconocidaRechazada(t *testing.T) {
	clave := repository.ClaveRegistro{Codigo: 7, Empresa: "01"}
	_, _, err := construirUpdate(tabla(t, "bodegas"), clave, repository.Registro{"otra": 1})
	assert.ErrorIs(t, err, domain.ErrColumnaDesconocida)
}

func TestConstruirUpdate_SinColumnas(t *testing.T) {
	clave := repository.ClaveRegistro{Codigo: 7, Empresa: "01"}
	_, _, err := construirUpdate(tabla(t, "bodegas"), clave, repository.Registro{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── normalización de activo ───────────────────────────────────────────────────

func TestNormalizarEscritura_CoercionaActivo(t *testing.T) {
	out := normalizarEscritura(repository.Registro{"nombre": "x", "activo": 1})
	assert.Equal(t, true, out["activo"])
	// El map original no se muta.
	otro := repository.Registro{"activo": "true"}
	_ = normalizarEscritura(otro)
	assert.Equal(t, "true", otro["activo"])
}

func TestNormalizarLectura_CoercionaActivo(t *testing.T) {
	out := normalizarLectura(repository.Registro{"activo": int16(1), "nombre": "x"})
	assert.Equal(t, true, out["activo"])
	out = normalizarLectura(repository.Registro{"activo": 0})
	assert.Equal(t, false, out["activo"])
}
