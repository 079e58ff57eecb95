package supabase

import (
	"errors"
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

// ── coincideBusqueda ──────────────────────────────────────────────────────────
// La búsqueda en memoria debe reproducir el OR de ILIKEs del backend directo.

func TestCoincideBusqueda_NombreParcialInsensible(t *testing.T) {
	fila := repository.Registro{"codigo": float64(5), "nombre": "Bodega Principal", "abreviado": "BP"}

	assert.True(t, coincideBusqueda(tabla(t, "bodegas"), fila, "prin"))
	assert.True(t, coincideBusqueda(tabla(t, "bodegas"), fila, "PRINCIPAL"))
	assert.False(t, coincideBusqueda(tabla(t, "bodegas"), fila, "norte"))
}

func TestCoincideBusqueda_CodigoComoTexto(t *testing.T) {
	// PostgREST entrega codigo como float64; debe compararse como texto
	// igual que el CAST del backend directo.
	fila := repository.Registro{"codigo": float64(105), "nombre": "Otra", "abreviado": ""}

	assert.True(t, coincideBusqueda(tabla(t, "bodegas"), fila, "105"))
	assert.True(t, coincideBusqueda(tabla(t, "bodegas"), fila, "05"))
	assert.False(t, coincideBusqueda(tabla(t, "bodegas"), fila, "204"))
}

func TestCoincideBusqueda_NitsBuscaPorNitYNombre(t *testing.T) {
	fila := repository.Registro{
		"codigo": float64(1), "nit": "900123456", "nombre": "Acme S.A.S.", "abreviado": "AC",
	}
	nits := tabla(t, "nits")

	assert.True(t, coincideBusqueda(nits, fila, "900123"))
	assert.True(t, coincideBusqueda(nits, fila, "acme"))
	// En nits el código y el abreviado no son columnas de búsqueda.
	assert.False(t, coincideBusqueda(nits, fila, "AC"))
}

// ── validación y normalización ────────────────────────────────────────────────

func TestValidarColumnas_RechazaDesconocida(t *testing.T) {
	err := validarColumnas(tabla(t, "cargos"), repository.Registro{
		"nombre": "Gerente",
		"sueldo": 100,
	})
	assert.ErrorIs(t, err, domain.ErrColumnaDesconocida)
}

func TestNormalizarEscritura_NoMutaElOriginal(t *testing.T) {
	datos := repository.Registro{"nombre": "x", "activo": float64(1)}
	out := normalizarEscritura(datos)

	assert.Equal(t, true, out["activo"])
	assert.Equal(t, float64(1), datos["activo"])
}

// ── clasificación de errores ──────────────────────────────────────────────────

func TestClasificar_DuplicadoPostgREST(t *testing.T) {
	err := clasificar("insert", "bodegas", errors.New(`duplicate key value violates unique constraint "bodegas_pkey"`))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	err = clasificar("insert", "bodegas", errors.New(`(23505) conflicto`))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestClasificar_ErrorGenericoConserveContexto(t *testing.T) {
	causa := errors.New("timeout")
	err := clasificar("findAll", "nits", causa)

	assert.ErrorIs(t, err, causa)
	assert.Contains(t, err.Error(), "findAll nits")
}
