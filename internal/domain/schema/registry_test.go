package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weimars70/conta-hencker/internal/domain/schema"
)

func TestBuscar_TablasPermitidas(t *testing.T) {
	permitidas := []string{
		"bodegas", "cargos", "centro_costos", "fuente_contable",
		"califica_cliente", "tipo_consecutivo", "nits",
	}
	for _, nombre := range permitidas {
		tabla, ok := schema.Buscar(nombre)
		require.True(t, ok, "tabla %s debe estar registrada", nombre)
		assert.Equal(t, nombre, tabla.Nombre)
		assert.NotEmpty(t, tabla.Columnas)
		assert.NotEmpty(t, tabla.Busqueda)
	}
}

// Cualquier nombre fuera de la lista cerrada se rechaza: es la barrera contra
// inyección de identificadores que no pueden parametrizarse en SQL.
func TestBuscar_TablaDesconocida(t *testing.T) {
	for _, nombre := range []string{"usuarios", "empresas", "pg_tables", "bodegas; DROP TABLE nits", ""} {
		_, ok := schema.Buscar(nombre)
		assert.False(t, ok, "tabla %q no debe estar permitida", nombre)
	}
}

func TestNits_BusquedaPorNitYNombre(t *testing.T) {
	tabla, ok := schema.Buscar("nits")
	require.True(t, ok)
	assert.Equal(t, []string{"nit", "nombre"}, tabla.Busqueda)
	assert.False(t, tabla.CodigoComoTexto)
	assert.True(t, tabla.PermiteColumna("nit"))
}

func TestGenericas_BusquedaConCodigoComoTexto(t *testing.T) {
	tabla, ok := schema.Buscar("bodegas")
	require.True(t, ok)
	assert.Equal(t, []string{"codigo", "nombre", "abreviado"}, tabla.Busqueda)
	assert.True(t, tabla.CodigoComoTexto)
}

func TestPermiteColumna(t *testing.T) {
	tabla, ok := schema.Buscar("cargos")
	require.True(t, ok)
	assert.True(t, tabla.PermiteColumna("nombre"))
	assert.False(t, tabla.PermiteColumna("nit"))
	assert.False(t, tabla.PermiteColumna("clave_hash"))
	assert.False(t, tabla.PermiteColumna("nombre; --"))
}
