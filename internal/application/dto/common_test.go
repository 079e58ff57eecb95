package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weimars70/conta-hencker/internal/application/dto"
)

func enteros(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginar_PrimeraPagina(t *testing.T) {
	p := dto.Paginar(enteros(25), dto.PageRequest{Page: 1, Limit: 10})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, p.Data)
	assert.Equal(t, 25, p.Total, "Total describe el conjunto completo")
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestPaginar_UltimaPaginaParcial(t *testing.T) {
	p := dto.Paginar(enteros(25), dto.PageRequest{Page: 3, Limit: 10})

	assert.Equal(t, []int{21, 22, 23, 24, 25}, p.Data)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)
}

func TestPaginar_PaginaMasAllaDelFinal(t *testing.T) {
	p := dto.Paginar(enteros(5), dto.PageRequest{Page: 9, Limit: 10})

	assert.Empty(t, p.Data)
	assert.Equal(t, 5, p.Total, "los totales no cambian aunque la página esté vacía")
	assert.Equal(t, 1, p.TotalPages)
}

func TestPaginar_ValoresPorDefecto(t *testing.T) {
	// Page/Limit en cero caen a 1 y 10.
	p := dto.Paginar(enteros(30), dto.PageRequest{})

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Len(t, p.Data, 10)
}

func TestPaginar_ConjuntoVacio(t *testing.T) {
	p := dto.Paginar([]int{}, dto.PageRequest{Page: 1, Limit: 10})

	assert.Empty(t, p.Data)
	assert.Zero(t, p.Total)
	assert.Zero(t, p.TotalPages)
}

func TestPaginar_ConcatenarPaginasReconstruyeElConjunto(t *testing.T) {
	items := enteros(23)
	var junto []int
	for page := 1; page <= 5; page++ {
		p := dto.Paginar(items, dto.PageRequest{Page: page, Limit: 5})
		junto = append(junto, p.Data...)
	}
	require.Equal(t, items, junto, "las páginas no deben solaparse ni perder elementos")
}
