package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weimars70/conta-hencker/internal/domain"
)

// El esquema heredado guarda activo como boolean en unas tablas y como
// integer en otras, y algunos clientes viejos mandan "true" como texto.
// La normalización es el único punto donde se resuelve esa ambigüedad.
func TestNormalizeActivo_ValoresVerdaderos(t *testing.T) {
	casos := []any{true, 1, int16(1), int32(1), int64(1), float64(1), "true", "TRUE", "True"}
	for _, v := range casos {
		assert.True(t, domain.NormalizeActivo(v), "valor %#v debe normalizar a true", v)
	}
}

func TestNormalizeActivo_ValoresFalsos(t *testing.T) {
	casos := []any{false, 0, 2, int64(0), float64(0), "false", "1", "si", "", nil, 1.5, []string{"true"}}
	for _, v := range casos {
		assert.False(t, domain.NormalizeActivo(v), "valor %#v debe normalizar a false", v)
	}
}
