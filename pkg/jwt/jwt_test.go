package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weimars70/conta-hencker/pkg/jwt"
)

const secretoTest = "secreto-de-prueba-con-largo-suficiente"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(secretoTest, 42, "julian@acme.co", "Julián Gómez", "conta-hencker", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(secretoTest, token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject, "sub es el id numérico como texto")
	assert.Equal(t, "julian@acme.co", claims.Email)
	assert.Equal(t, "Julián Gómez", claims.Nombre)
	assert.Equal(t, "conta-hencker", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Con expiración negativa el token nace vencido.
	token, err := jwt.Generate(secretoTest, 42, "julian@acme.co", "Julián", "conta-hencker", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secretoTest, token)
	assert.Error(t, err)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	token, err := jwt.Generate(secretoTest, 42, "julian@acme.co", "Julián", "conta-hencker", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto-distinto-al-de-firma", token)
	assert.Error(t, err)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := jwt.Parse(secretoTest, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := jwt.Generate("", 42, "julian@acme.co", "Julián", "conta-hencker", 60)
	assert.Error(t, err)

	_, err = jwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
