package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weimars70/conta-hencker/internal/application/usecase"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
	apphttp "github.com/weimars70/conta-hencker/internal/interfaces/http"
)

// gatewayGrabador registra la última fila que recibió cada operación de
// escritura; devuelve la misma fila para cerrar el ciclo del handler.
type gatewayGrabador struct {
	insertado   repository.Registro
	actualizado repository.Registro
}

var _ repository.TableGateway = (*gatewayGrabador)(nil)

func (g *gatewayGrabador) Insert(_ context.Context, _ string, datos repository.Registro) (repository.Registro, error) {
	g.insertado = datos
	return datos, nil
}

func (g *gatewayGrabador) Update(_ context.Context, _ string, _ repository.ClaveRegistro, datos repository.Registro) (repository.Registro, error) {
	g.actualizado = datos
	return datos, nil
}

func (g *gatewayGrabador) FindAll(context.Context, string, repository.FiltroLista) ([]repository.Registro, error) {
	return nil, nil
}
func (g *gatewayGrabador) FindOne(context.Context, string, repository.ClaveRegistro) (repository.Registro, error) {
	return nil, nil
}
func (g *gatewayGrabador) Remove(context.Context, string, repository.ClaveRegistro) (repository.Registro, error) {
	return nil, nil
}

func capturaApp(gw repository.TableGateway) *fiber.App {
	h := apphttp.NewCapturaHandler(usecase.NewCapturaUseCase(gw))
	app := fiber.New()
	app.Post("/generic-capture", h.Create)
	app.Put("/generic-capture/:codigo", h.Update)
	return app
}

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCapturaCreate_InyectaEmpresaDeLaQuery(t *testing.T) {
	gw := &gatewayGrabador{}
	app := capturaApp(gw)

	resp, err := app.Test(jsonRequest(t, http.MethodPost,
		"/generic-capture?tabla=bodegas&empresa=01",
		`{"codigo": 5, "nombre": "Principal"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, gw.insertado, "la fila debió llegar al gateway")
	assert.Equal(t, "01", gw.insertado["empresa"], "la empresa de la query debe viajar en la fila")
	assert.Equal(t, "Principal", gw.insertado["nombre"])
}

func TestCapturaCreate_EmpresaDeLaQueryMandaSobreElCuerpo(t *testing.T) {
	gw := &gatewayGrabador{}
	app := capturaApp(gw)

	resp, err := app.Test(jsonRequest(t, http.MethodPost,
		"/generic-capture?tabla=bodegas&empresa=01",
		`{"codigo": 5, "nombre": "Principal", "empresa": "99"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "01", gw.insertado["empresa"])
}

func TestCapturaCreate_DescartaTablaDelCuerpo(t *testing.T) {
	gw := &gatewayGrabador{}
	app := capturaApp(gw)

	resp, err := app.Test(jsonRequest(t, http.MethodPost,
		"/generic-capture?tabla=bodegas&empresa=01",
		`{"tabla": "bodegas", "codigo": 5, "nombre": "Principal"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode, "`tabla` en el cuerpo no debe rechazar la fila")
	assert.NotContains(t, gw.insertado, "tabla")
}

func TestCapturaUpdate_DescartaTablaDelCuerpo(t *testing.T) {
	gw := &gatewayGrabador{}
	app := capturaApp(gw)

	resp, err := app.Test(jsonRequest(t, http.MethodPut,
		"/generic-capture/5?tabla=bodegas&empresa=01",
		`{"tabla": "bodegas", "nombre": "Renombrada"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, gw.actualizado)
	assert.NotContains(t, gw.actualizado, "tabla")
	assert.Equal(t, "Renombrada", gw.actualizado["nombre"])
}
