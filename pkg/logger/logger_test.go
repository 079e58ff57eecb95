package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weimars70/conta-hencker/pkg/logger"
)

func TestNew_CamposFijosDeServicioYBackend(t *testing.T) {
	l := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "conta-hencker",
		Backend: "postgres",
	})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("ping")

	salida := buf.String()
	assert.Contains(t, salida, `"service":"conta-hencker"`)
	assert.Contains(t, salida, `"backend":"postgres"`)
}

func TestNew_SinServicioNoEmiteElCampo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("ping")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestNew_NivelFiltraDebug(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Debug().Msg("invisible")
	zl.Warn().Msg("visible")

	assert.NotContains(t, buf.String(), "invisible")
	assert.Contains(t, buf.String(), "visible")
}
