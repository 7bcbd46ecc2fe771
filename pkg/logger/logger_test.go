package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturadom/factura-rd/pkg/logger"
)

func TestNew_AnotaElServicioEnCadaEvento(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "factura-rd"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.Contains(t, buf.String(), `"service":"factura-rd"`,
		"cada línea debe identificar el servicio que la emitió")
}

func TestNew_SinServicioNoAgregaElCampo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestNew_FiltraPorNivel(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "error"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("suprimido")
	zl.Error().Msg("visible")

	assert.NotContains(t, buf.String(), "suprimido")
	assert.Contains(t, buf.String(), "visible")
}
