package rnc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturadom/factura-rd/pkg/rnc"
)

func TestNormalize_EliminaSeparadores(t *testing.T) {
	assert.Equal(t, "131245676", rnc.Normalize("1-31-24567-6"))
	assert.Equal(t, "131245676", rnc.Normalize("131.245.676"))
	assert.Equal(t, "131245676", rnc.Normalize(" 131245676 "))
	assert.Equal(t, "", rnc.Normalize("sin dígitos"))
}

func TestValidate_RNCValido(t *testing.T) {
	// 1312 4567 con pesos {7,9,8,6,5,4,3,2}: suma 126, 126 % 11 = 5, dígito 11-5 = 6
	assert.NoError(t, rnc.Validate("131245676"))
	assert.NoError(t, rnc.Validate("1-31-24567-6"), "debe aceptar separadores")
}

func TestValidate_RNCDigitoIncorrecto(t *testing.T) {
	err := rnc.Validate("131245670")
	assert.Error(t, err, "un dígito verificador alterado debe rechazarse")
}

func TestValidate_CedulaSoloLongitud(t *testing.T) {
	assert.NoError(t, rnc.Validate("00112345678"), "cédula de 11 dígitos es válida")
}

func TestValidate_LongitudInvalida(t *testing.T) {
	assert.Error(t, rnc.Validate("12345"))
	assert.Error(t, rnc.Validate(""))
}
