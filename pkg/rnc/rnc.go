// Package rnc valida y normaliza identificadores tributarios dominicanos:
// RNC (Registro Nacional del Contribuyente, 9 dígitos) y cédula (11 dígitos).
package rnc

import (
	"fmt"
	"strings"
	"unicode"
)

// pesos para el dígito verificador del RNC según el algoritmo módulo 11 de la DGII.
// Se aplican a los 8 primeros dígitos, de izquierda a derecha.
var rncWeights = [8]int{7, 9, 8, 6, 5, 4, 3, 2}

// Normalize elimina puntos, guiones y espacios del identificador.
// "1-31-00000-1" y "131000001" normalizan al mismo valor.
func Normalize(taxID string) string {
	var b strings.Builder
	for _, r := range taxID {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate verifica que el identificador sea un RNC de 9 dígitos con dígito
// verificador correcto, o una cédula de 11 dígitos. Acepta separadores.
func Validate(taxID string) error {
	digits := Normalize(taxID)
	switch len(digits) {
	case 9:
		return validateRNC(digits)
	case 11:
		return nil // cédula: solo se valida longitud
	default:
		return fmt.Errorf("rnc: identificador debe tener 9 dígitos (RNC) u 11 (cédula), se encontraron %d", len(digits))
	}
}

// validateRNC aplica el módulo 11 de la DGII sobre los 8 primeros dígitos.
func validateRNC(digits string) error {
	var sum int
	for i := 0; i < 8; i++ {
		sum += int(digits[i]-'0') * rncWeights[i]
	}
	remainder := sum % 11
	var expected byte
	switch remainder {
	case 0:
		expected = '2'
	case 1:
		expected = '1'
	default:
		expected = byte('0' + (11 - remainder))
	}
	if digits[8] != expected {
		return fmt.Errorf("rnc: dígito verificador inválido: esperado %c, recibido %c", expected, digits[8])
	}
	return nil
}
