package insights

import (
	"fmt"

	"github.com/facturadom/factura-rd/internal/domain"
)

// Config agrupa los umbrales de negocio del motor. Son política comercial y
// fiscal, no constantes incidentales: se ajustan por configuración sin tocar
// el algoritmo.
type Config struct {
	// Radar de clientes: días desde la última factura.
	ActiveMaxDays int // hasta aquí el cliente está activo
	AtRiskMaxDays int // hasta aquí está en riesgo; por encima, perdido

	// Morosidad: la factura se considera vencida pasado el período de gracia,
	// y el nivel del cliente se determina por la antigüedad de su deuda más vieja.
	GraceDays          int
	AgingAttentionDays int // hasta aquí nivel normal
	AgingRiskDays      int // hasta aquí nivel atención
	AgingCriticalDays  int // hasta aquí nivel riesgo; por encima, crítico

	// Inventario de NCF.
	LowSequenceThreshold int64 // números restantes que disparan la alerta de escasez
	ExpiryWarningDays    int   // antelación del aviso de vencimiento de la autorización

	// Salud del negocio.
	ConcentrationPct int // % de ingresos en un solo cliente que penaliza la salud

	// Proyección de caja.
	CashHorizonDays int

	// Feed de alertas.
	MaxAlerts           int // tope de alertas mostradas
	MonthEndReminderDay int // día del mes desde el que se recuerdan los reportes fiscales
}

// DefaultConfig devuelve los umbrales de producto.
func DefaultConfig() Config {
	return Config{
		ActiveMaxDays:        30,
		AtRiskMaxDays:        90,
		GraceDays:            30,
		AgingAttentionDays:   30,
		AgingRiskDays:        60,
		AgingCriticalDays:    90,
		LowSequenceThreshold: 20,
		ExpiryWarningDays:    30,
		ConcentrationPct:     50,
		CashHorizonDays:      15,
		MaxAlerts:            6,
		MonthEndReminderDay:  25,
	}
}

// Validate verifica la coherencia estructural de los umbrales. Un Config
// inválido es un error de programación/configuración, no de datos: el motor
// lo rechaza antes de calcular nada.
func (c Config) Validate() error {
	if c.ActiveMaxDays <= 0 || c.AtRiskMaxDays <= c.ActiveMaxDays {
		return fmt.Errorf("%w: ventanas del radar de clientes incoherentes (activo=%d, riesgo=%d)",
			domain.ErrInvalidInput, c.ActiveMaxDays, c.AtRiskMaxDays)
	}
	if c.AgingAttentionDays <= 0 || c.AgingRiskDays <= c.AgingAttentionDays || c.AgingCriticalDays <= c.AgingRiskDays {
		return fmt.Errorf("%w: bandas de morosidad incoherentes (%d/%d/%d)",
			domain.ErrInvalidInput, c.AgingAttentionDays, c.AgingRiskDays, c.AgingCriticalDays)
	}
	if c.GraceDays < 0 {
		return fmt.Errorf("%w: período de gracia negativo", domain.ErrInvalidInput)
	}
	if c.LowSequenceThreshold <= 0 {
		return fmt.Errorf("%w: umbral de NCF bajos debe ser positivo", domain.ErrInvalidInput)
	}
	if c.ExpiryWarningDays < 0 {
		return fmt.Errorf("%w: antelación de vencimiento negativa", domain.ErrInvalidInput)
	}
	if c.ConcentrationPct <= 0 || c.ConcentrationPct > 100 {
		return fmt.Errorf("%w: umbral de concentración fuera de rango: %d", domain.ErrInvalidInput, c.ConcentrationPct)
	}
	if c.CashHorizonDays <= 0 {
		return fmt.Errorf("%w: horizonte de caja debe ser positivo", domain.ErrInvalidInput)
	}
	if c.MaxAlerts <= 0 {
		return fmt.Errorf("%w: tope de alertas debe ser positivo", domain.ErrInvalidInput)
	}
	if c.MonthEndReminderDay < 1 || c.MonthEndReminderDay > 31 {
		return fmt.Errorf("%w: día de recordatorio fuera de rango: %d", domain.ErrInvalidInput, c.MonthEndReminderDay)
	}
	return nil
}
