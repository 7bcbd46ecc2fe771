package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaininsights "github.com/facturadom/factura-rd/internal/domain/insights"
	"github.com/facturadom/factura-rd/pkg/config"
)

func TestInsightsConfig_SinOverridesUsaDefaults(t *testing.T) {
	cfg := insightsConfig(config.InsightsConfig{})

	assert.Equal(t, domaininsights.DefaultConfig(), cfg,
		"sin variables de entorno el motor debe correr con los umbrales de producto")
	require.NoError(t, cfg.Validate())
}

func TestInsightsConfig_AplicaOverridesDeEntorno(t *testing.T) {
	cfg := insightsConfig(config.InsightsConfig{
		LowSequenceThreshold: 50,
		ExpiryWarningDays:    15,
		GraceDays:            45,
		ConcentrationPct:     60,
		MaxAlerts:            3,
	})

	assert.Equal(t, int64(50), cfg.LowSequenceThreshold, "umbral de NCF bajos del entorno")
	assert.Equal(t, 15, cfg.ExpiryWarningDays, "antelación de vencimiento del entorno")
	assert.Equal(t, 45, cfg.GraceDays, "período de gracia del entorno")
	assert.Equal(t, 60, cfg.ConcentrationPct, "umbral de concentración del entorno")
	assert.Equal(t, 3, cfg.MaxAlerts, "tope de alertas del entorno")

	// Los umbrales sin override conservan el default.
	def := domaininsights.DefaultConfig()
	assert.Equal(t, def.ActiveMaxDays, cfg.ActiveMaxDays)
	assert.Equal(t, def.CashHorizonDays, cfg.CashHorizonDays)
	require.NoError(t, cfg.Validate())
}
