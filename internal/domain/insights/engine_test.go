package insights_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturadom/factura-rd/internal/domain"
	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/internal/domain/insights"
)

// Escenario A: un cliente, 3 facturas pagadas este mes por 15,000 en total.
func TestAnalyze_EscenarioClienteUnicoAlDia(t *testing.T) {
	invoices := []entity.Invoice{
		factura("101000001", "Comercial Duarte", daysAgo(2), 5000),
		factura("101000001", "Comercial Duarte", daysAgo(6), 5000),
		factura("101000001", "Comercial Duarte", daysAgo(9), 5000),
	}

	report, err := newEngine().Analyze(insights.Input{
		Invoices:      invoices,
		ReferenceDate: refDate,
	})
	require.NoError(t, err)

	require.Len(t, report.ClientRadar, 1)
	entry := report.ClientRadar[0]
	assert.Equal(t, "101000001", entry.RNC)
	assert.Equal(t, insights.StatusActive, entry.Status)
	assert.Equal(t, 100, entry.RevenueSharePct)
	assert.Nil(t, report.MorosityRadar, "sin saldos pendientes no hay radar de morosidad")

	require.NotNil(t, report.Rankings.TopClient)
	assert.Equal(t, "Comercial Duarte", report.Rankings.TopClient.Name)
	assert.True(t, report.Rankings.TopClient.TotalRevenue.Equal(d(15000)))
}

// Escenario D: snapshot vacío. Solo el saludo, proyección cero y score neutral.
func TestAnalyze_EscenarioSinFacturas(t *testing.T) {
	report, err := newEngine().Analyze(insights.Input{ReferenceDate: refDate})
	require.NoError(t, err)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, insights.AlertAsistente, report.Alerts[0].Type)
	assert.True(t, report.Prediction.ProjectedMonthEnd.Equal(decimal.Zero))
	assert.Equal(t, 70, report.BusinessHealth.Score, "score en banda neutral, no 0")
	assert.Empty(t, report.ClientRadar)
	assert.Nil(t, report.PaymentInsights)
}

// Escenario C: cliente con una factura impaga de 95 días.
func TestAnalyze_EscenarioClientePerdidoYCritico(t *testing.T) {
	invoices := []entity.Invoice{
		facturaImpaga("101000001", "Desaparecido SRL", daysAgo(95), 8000),
		factura("00112345678", "Al Día SRL", daysAgo(1), 2000),
	}

	report, err := newEngine().Analyze(insights.Input{
		Invoices:      invoices,
		ReferenceDate: refDate,
	})
	require.NoError(t, err)

	var perdido *insights.RadarEntry
	for i := range report.ClientRadar {
		if report.ClientRadar[i].Name == "Desaparecido SRL" {
			perdido = &report.ClientRadar[i]
		}
	}
	require.NotNil(t, perdido)
	assert.Equal(t, insights.StatusLost, perdido.Status)

	require.NotNil(t, report.MorosityRadar)
	assert.Equal(t, insights.MorosityCritical, report.MorosityRadar.RiesgoGeneral,
		"un solo cliente crítico pone el radar en crítico aunque el resto esté al día")
	assert.Equal(t, 95, report.MorosityRadar.Entries[0].OldestOverdueDays)

	require.NotNil(t, report.Rankings.DroppedClient)
	assert.Equal(t, "Desaparecido SRL", report.Rankings.DroppedClient.Name)
}

// Idempotencia: el mismo snapshot produce un reporte bit a bit idéntico.
func TestAnalyze_Idempotente(t *testing.T) {
	expiry := refDate.AddDate(0, 0, 10)
	seq := secuencia("32", 100, 85)
	seq.ExpiryDate = &expiry

	in := insights.Input{
		Invoices: []entity.Invoice{
			factura("131245676", "A", daysAgo(2), 5000),
			facturaImpaga("00112345678", "B", daysAgo(45), 3000),
			factura("00187654321", "C", refDate.AddDate(0, -1, 0), 9000),
		},
		Sequences:     []entity.NCFSequence{seq},
		PendingCount:  1,
		ReferenceDate: refDate,
	}

	eng := newEngine()
	r1, err1 := eng.Analyze(in)
	r2, err2 := eng.Analyze(in)
	require.NoError(t, err1)
	require.NoError(t, err2)

	j1, err := json.Marshal(r1)
	require.NoError(t, err)
	j2, err := json.Marshal(r2)
	require.NoError(t, err)
	assert.Equal(t, string(j1), string(j2), "el motor es puro: mismo input, mismo output")
}

// Escenario B dentro del reporte completo: la secuencia baja llega al banner.
func TestAnalyze_PromueveSecuenciaBaja(t *testing.T) {
	report, err := newEngine().Analyze(insights.Input{
		Sequences:     []entity.NCFSequence{secuencia("32", 100, 85)},
		ReferenceDate: refDate,
	})
	require.NoError(t, err)

	require.NotNil(t, report.LowSequence)
	assert.Equal(t, "32", report.LowSequence.Tipo)
	assert.Equal(t, int64(15), report.LowSequence.Remaining)
	require.Len(t, report.FiscalAlerts, 1)
	assert.Equal(t, insights.AlertNCFBajo, report.FiscalAlerts[0].Type)
}

func TestAnalyze_NotaDeCalidadPorFechasIlegibles(t *testing.T) {
	rota := factura("131245676", "A", refDate, 1000)
	rota.Date = timeZero()

	report, err := newEngine().Analyze(insights.Input{
		Invoices:      []entity.Invoice{rota},
		ReferenceDate: refDate,
	})
	require.NoError(t, err)

	require.Len(t, report.DataQualityNotes, 1)
	assert.Contains(t, report.DataQualityNotes[0], "fecha ilegible")
}

func TestAnalyze_InsightsDePago(t *testing.T) {
	efectivo := factura("131245676", "A", daysAgo(1), 6000)
	efectivo.PaymentMethod = entity.PaymentEfectivo
	transferencia := factura("00112345678", "B", daysAgo(2), 4000)
	transferencia.PaymentMethod = entity.PaymentTransferencia

	report, err := newEngine().Analyze(insights.Input{
		Invoices:      []entity.Invoice{efectivo, transferencia},
		ReferenceDate: refDate,
	})
	require.NoError(t, err)

	require.NotNil(t, report.PaymentInsights)
	assert.Equal(t, 60, report.PaymentInsights.MethodSharePct[entity.PaymentEfectivo])
	assert.Equal(t, 40, report.PaymentInsights.MethodSharePct[entity.PaymentTransferencia])
	assert.True(t, report.PaymentInsights.TotalBalancePending.Equal(decimal.Zero))
}

func TestNewEngine_ConfiguracionInvalida(t *testing.T) {
	cfg := insights.DefaultConfig()
	cfg.AgingRiskDays = 10 // banda incoherente: riesgo por debajo de atención

	_, err := insights.NewEngine(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la configuración inválida es fatal y tipada")
}

func TestAnalyze_ServicioMasFacturado(t *testing.T) {
	inv := factura("131245676", "A", daysAgo(1), 5000)
	inv.Items = []entity.InvoiceItem{
		{Description: "Mantenimiento Mensual", Subtotal: d(5000)},
	}

	report, err := newEngine().Analyze(insights.Input{
		Invoices:      []entity.Invoice{inv},
		ReferenceDate: refDate,
	})
	require.NoError(t, err)

	require.NotNil(t, report.Rankings.TopService)
	assert.Equal(t, "Mantenimiento Mensual", report.Rankings.TopService.Name)
}
