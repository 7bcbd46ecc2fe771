package insights_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/internal/domain/insights"
)

func TestBuildPrediction_RunRateLineal(t *testing.T) {
	// refDate es 15 de agosto: 15 días transcurridos de 31.
	invoices := []entity.Invoice{
		factura("131245676", "A", daysAgo(3), 9000),
		factura("131245676", "A", daysAgo(10), 6000),
	}
	agg := insights.Aggregate(invoices, refDate)

	p := insights.BuildPrediction(agg, invoices, refDate, insights.DefaultConfig())

	assert.True(t, p.CurrentRevenue.Equal(d(15000)))
	assert.True(t, p.DailyRate.Equal(d(1000)), "15000 / 15 días = 1000/día, fue %s", p.DailyRate)
	assert.Equal(t, 16, p.DaysRemainingInPeriod)
	assert.True(t, p.ProjectedMonthEnd.Equal(d(31000)), "1000 * 31 días, fue %s", p.ProjectedMonthEnd)
}

func TestBuildPrediction_SnapshotVacio(t *testing.T) {
	agg := insights.Aggregate(nil, refDate)

	p := insights.BuildPrediction(agg, nil, refDate, insights.DefaultConfig())

	assert.True(t, p.DailyRate.Equal(decimal.Zero), "sin ingresos la tasa es 0, nunca NaN/Inf")
	assert.True(t, p.ProjectedMonthEnd.Equal(decimal.Zero))
	assert.True(t, p.ProjectedCashNext15Days.Equal(decimal.Zero))
}

func TestBuildPrediction_CajaAcotadaPorSaldoPendiente(t *testing.T) {
	invoices := []entity.Invoice{
		facturaImpaga("131245676", "A", daysAgo(5), 10000),
		facturaImpaga("00112345678", "B", daysAgo(45), 8000),
		facturaImpaga("00187654321", "C", daysAgo(120), 5000),
	}
	agg := insights.Aggregate(invoices, refDate)

	p := insights.BuildPrediction(agg, invoices, refDate, insights.DefaultConfig())

	totalPendiente := d(23000)
	assert.True(t, p.ProjectedCashNext15Days.LessThanOrEqual(totalPendiente),
		"la caja proyectada (%s) nunca supera el saldo pendiente (%s)", p.ProjectedCashNext15Days, totalPendiente)
	assert.True(t, p.ProjectedCashNext15Days.IsPositive())
}

func TestBuildPrediction_PesoDecreceConLaEdad(t *testing.T) {
	cfg := insights.DefaultConfig()
	edades := []int{5, 40, 75, 120}
	previo := decimal.NewFromInt(1 << 30)
	for _, edad := range edades {
		invoices := []entity.Invoice{facturaImpaga("131245676", "X", daysAgo(edad), 10000)}
		agg := insights.Aggregate(invoices, refDate)
		p := insights.BuildPrediction(agg, invoices, refDate, cfg)
		require.True(t, p.ProjectedCashNext15Days.LessThanOrEqual(previo),
			"una deuda más vieja no puede proyectar más caja (edad=%d)", edad)
		previo = p.ProjectedCashNext15Days
	}
}

func TestBuildPrediction_AnuladasNoSuman(t *testing.T) {
	anulada := facturaImpaga("131245676", "X", daysAgo(5), 10000)
	anulada.Status = entity.InvoiceStatusAnulada

	invoices := []entity.Invoice{anulada}
	agg := insights.Aggregate(invoices, refDate)
	p := insights.BuildPrediction(agg, invoices, refDate, insights.DefaultConfig())

	assert.True(t, p.ProjectedCashNext15Days.Equal(decimal.Zero))
}
