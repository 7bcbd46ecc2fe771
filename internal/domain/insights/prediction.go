package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// Pesos de cobrabilidad por antigüedad: una factura recién vencida se cobra
// con mucha más probabilidad que una con 90+ días de atraso. Todos los pesos
// son menores que 1 y decrecen con la edad, así la caja proyectada nunca
// supera el saldo pendiente total.
var collectionWeights = []struct {
	maxAgeDays int
	weight     decimal.Decimal
}{
	{30, decimal.NewFromFloat(0.85)},
	{60, decimal.NewFromFloat(0.50)},
	{90, decimal.NewFromFloat(0.25)},
}

var (
	// Facturas dentro del horizonte de caja: prácticamente al día.
	nearTermCollectionWeight = decimal.NewFromFloat(0.95)
	tailCollectionWeight     = decimal.NewFromFloat(0.10)
)

// BuildPrediction extrapola linealmente los ingresos del mes en curso y estima
// la caja cobrable en el horizonte configurado. Sin estacionalidad ni
// suavizado: run-rate puro sobre el snapshot.
func BuildPrediction(agg *Aggregates, invoices []entity.Invoice, ref time.Time, cfg Config) Prediction {
	daysElapsed := ref.Day()
	totalDays := daysInMonth(ref)

	dailyRate := decimal.Zero
	if daysElapsed > 0 {
		dailyRate = agg.CurrentPeriodRevenue.Div(decimal.NewFromInt(int64(daysElapsed)))
	}

	cash := decimal.Zero
	for _, inv := range invoices {
		outstanding := inv.Outstanding()
		if !outstanding.IsPositive() || inv.Status == entity.InvoiceStatusAnulada {
			continue
		}
		age := 0
		if !inv.Date.IsZero() {
			age = daysBetween(inv.Date, ref)
		}
		cash = cash.Add(outstanding.Mul(collectionWeight(age, cfg)))
	}

	return Prediction{
		CurrentRevenue:          agg.CurrentPeriodRevenue.Round(2),
		DailyRate:               dailyRate.Round(2),
		DaysRemainingInPeriod:   totalDays - daysElapsed,
		ProjectedMonthEnd:       dailyRate.Mul(decimal.NewFromInt(int64(totalDays))).Round(2),
		ProjectedCashNext15Days: cash.Round(2),
	}
}

// collectionWeight peso de cobrabilidad para una factura con la antigüedad dada.
func collectionWeight(ageDays int, cfg Config) decimal.Decimal {
	if ageDays <= cfg.CashHorizonDays {
		return nearTermCollectionWeight
	}
	for _, bucket := range collectionWeights {
		if ageDays <= bucket.maxAgeDays {
			return bucket.weight
		}
	}
	return tailCollectionWeight
}

// daysInMonth días del mes de t.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
