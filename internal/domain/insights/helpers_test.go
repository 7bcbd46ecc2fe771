package insights_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/internal/domain/insights"
)

// Fecha de referencia fija para que todos los tests sean deterministas:
// sábado 15 de agosto de 2026 (día < 25, no dispara el recordatorio de cierre).
var refDate = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

// daysAgo fecha n días antes de la referencia.
func daysAgo(n int) time.Time {
	return refDate.AddDate(0, 0, -n)
}

// timeZero fecha cero: representa una fecha ilegible en el origen.
func timeZero() time.Time {
	return time.Time{}
}

// d atajo para montos.
func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// factura construye una factura pagada con los campos mínimos del motor.
func factura(rnc, name string, date time.Time, total float64) entity.Invoice {
	return entity.Invoice{
		ID:           "inv-" + rnc + date.Format("20060102"),
		CustomerRNC:  rnc,
		CustomerName: name,
		Date:         date,
		Total:        d(total),
		Status:       entity.InvoiceStatusPagada,
	}
}

// facturaImpaga factura pendiente de pago por el total.
func facturaImpaga(rnc, name string, date time.Time, total float64) entity.Invoice {
	inv := factura(rnc, name, date, total)
	inv.Status = entity.InvoiceStatusPendiente
	return inv
}

// secuencia NCF activa del tipo dado.
func secuencia(tipo string, final, current int64) entity.NCFSequence {
	return entity.NCFSequence{
		ID:           "seq-" + tipo,
		Tipo:         tipo,
		Prefix:       "B" + tipo,
		FinalNumber:  final,
		CurrentValue: current,
		IsActive:     true,
	}
}

func newEngine() *insights.Engine {
	eng, err := insights.NewEngine(insights.DefaultConfig())
	if err != nil {
		panic(err)
	}
	return eng
}
