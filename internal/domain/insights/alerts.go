package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// ComposeAlerts fusiona las señales de todos los componentes en un feed único:
// deduplicado por (tipo, cliente), ordenado por severidad y acotado al tope de
// presentación. Siempre incluye exactamente un mensaje contextual del asistente.
func ComposeAlerts(review SequenceReview, morosity *MorosityRadar, agg *Aggregates, pendingCount int, ref time.Time, cfg Config) []Alert {
	var alerts []Alert

	alerts = append(alerts, review.Alerts...)

	if morosity != nil && morosity.TotalPendiente.IsPositive() {
		severity := SeverityMedium
		if morosity.RiesgoGeneral == MorosityRisk || morosity.RiesgoGeneral == MorosityCritical {
			severity = SeverityHigh
		}
		total := morosity.TotalPendiente
		alerts = append(alerts, Alert{
			Type:     AlertDeudaVencida,
			Severity: severity,
			Message:  fmt.Sprintf("Tienes RD$%s pendientes de cobro entre %d cliente(s)", total.StringFixed(2), len(morosity.Entries)),
			Count:    len(morosity.Entries),
			Amount:   &total,
		})
		for _, e := range morosity.Entries {
			if e.Level != MorosityCritical {
				continue
			}
			pending := e.TotalPending
			alerts = append(alerts, Alert{
				Type:       AlertClienteMoroso,
				Severity:   SeverityHigh,
				Message:    fmt.Sprintf("%s debe RD$%s con %d días de atraso", e.Name, pending.StringFixed(2), e.OldestOverdueDays),
				ClientName: e.Name,
				Amount:     &pending,
			})
		}
	}

	alerts = append(alerts, growthAlerts(agg)...)
	alerts = append(alerts, assistantMessage(review, agg, pendingCount, ref, cfg))

	alerts = dedupeAlerts(alerts)

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.rank() < alerts[j].Severity.rank()
	})

	// Validate garantiza MaxAlerts >= 1: el recorte nunca vacía el feed.
	if len(alerts) > cfg.MaxAlerts {
		alerts = alerts[:cfg.MaxAlerts]
	}

	return alerts
}

// growthAlerts compara los ingresos del mes en curso contra el anterior.
// Sin mes anterior no hay señal: no se inventa crecimiento sobre cero.
func growthAlerts(agg *Aggregates) []Alert {
	if !agg.PreviousPeriodRevenue.IsPositive() {
		return nil
	}
	cur, prev := agg.CurrentPeriodRevenue, agg.PreviousPeriodRevenue
	deltaPct := cur.Sub(prev).Mul(hundred).Div(prev)

	switch {
	case cur.GreaterThan(prev):
		return []Alert{{
			Type:     AlertCrecimiento,
			Severity: SeverityPositive,
			Message:  fmt.Sprintf("Tus ingresos crecieron %s%% respecto al mes pasado. ¡Sigue así!", deltaPct.Round(0)),
			Pct:      int(deltaPct.Round(0).IntPart()),
		}}
	case deltaPct.Neg().GreaterThan(ten):
		return []Alert{{
			Type:     AlertCaidaIngresos,
			Severity: SeverityMedium,
			Message:  fmt.Sprintf("Tus ingresos bajaron %s%% respecto al mes pasado", deltaPct.Neg().Round(0)),
			Pct:      int(deltaPct.Neg().Round(0).IntPart()),
		}}
	}
	return nil
}

// assistantMessage elige el único mensaje contextual del asistente. Las reglas
// son mutuamente excluyentes: solo dispara la primera que aplica.
func assistantMessage(review SequenceReview, agg *Aggregates, pendingCount int, ref time.Time, cfg Config) Alert {
	msg := "Todo en orden. ¡Buen día de trabajo!"

	switch {
	case agg.TodayCount == 0 && len(agg.Clients) > 0:
		msg = "Aún no has emitido facturas hoy. ¿Creamos la primera?"
	case review.Low != nil:
		msg = fmt.Sprintf("Tus NCF tipo %s se están agotando; solicita una nueva secuencia a la DGII", review.Low.Tipo)
	case pendingCount > 0:
		msg = fmt.Sprintf("Tienes %d factura(s) pendientes de cobro; un recordatorio de pago puede ayudar", pendingCount)
	case ref.Day() >= cfg.MonthEndReminderDay:
		msg = "Se acerca el cierre de mes: prepara tus reportes fiscales 606 y 607"
	}

	return Alert{Type: AlertAsistente, Severity: SeverityInfo, Message: msg}
}

// dedupeAlerts conserva la primera alerta de cada par (tipo, cliente).
func dedupeAlerts(alerts []Alert) []Alert {
	seen := make(map[string]bool, len(alerts))
	out := alerts[:0]
	for _, a := range alerts {
		key := a.Type + "|" + a.ClientName
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}
