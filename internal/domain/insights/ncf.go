package insights

import (
	"fmt"
	"time"

	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// SequenceReview resultado del monitor de salud del inventario de NCF.
// Low es la primera secuencia baja o agotada en el orden del snapshot: es la
// única que el dashboard promueve al banner de "comprobantes por agotarse";
// el resto de las que califican quedan en Alerts.
type SequenceReview struct {
	Summaries []SequenceSummary
	Alerts    []Alert
	Low       *SequenceSummary
}

// HasCritical indica si alguna secuencia activa está agotada.
func (r SequenceReview) HasCritical() bool {
	for _, s := range r.Summaries {
		if s.Health == SequenceCritical {
			return true
		}
	}
	return false
}

// ReviewSequences evalúa cada secuencia activa de forma independiente:
// números restantes contra el umbral de escasez, y vencimiento de la
// autorización contra la ventana de aviso. Las inactivas se ignoran.
func ReviewSequences(seqs []entity.NCFSequence, ref time.Time, cfg Config) SequenceReview {
	var review SequenceReview

	for _, seq := range seqs {
		if !seq.IsActive {
			continue
		}

		summary := SequenceSummary{
			Tipo:       seq.Tipo,
			Prefix:     seq.Prefix,
			Remaining:  seq.Remaining(),
			Health:     SequenceHealthy,
			ExpiryDate: seq.ExpiryDate,
		}

		switch {
		case summary.Remaining == 0:
			summary.Health = SequenceCritical
			review.Alerts = append(review.Alerts, Alert{
				Type:     AlertNCFAgotado,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("Los NCF tipo %s se agotaron: no es posible emitir más comprobantes de este tipo", seq.Tipo),
			})
		case summary.Remaining < cfg.LowSequenceThreshold:
			summary.Health = SequenceLow
			review.Alerts = append(review.Alerts, Alert{
				Type:     AlertNCFBajo,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("Quedan %d NCF tipo %s: solicita una nueva secuencia a la DGII", summary.Remaining, seq.Tipo),
				Count:    int(summary.Remaining),
			})
		}

		// El aviso de vencimiento es independiente de los números restantes.
		if seq.ExpiresWithin(ref, cfg.ExpiryWarningDays) {
			msg := fmt.Sprintf("La autorización de NCF tipo %s vence el %s", seq.Tipo, seq.ExpiryDate.Format("02/01/2006"))
			if seq.IsExpired(ref) {
				msg = fmt.Sprintf("La autorización de NCF tipo %s venció el %s: renueva antes de seguir facturando", seq.Tipo, seq.ExpiryDate.Format("02/01/2006"))
			}
			review.Alerts = append(review.Alerts, Alert{
				Type:     AlertNCFVencimiento,
				Severity: SeverityMedium,
				Message:  msg,
			})
		}

		if review.Low == nil && summary.Health != SequenceHealthy {
			low := summary
			review.Low = &low
		}
		review.Summaries = append(review.Summaries, summary)
	}

	return review
}
