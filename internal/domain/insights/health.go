package insights

import "fmt"

// Penalizaciones y bandas de la puntuación de salud del negocio.
const (
	baseScore    = 100
	neutralScore = 70 // sin historial no hay evidencia: banda neutral, ni 0 ni 100

	concentrationPenalty = 20
	sequencePenalty      = 25
	growthBonus          = 10

	excellentBand = 80
	goodBand      = 60
	attentionBand = 40
)

var agingPenalties = map[MorosityLevel]int{
	MorosityAttention: 15,
	MorosityRisk:      30,
	MorosityCritical:  50,
}

// ScoreHealth combina concentración de ingresos, morosidad, salud de NCF y
// crecimiento intermensual en una sola puntuación 0–100. Parte de 100 y
// penaliza cada riesgo; el crecimiento suma con tope en 100.
func ScoreHealth(radar []RadarEntry, morosity *MorosityRadar, review SequenceReview, agg *Aggregates, cfg Config) BusinessHealth {
	if len(agg.Clients) == 0 {
		return BusinessHealth{Score: neutralScore, Label: healthLabel(neutralScore)}
	}

	score := baseScore
	var note string

	for _, e := range radar {
		if e.RevenueSharePct > cfg.ConcentrationPct {
			score -= concentrationPenalty
			note = fmt.Sprintf("%s concentra el %d%% de tus ingresos; diversificar reduce el riesgo", e.Name, e.RevenueSharePct)
			break
		}
	}

	if morosity != nil {
		score -= agingPenalties[morosity.RiesgoGeneral]
	}

	if review.HasCritical() {
		score -= sequencePenalty
	}

	if agg.PreviousPeriodRevenue.IsPositive() && agg.CurrentPeriodRevenue.GreaterThan(agg.PreviousPeriodRevenue) {
		score += growthBonus
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return BusinessHealth{
		Score:                 score,
		Label:                 healthLabel(score),
		ConcentrationRiskNote: note,
	}
}

// healthLabel etiqueta presentacional por banda; las bandas sí son contrato.
func healthLabel(score int) string {
	switch {
	case score >= excellentBand:
		return "Excelente"
	case score >= goodBand:
		return "Buena"
	case score >= attentionBand:
		return "Atención"
	default:
		return "Crítica"
	}
}
