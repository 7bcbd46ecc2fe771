package insights

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BuildClientRadar clasifica cada cliente por días sin facturar y calcula su
// participación en los ingresos. La vista por defecto va ordenada por
// ingresos descendentes; las participaciones redondeadas suman 100 ±1.
func BuildClientRadar(agg *Aggregates, cfg Config) []RadarEntry {
	if len(agg.Clients) == 0 {
		return []RadarEntry{}
	}

	entries := make([]RadarEntry, 0, len(agg.Clients))
	for _, c := range agg.Clients {
		entries = append(entries, RadarEntry{
			RNC:                  c.RNC,
			Name:                 c.Name,
			DaysSinceLastInvoice: c.DaysSinceLastInvoice,
			TotalRevenue:         c.TotalRevenue.Round(2),
			RevenueSharePct:      sharePct(c.TotalRevenue, agg.TotalRevenue),
			Status:               clientStatus(c.DaysSinceLastInvoice, cfg),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].TotalRevenue.Equal(entries[j].TotalRevenue) {
			return entries[i].TotalRevenue.GreaterThan(entries[j].TotalRevenue)
		}
		return entries[i].Name < entries[j].Name
	})

	// Solo los clientes materiales (cuartil superior por ingresos) reciben
	// recomendación de contacto; el resto no necesita una.
	cutoff := len(entries) / 4
	if cutoff < 1 {
		cutoff = 1
	}
	for i := range entries {
		e := &entries[i]
		if i >= cutoff || e.Status == StatusActive {
			continue
		}
		switch e.Status {
		case StatusAtRisk:
			e.Recommendation = fmt.Sprintf("Cliente importante sin facturar hace %d días; contáctalo antes de perderlo", e.DaysSinceLastInvoice)
		case StatusLost:
			e.Recommendation = fmt.Sprintf("Representa el %d%% de tus ingresos y lleva %d días sin facturar; intenta recuperarlo", e.RevenueSharePct, e.DaysSinceLastInvoice)
		}
	}

	return entries
}

// clientStatus clasifica por días desde la última factura.
func clientStatus(days int, cfg Config) ClientStatus {
	switch {
	case days <= cfg.ActiveMaxDays:
		return StatusActive
	case days <= cfg.AtRiskMaxDays:
		return StatusAtRisk
	default:
		return StatusLost
	}
}

// sharePct participación en porcentaje entero; 0 si el total es cero.
func sharePct(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(part.Mul(hundred).Div(total).Round(0).IntPart())
}
