package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/pkg/rnc"
)

// BuildMorosityRadar agrupa la cartera vencida por cliente. Solo considera
// facturas no anuladas con saldo pendiente; una factura está vencida cuando su
// antigüedad supera el período de gracia. Devuelve nil si no hay cartera
// pendiente (el reporte omite el radar por completo).
func BuildMorosityRadar(invoices []entity.Invoice, ref time.Time, cfg Config) *MorosityRadar {
	idx := make(map[string]int)
	var entries []MorosityEntry

	for _, inv := range invoices {
		outstanding := inv.Outstanding()
		if !outstanding.IsPositive() || inv.Status == entity.InvoiceStatusAnulada {
			continue
		}

		key := clientKey(inv)
		i, ok := idx[key]
		if !ok {
			i = len(entries)
			idx[key] = i
			entries = append(entries, MorosityEntry{
				RNC:  rnc.Normalize(inv.CustomerRNC),
				Name: strings.TrimSpace(inv.CustomerName),
			})
		}
		e := &entries[i]
		e.TotalPending = e.TotalPending.Add(outstanding)

		// Fecha ilegible: antigüedad desconocida, el saldo cuenta pero no se
		// declara vencido por un dato corrupto.
		if inv.Date.IsZero() {
			continue
		}
		age := daysBetween(inv.Date, ref)
		if age > cfg.GraceDays {
			e.OverdueInvoiceCount++
			if age > e.OldestOverdueDays {
				e.OldestOverdueDays = age
			}
		}
	}

	if len(entries) == 0 {
		return nil
	}

	radar := &MorosityRadar{TotalPendiente: decimal.Zero}
	for i := range entries {
		entries[i].Level = morosityLevel(entries[i].OldestOverdueDays, cfg)
		entries[i].TotalPending = entries[i].TotalPending.Round(2)
		radar.TotalPendiente = radar.TotalPendiente.Add(entries[i].TotalPending)
		if entries[i].Level.severityOrder() > radar.RiesgoGeneral.severityOrder() {
			radar.RiesgoGeneral = entries[i].Level
		}
	}
	if radar.RiesgoGeneral == "" {
		radar.RiesgoGeneral = MorosityNormal
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].TotalPending.Equal(entries[j].TotalPending) {
			return entries[i].TotalPending.GreaterThan(entries[j].TotalPending)
		}
		return entries[i].Name < entries[j].Name
	})
	radar.Entries = entries

	return radar
}

// morosityLevel banda de morosidad según la deuda vencida más antigua.
// Más días nunca bajan el nivel (monotónico).
func morosityLevel(oldestOverdueDays int, cfg Config) MorosityLevel {
	switch {
	case oldestOverdueDays <= cfg.AgingAttentionDays:
		return MorosityNormal
	case oldestOverdueDays <= cfg.AgingRiskDays:
		return MorosityAttention
	case oldestOverdueDays <= cfg.AgingCriticalDays:
		return MorosityRisk
	default:
		return MorosityCritical
	}
}
