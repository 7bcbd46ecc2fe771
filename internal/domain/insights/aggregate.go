// Package insights implementa el Motor de Inteligencia Fiscal: una
// transformación pura y determinista (facturas, secuencias de NCF, fecha de
// referencia) → reporte de inteligencia de negocio. No persiste nada, no hace
// I/O y recalcula todo en cada invocación; llamadas con el mismo snapshot
// producen exactamente el mismo reporte.
package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/pkg/rnc"
)

// ClientAggregate totales por cliente derivados del historial de facturas.
type ClientAggregate struct {
	Key                  string // clave de agrupación: RNC normalizado o nombre normalizado
	RNC                  string
	Name                 string
	InvoiceCount         int
	TotalRevenue         decimal.Decimal
	LastInvoiceDate      time.Time // cero si ninguna factura del cliente tiene fecha legible
	DaysSinceLastInvoice int
}

// ServiceStat popularidad de un servicio según las líneas de factura.
type ServiceStat struct {
	Name    string
	Count   int
	Revenue decimal.Decimal
}

// Aggregates salida del agregador: totales por cliente, por período y por
// servicio, más los contadores que consumen los componentes superiores.
type Aggregates struct {
	Clients []ClientAggregate // en orden de primera aparición en el snapshot

	TotalRevenue          decimal.Decimal
	CurrentPeriodRevenue  decimal.Decimal            // mes de la fecha de referencia
	PreviousPeriodRevenue decimal.Decimal            // mes inmediatamente anterior
	PeriodRevenue         map[string]decimal.Decimal // clave "2006-01"

	TodayCount int // facturas con fecha igual al día de referencia

	Services []ServiceStat // ordenados por popularidad descendente

	UnparsableDates int // facturas con fecha ilegible (excluidas de los períodos)
}

// Aggregate agrupa el snapshot de facturas por cliente, período calendario y
// servicio. Nunca descarta un registro: una factura con fecha ilegible queda
// fuera de los agregados por período pero cuenta en los totales del cliente.
func Aggregate(invoices []entity.Invoice, ref time.Time) *Aggregates {
	agg := &Aggregates{
		PeriodRevenue: make(map[string]decimal.Decimal),
	}

	currentKey := periodKey(ref)
	previousKey := periodKey(time.Date(ref.Year(), ref.Month()-1, 1, 0, 0, 0, 0, time.UTC))

	clientIdx := make(map[string]int)
	serviceIdx := make(map[string]int)
	serviceNames := make(map[string]string) // clave normalizada → nombre mostrado

	for _, inv := range invoices {
		key := clientKey(inv)

		i, ok := clientIdx[key]
		if !ok {
			i = len(agg.Clients)
			clientIdx[key] = i
			agg.Clients = append(agg.Clients, ClientAggregate{
				Key:  key,
				RNC:  rnc.Normalize(inv.CustomerRNC),
				Name: strings.TrimSpace(inv.CustomerName),
			})
		}
		c := &agg.Clients[i]
		c.InvoiceCount++
		c.TotalRevenue = c.TotalRevenue.Add(inv.Total)
		agg.TotalRevenue = agg.TotalRevenue.Add(inv.Total)

		if inv.Date.IsZero() {
			agg.UnparsableDates++
		} else {
			pk := periodKey(inv.Date)
			agg.PeriodRevenue[pk] = agg.PeriodRevenue[pk].Add(inv.Total)
			if pk == currentKey {
				agg.CurrentPeriodRevenue = agg.CurrentPeriodRevenue.Add(inv.Total)
			}
			if pk == previousKey {
				agg.PreviousPeriodRevenue = agg.PreviousPeriodRevenue.Add(inv.Total)
			}
			if sameDay(inv.Date, ref) {
				agg.TodayCount++
			}
			if inv.Date.After(c.LastInvoiceDate) {
				c.LastInvoiceDate = inv.Date
			}
		}

		for _, item := range inv.Items {
			name := strings.TrimSpace(item.Description)
			if name == "" {
				continue
			}
			sk := normalizeText(name)
			j, ok := serviceIdx[sk]
			if !ok {
				j = len(agg.Services)
				serviceIdx[sk] = j
				serviceNames[sk] = name
				agg.Services = append(agg.Services, ServiceStat{Name: name})
			}
			s := &agg.Services[j]
			s.Count++
			s.Revenue = s.Revenue.Add(item.Subtotal)
		}
	}

	for i := range agg.Clients {
		c := &agg.Clients[i]
		if !c.LastInvoiceDate.IsZero() {
			c.DaysSinceLastInvoice = daysBetween(c.LastInvoiceDate, ref)
		}
		// Fecha desconocida en todo el historial: se asume reciente para no
		// marcar "perdido" a un cliente por un dato ilegible.
	}

	sort.SliceStable(agg.Services, func(i, j int) bool {
		a, b := agg.Services[i], agg.Services[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if !a.Revenue.Equal(b.Revenue) {
			return a.Revenue.GreaterThan(b.Revenue)
		}
		return a.Name < b.Name
	})

	return agg
}

// clientKey determina la clave de agrupación: RNC normalizado cuando existe,
// nombre normalizado como respaldo.
func clientKey(inv entity.Invoice) string {
	if id := rnc.Normalize(inv.CustomerRNC); id != "" {
		return id
	}
	return "nombre:" + normalizeText(inv.CustomerName)
}

// normalizeText pasa a minúsculas, quita tildes comunes y colapsa espacios,
// para que "Consultoría  Contable" y "consultoria contable" agrupen juntos.
func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	)
	s = replacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// periodKey clave calendario año-mes, ej: "2026-08".
func periodKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// daysBetween días calendario de from a to; nunca negativo (una fecha futura
// no cuenta como atraso).
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	d := int(t.Sub(f).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
