package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// Input snapshot inmutable que el llamador entrega en cada invocación. El
// motor nunca escribe sobre él: cualquier I/O (carga de facturas y secuencias)
// ocurre antes, en la capa de aplicación.
type Input struct {
	Invoices      []entity.Invoice
	Sequences     []entity.NCFSequence
	PendingCount  int // conteo precalculado de facturas impagas (atajo para el asistente)
	ReferenceDate time.Time
}

// Engine orquesta los componentes del motor con umbrales fijos por instancia.
// Es puro y sin estado compartido: invocaciones concurrentes para distintas
// empresas son seguras sin sincronización.
type Engine struct {
	cfg Config
}

// NewEngine construye el motor validando los umbrales.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Analyze ejecuta la transformación completa snapshot → reporte. Nunca falla
// por forma de los datos (degrada con valores vacíos y notas de calidad);
// el único error posible es una configuración estructuralmente inválida.
func (e *Engine) Analyze(in Input) (*Report, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}

	ref := in.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}

	agg := Aggregate(in.Invoices, ref)
	review := ReviewSequences(in.Sequences, ref, e.cfg)
	radar := BuildClientRadar(agg, e.cfg)
	morosity := BuildMorosityRadar(in.Invoices, ref, e.cfg)
	prediction := BuildPrediction(agg, in.Invoices, ref, e.cfg)
	health := ScoreHealth(radar, morosity, review, agg, e.cfg)
	alerts := ComposeAlerts(review, morosity, agg, in.PendingCount, ref, e.cfg)

	report := &Report{
		Alerts:          alerts,
		ClientRadar:     radar,
		Rankings:        buildRankings(radar, agg),
		FiscalAlerts:    review.Alerts,
		LowSequence:     review.Low,
		Prediction:      prediction,
		BusinessHealth:  health,
		PaymentInsights: buildPaymentInsights(in.Invoices),
		MorosityRadar:   morosity,
	}
	if review.Alerts == nil {
		report.FiscalAlerts = []Alert{}
	}
	if agg.UnparsableDates > 0 {
		report.DataQualityNotes = append(report.DataQualityNotes,
			fmt.Sprintf("%d factura(s) con fecha ilegible: se excluyen de los totales por mes pero cuentan en los totales por cliente", agg.UnparsableDates))
	}

	return report, nil
}

// buildRankings destaca el mejor cliente, el cliente perdido de mayor valor y
// el servicio más facturado.
func buildRankings(radar []RadarEntry, agg *Aggregates) Rankings {
	var r Rankings

	if len(radar) > 0 {
		r.TopClient = &RankedClient{
			RNC:          radar[0].RNC,
			Name:         radar[0].Name,
			TotalRevenue: radar[0].TotalRevenue,
		}
	}
	for _, e := range radar {
		if e.Status == StatusLost {
			r.DroppedClient = &RankedClient{RNC: e.RNC, Name: e.Name, TotalRevenue: e.TotalRevenue}
			break // el radar va por ingresos descendentes: el primero perdido es el de mayor valor
		}
	}
	if len(agg.Services) > 0 {
		top := agg.Services[0]
		r.TopService = &RankedService{Name: top.Name, Count: top.Count, Revenue: top.Revenue.Round(2)}
	}

	return r
}

// buildPaymentInsights reparte los ingresos por método de pago en porcentajes
// enteros y suma el saldo pendiente global. Nil si el snapshot está vacío.
func buildPaymentInsights(invoices []entity.Invoice) *PaymentInsights {
	if len(invoices) == 0 {
		return nil
	}

	byMethod := make(map[string]decimal.Decimal)
	total := decimal.Zero
	pending := decimal.Zero

	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusAnulada {
			continue
		}
		method := inv.PaymentMethod
		if method == "" {
			method = entity.PaymentOtro
		}
		byMethod[method] = byMethod[method].Add(inv.Total)
		total = total.Add(inv.Total)
		pending = pending.Add(inv.Outstanding())
	}

	shares := make(map[string]int, len(byMethod))
	methods := make([]string, 0, len(byMethod))
	for m := range byMethod {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	for _, m := range methods {
		shares[m] = sharePct(byMethod[m], total)
	}

	return &PaymentInsights{
		MethodSharePct:      shares,
		TotalBalancePending: pending.Round(2),
	}
}
