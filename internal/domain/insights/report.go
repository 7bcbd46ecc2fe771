package insights

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severity severidad de una alerta del feed.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityPositive Severity = "positive"
)

// rank orden de presentación: high > medium > info; las positivas cierran el feed.
func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// Tipos de alerta que produce el motor.
const (
	AlertNCFBajo        = "ncf_bajo"
	AlertNCFAgotado     = "ncf_agotado"
	AlertNCFVencimiento = "ncf_vencimiento"
	AlertDeudaVencida   = "deuda_vencida"
	AlertClienteMoroso  = "cliente_moroso"
	AlertCrecimiento    = "crecimiento"
	AlertCaidaIngresos  = "caida_ingresos"
	AlertAsistente      = "asistente"
)

// Alert señal accionable del feed del dashboard.
type Alert struct {
	Type       string           `json:"type"`
	Severity   Severity         `json:"severity"`
	Message    string           `json:"message"`
	ClientName string           `json:"client_name,omitempty"`
	Count      int              `json:"count,omitempty"`
	Pct        int              `json:"pct,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

// ClientStatus estado de actividad de un cliente en el radar.
type ClientStatus string

const (
	StatusActive ClientStatus = "active"
	StatusAtRisk ClientStatus = "at_risk"
	StatusLost   ClientStatus = "lost"
)

// RadarEntry posición de un cliente en el radar de riesgo.
type RadarEntry struct {
	RNC                  string          `json:"rnc"`
	Name                 string          `json:"name"`
	DaysSinceLastInvoice int             `json:"days_since_last_invoice"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	RevenueSharePct      int             `json:"revenue_share_pct"`
	Status               ClientStatus    `json:"status"`
	Recommendation       string          `json:"recommendation,omitempty"`
}

// MorosityLevel nivel de morosidad de un cliente o del radar completo.
type MorosityLevel string

const (
	MorosityNormal    MorosityLevel = "normal"
	MorosityAttention MorosityLevel = "attention"
	MorosityRisk      MorosityLevel = "risk"
	MorosityCritical  MorosityLevel = "critical"
)

// severityOrder para tomar el máximo nivel entre clientes.
func (l MorosityLevel) severityOrder() int {
	switch l {
	case MorosityCritical:
		return 3
	case MorosityRisk:
		return 2
	case MorosityAttention:
		return 1
	default:
		return 0
	}
}

// MorosityEntry deuda vencida de un cliente.
type MorosityEntry struct {
	RNC                 string          `json:"rnc"`
	Name                string          `json:"name"`
	TotalPending        decimal.Decimal `json:"total_pending"`
	OverdueInvoiceCount int             `json:"overdue_invoice_count"`
	OldestOverdueDays   int             `json:"oldest_overdue_days"`
	Level               MorosityLevel   `json:"level"`
}

// MorosityRadar cartera vencida agregada. El riesgo general es el MÁXIMO nivel
// presente: un solo cliente crítico pone el radar en crítico, sin diluirse
// entre clientes sanos.
type MorosityRadar struct {
	Entries        []MorosityEntry `json:"entries"`
	RiesgoGeneral  MorosityLevel   `json:"riesgo_general"`
	TotalPendiente decimal.Decimal `json:"total_pendiente"`
}

// SequenceHealth estado de un inventario de NCF.
type SequenceHealth string

const (
	SequenceHealthy  SequenceHealth = "healthy"
	SequenceLow      SequenceHealth = "low"
	SequenceCritical SequenceHealth = "critical"
)

// SequenceSummary resumen de salud de una secuencia de NCF.
type SequenceSummary struct {
	Tipo       string         `json:"tipo"`
	Prefix     string         `json:"prefix,omitempty"`
	Remaining  int64          `json:"remaining"`
	Health     SequenceHealth `json:"health"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
}

// Prediction proyección lineal de cierre de mes y caja cobrable a corto plazo.
type Prediction struct {
	CurrentRevenue          decimal.Decimal `json:"current_revenue"`
	DailyRate               decimal.Decimal `json:"daily_rate"`
	DaysRemainingInPeriod   int             `json:"days_remaining_in_period"`
	ProjectedMonthEnd       decimal.Decimal `json:"projected_month_end"`
	ProjectedCashNext15Days decimal.Decimal `json:"projected_cash_next_15_days"`
}

// BusinessHealth puntuación global del negocio (0–100) con etiqueta por banda.
type BusinessHealth struct {
	Score                 int    `json:"score"`
	Label                 string `json:"label"`
	ConcentrationRiskNote string `json:"concentration_risk_note,omitempty"`
}

// PaymentInsights distribución de ingresos por método de pago y saldo total pendiente.
type PaymentInsights struct {
	MethodSharePct      map[string]int  `json:"method_share_pct"`
	TotalBalancePending decimal.Decimal `json:"total_balance_pending"`
}

// RankedClient cliente destacado en los rankings del dashboard.
type RankedClient struct {
	RNC          string          `json:"rnc"`
	Name         string          `json:"name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// RankedService servicio más facturado.
type RankedService struct {
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Rankings destacados derivados del agregador.
type Rankings struct {
	TopClient     *RankedClient  `json:"top_client,omitempty"`
	DroppedClient *RankedClient  `json:"dropped_client,omitempty"`
	TopService    *RankedService `json:"top_service,omitempty"`
}

// Report es el único contrato de salida del motor: los widgets del dashboard
// solo leen esta estructura y nunca rederivan la lógica.
type Report struct {
	Alerts           []Alert          `json:"alerts"`
	ClientRadar      []RadarEntry     `json:"client_radar"`
	Rankings         Rankings         `json:"rankings"`
	FiscalAlerts     []Alert          `json:"fiscal_alerts"`
	LowSequence      *SequenceSummary `json:"low_sequence,omitempty"`
	Prediction       Prediction       `json:"prediction"`
	BusinessHealth   BusinessHealth   `json:"business_health"`
	PaymentInsights  *PaymentInsights `json:"payment_insights,omitempty"`
	MorosityRadar    *MorosityRadar   `json:"morosity_radar,omitempty"`
	DataQualityNotes []string         `json:"data_quality_notes,omitempty"`
}
