package entity

import "time"

// Tipos de comprobante fiscal DGII más comunes.
const (
	NCFTipoCreditoFiscal = "31" // e-CF crédito fiscal
	NCFTipoConsumo       = "32" // e-CF consumo
	NCFTipoNotaDebito    = "33"
	NCFTipoNotaCredito   = "34"
	NCFTipoGubernamental = "45"
)

// NCFSequence representa el inventario de numeración de comprobantes fiscales
// autorizado por la DGII para un tipo de comprobante. El rango se agota al
// emitir facturas y puede tener fecha de vencimiento de la autorización.
type NCFSequence struct {
	ID           string
	CompanyID    string
	Tipo         string // Código del tipo de comprobante ("31", "32", ...)
	Prefix       string // Serie del NCF (ej: "B01", "E31")
	FinalNumber  int64  // Último número autorizado del rango
	CurrentValue int64  // Números ya consumidos
	IsActive     bool
	ExpiryDate   *time.Time // Vencimiento de la autorización; nil = sin vencimiento
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Remaining devuelve los números disponibles, nunca negativo.
func (s NCFSequence) Remaining() int64 {
	r := s.FinalNumber - s.CurrentValue
	if r < 0 {
		return 0
	}
	return r
}

// ExpiresWithin indica si la autorización vence dentro de los próximos days
// días contados desde ref (incluye autorizaciones ya vencidas). Sin fecha de
// vencimiento nunca vence.
func (s NCFSequence) ExpiresWithin(ref time.Time, days int) bool {
	if s.ExpiryDate == nil {
		return false
	}
	return s.ExpiryDate.Before(ref.AddDate(0, 0, days+1))
}

// IsExpired indica si la autorización ya venció a la fecha ref.
func (s NCFSequence) IsExpired(ref time.Time) bool {
	return s.ExpiryDate != nil && s.ExpiryDate.Before(ref)
}
