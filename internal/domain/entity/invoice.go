package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusEmitida   = "emitida"   // Emitida con NCF, pago aún no registrado
	InvoiceStatusPendiente = "pendiente" // Pago parcial o acordado a crédito
	InvoiceStatusPagada    = "pagada"
	InvoiceStatusAnulada   = "anulada"
)

// Métodos de pago aceptados.
const (
	PaymentEfectivo      = "efectivo"
	PaymentTransferencia = "transferencia"
	PaymentTarjeta       = "tarjeta"
	PaymentCheque        = "cheque"
	PaymentOtro          = "otro"
)

// Invoice representa la cabecera de una factura emitida a un cliente.
// Date en cero significa que la fecha almacenada no se pudo interpretar
// (dato heredado del sistema anterior); los agregados por período la excluyen.
type Invoice struct {
	ID             string
	CompanyID      string
	CustomerRNC    string // RNC o cédula del cliente; puede estar vacío (consumidor final)
	CustomerName   string
	NCF            string // Número de Comprobante Fiscal asignado (ej: "B0100000045")
	NCFType        string // Tipo de comprobante DGII ("31", "32", "33", ...)
	Date           time.Time
	Total          decimal.Decimal
	ITBIS          decimal.Decimal
	Status         string
	BalancePending decimal.Decimal // Saldo pendiente registrado; cero en factura impaga = se asume Total
	PaymentMethod  string
	Items          []InvoiceItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InvoiceItem línea de detalle (servicio o producto facturado).
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// IsUnpaid indica si la factura tiene pago pendiente según su estado.
func (i Invoice) IsUnpaid() bool {
	return i.Status == InvoiceStatusEmitida || i.Status == InvoiceStatusPendiente
}

// Outstanding devuelve el saldo pendiente normalizado: el registrado si existe,
// el total si la factura está impaga sin saldo registrado, y cero en el resto
// (pagadas y anuladas no deben dinero).
func (i Invoice) Outstanding() decimal.Decimal {
	if i.Status == InvoiceStatusAnulada {
		return decimal.Zero
	}
	if i.BalancePending.IsPositive() {
		return i.BalancePending
	}
	if i.IsUnpaid() {
		return i.Total
	}
	return decimal.Zero
}
