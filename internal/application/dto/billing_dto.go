package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices. El NCF no se envía:
// lo asigna el servidor desde la secuencia activa del tipo solicitado.
type CreateInvoiceRequest struct {
	CustomerRNC   string               `json:"customer_rnc,omitempty"`
	CustomerName  string               `json:"customer_name"`
	NCFType       string               `json:"ncf_type"` // "31", "32", ...
	PaymentMethod string               `json:"payment_method,omitempty"`
	Items         []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea de factura.
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	CustomerRNC    string                `json:"customer_rnc,omitempty"`
	CustomerName   string                `json:"customer_name"`
	NCF            string                `json:"ncf"`
	NCFType        string                `json:"ncf_type"`
	Date           time.Time             `json:"date"`
	Total          decimal.Decimal       `json:"total"`
	ITBIS          decimal.Decimal       `json:"itbis"`
	Status         string                `json:"status"`
	BalancePending decimal.Decimal       `json:"balance_pending"`
	PaymentMethod  string                `json:"payment_method,omitempty"`
	Items          []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse línea en la respuesta.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
