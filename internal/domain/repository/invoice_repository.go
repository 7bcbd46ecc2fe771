package repository

import (
	"context"

	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// InvoiceRepository lecturas y escrituras de facturas. El motor de insights
// solo usa el camino de lectura; la escritura pertenece al flujo de emisión.
type InvoiceRepository interface {
	// Create persiste la cabecera y sus líneas.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// ListRecent devuelve las últimas limit facturas de la empresa, más
	// recientes primero, con sus líneas.
	ListRecent(ctx context.Context, companyID string, limit int) ([]entity.Invoice, error)

	// CountPending cuenta las facturas impagas (emitidas o pendientes).
	CountPending(ctx context.Context, companyID string) (int, error)
}
