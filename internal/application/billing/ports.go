// Package billing contiene el flujo de emisión de facturas con asignación de
// NCF. El consumo del número es transaccional: la fila de la secuencia se
// bloquea para que dos emisiones concurrentes nunca compartan NCF.
package billing

import (
	"context"

	"github.com/facturadom/factura-rd/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		seqRepo repository.NCFSequenceRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
